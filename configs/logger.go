package configs

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// InitLogger configures the shared logrus logger. Call once at startup,
// before anything asks for a contextual entry.
func InitLogger() {
	Logger = logrus.New()
	Logger.SetOutput(os.Stdout)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}

// LogWithContext returns an entry tagged with the service and operation
// fields used across the codebase.
func LogWithContext(service, operation string) *logrus.Entry {
	if Logger == nil {
		InitLogger()
	}
	return Logger.WithFields(logrus.Fields{
		"service":   service,
		"operation": operation,
	})
}
