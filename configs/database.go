package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectDatabase opens the backing store and returns the handle. Postgres
// when DATABASE_URL is set, otherwise a local sqlite file under instance/.
// The handle is passed down explicitly; there is no package-level global.
func ConnectDatabase() (*gorm.DB, error) {
	logger := LogWithContext("database", "connect")

	cfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	dsn := EnvDatabaseURL()
	if dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		logger.Info("Connected to postgres database")
		return db, nil
	}

	path, err := sqliteInstancePath()
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database at %s: %w", path, err)
	}
	logger.WithField("path", path).Info("Opened local sqlite database")
	return db, nil
}

func sqliteInstancePath() (string, error) {
	dir := "instance"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create instance directory: %w", err)
	}
	return filepath.Join(dir, "app.db"), nil
}
