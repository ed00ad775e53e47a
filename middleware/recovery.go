package middleware

import (
	"net/http"

	"marketing-tracker/configs"
)

// RecoveryMiddleware turns a handler panic into a 500 so one bad request
// never takes the process down.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				configs.LogWithContext("http", "recovery").
					WithField("path", r.URL.Path).
					WithField("panic", rec).
					Error("Recovered from handler panic")
				http.Error(rw, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(rw, r)
	})
}
