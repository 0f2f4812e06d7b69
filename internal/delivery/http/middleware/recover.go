package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// RecoverMiddleware converts panics into the rendered 500 page. The panic
// value and stack are logged; nothing else is retried.
func RecoverMiddleware(logger *slog.Logger, serverError func(http.ResponseWriter, *http.Request), next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				logger.Error("panic recovered",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", v,
					"stack", string(debug.Stack()),
				)
				serverError(w, r)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
