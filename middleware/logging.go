package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/authgate/core/logger"
)

// statusWriter captures the status code on its way out.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Logging emits one record per request: method, path, status, latency and
// the request id when present. 4xx log at warn, 5xx at error, the rest at
// info.
func Logging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(ww, r)

			level := slog.LevelInfo
			switch {
			case ww.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case ww.status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			log.LogAttrs(r.Context(), level, "request",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(ww.status),
				logger.Latency(time.Since(start)),
				logger.RequestID(GetRequestID(r.Context())),
			)
		})
	}
}
