package middleware

import (
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/pribylovaa/go-music-profiles/internal/pkg/log"
)

// Logging кладёт в контекст логгер запроса (с request_id, если он уже
// выставлен RequestID) и по завершении пишет запись "http_request".
// Уровень зависит от статуса: 5xx Error, 4xx Warn, остальное Info.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logctx.Into(r.Context(), l)
			if rid := r.Header.Get(HeaderRequestID); rid != "" {
				ctx = logctx.With(ctx, slog.String("request_id", rid))
			}
			r = r.WithContext(ctx)

			rw := record(w)
			start := time.Now()
			next.ServeHTTP(rw, r)

			status := rw.Status()
			logctx.From(ctx).LogAttrs(ctx, statusLevel(status), "http_request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", status),
				slog.Int("bytes", rw.written),
				slog.Duration("dur", time.Since(start)),
			)
		})
	}
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
