package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "github.com/pribylovaa/go-music-profiles/internal/errors"
)

// errPanic уходит в WriteError и отображается в 500/internal без деталей.
var errPanic = errors.New("panic recovered")

// Recover переводит панику обработчика в 500/internal.
// Если ответ уже начат, тело не дописывается: в лог уходит только паника со стеком.
// http.ErrAbortHandler пробрасывается дальше, net/http сам оборвёт соединение.
func Recover(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := record(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				l.LogAttrs(r.Context(), slog.LevelError, "panic_recovered",
					slog.String("request_id", r.Header.Get(HeaderRequestID)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
					slog.Bool("response_started", rw.started()),
				)

				if !rw.started() {
					apierrors.WriteError(rw, r, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
