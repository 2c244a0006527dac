// middleware: net/http мидлвары HTTP-слоя сервиса профилей.
//
// Порядок в роутере (внешний -> внутренний): метрики, Recover, RequestID,
// Logging, Timeout. Метрики стоят снаружи Recover, поэтому ответ 500
// после паники тоже попадает в http_requests_total.
package middleware

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// Middleware: стандартный net/http мидлвар.
type Middleware func(http.Handler) http.Handler

// Chain оборачивает h так, что первый мидлвар списка вызывается первым.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range slices.Backward(mws) {
		h = mw(h)
	}

	return h
}

// responseRecorder запоминает статус и объём ответа.
// Один экземпляр разделяют все мидлвары запроса (см. record).
type responseRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

// record возвращает recorder над w; уже обёрнутый writer не оборачивается повторно.
func record(w http.ResponseWriter) *responseRecorder {
	if rw, ok := w.(*responseRecorder); ok {
		return rw
	}

	return &responseRecorder{ResponseWriter: w}
}

func (rw *responseRecorder) WriteHeader(status int) {
	if !rw.started() {
		rw.status = status
	}
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseRecorder) Write(b []byte) (int, error) {
	if !rw.started() {
		rw.status = http.StatusOK
	}

	n, err := rw.ResponseWriter.Write(b)
	rw.written += n

	return n, err
}

// Unwrap открывает исходный writer для http.ResponseController.
func (rw *responseRecorder) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func (rw *responseRecorder) started() bool {
	return rw.status != 0
}

// Status: отправленный статус. Пустой ответ net/http отдаёт как 200.
func (rw *responseRecorder) Status() int {
	if !rw.started() {
		return http.StatusOK
	}

	return rw.status
}

// routePattern: шаблон маршрута chi ("/artists/{id}") после роутинга.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}

	return "unmatched"
}
