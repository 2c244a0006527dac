// errors стандартизирует ответы об ошибках HTTP-слоя сервиса профилей.
// На вход он принимает ошибку сервисного слоя (service.Err*),
// а на выход даёт:
//   - HTTP-статус;
//   - короткий стабильный code и безопасное message.
//
// Отказы смежных сервисов отдаются как 400 с текстом исходной ошибки,
// ошибки хранилища как 400 с общим сообщением (детали только в логах).
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pribylovaa/go-music-profiles/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError: единый формат ошибки для клиента.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse: корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и тело ответа.
//
// Поведение:
//   - err == nil - программная ошибка вызова: 500/internal;
//   - service.ErrNotFound -> 404;
//   - service.ErrInvalidArgument -> 400, message содержит причину;
//   - service.ErrUpstream -> 400, message содержит текст отказа апстрима;
//   - service.ErrInternal -> 400 "operation did not complete";
//   - context.Canceled -> 499, context.DeadlineExceeded -> 504;
//   - прочее -> 500/internal без деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, response("internal", "internal error")
	}

	var upErr *service.UpstreamError

	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, response("not_found", "not found")
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, response("invalid_argument", reason(err, service.ErrInvalidArgument))
	case errors.As(err, &upErr):
		return http.StatusBadRequest, response("upstream_failure", upErr.Error())
	case errors.Is(err, service.ErrInternal):
		return http.StatusBadRequest, response("operation_failed", "operation did not complete")
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, response("canceled", "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, response("deadline_exceeded", "deadline exceeded")
	default:
		return http.StatusInternalServerError, response("internal", "internal error")
	}
}

// WriteError: хелпер для HTTP-хендлеров.
// Пишет статус/тело и добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func response(code, msg string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: msg}}
}

// reason отрезает от текста ошибки префиксы op и оставляет
// "<sentinel>: <причина>".
func reason(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()); i >= 0 {
		return msg[i:]
	}

	return sentinel.Error()
}
