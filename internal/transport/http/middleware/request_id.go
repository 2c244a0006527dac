package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-music-profiles/internal/clients/upstream"
)

// HeaderRequestID: заголовок сквозного идентификатора запроса.
const HeaderRequestID = "X-Request-Id"

// maxRequestIDLen: более длинный входящий id заменяется своим.
const maxRequestIDLen = 128

// RequestID гарантирует X-Request-Id у запроса и ответа.
// Корректный входящий id сохраняется, иначе генерируется uuid.
// id также кладётся в контекст: его получают исходящие вызовы к users/multimedia.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if !validRequestID(id) {
				id = uuid.NewString()
				r.Header.Set(HeaderRequestID, id)
			}
			w.Header().Set(HeaderRequestID, id)

			next.ServeHTTP(w, r.WithContext(upstream.WithRequestID(r.Context(), id)))
		})
	}
}

// validRequestID: непустая строка разумной длины из печатных ASCII-символов.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}

	return true
}
