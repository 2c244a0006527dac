// upstream: общий JSON/HTTP-клиент для смежных сервисов (users, multimedia).
//
// Поведение:
//   - один запрос = один синхронный round trip, без ретраев и кеша;
//   - X-Request-Id берётся из контекста (см. WithRequestID) или генерируется;
//   - опциональный token-bucket ограничитель на исходящие вызовы;
//   - любой статус вне 2xx превращается в *StatusError (errors.Is -> ErrUnexpectedStatus).
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-music-profiles/internal/pkg/log"
	"golang.org/x/time/rate"
)

// ErrUnexpectedStatus: апстрим ответил статусом вне 2xx.
var ErrUnexpectedStatus = errors.New("unexpected upstream status")

// maxErrorBody: сколько байт тела ошибки сохраняем в StatusError.
const maxErrorBody = 512

// StatusError описывает неуспешный ответ апстрима.
type StatusError struct {
	Service    string
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s %s: status %d", e.Service, e.Method, e.Path, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}

	return msg
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }

type ctxKey string

const ctxRequestID ctxKey = "request_id"

// WithRequestID кладёт идентификатор запроса в контекст для исходящих вызовов.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxRequestID, id)
}

// RequestIDFrom достаёт идентификатор запроса из контекста.
func RequestIDFrom(ctx context.Context) string {
	rid, _ := ctx.Value(ctxRequestID).(string)
	return rid
}

// Options: параметры клиента.
type Options struct {
	// Name: имя апстрима для логов и ошибок.
	Name    string
	BaseURL string
	// HTTPClient: если nil, создаётся клиент с Timeout.
	HTTPClient *http.Client
	Timeout    time.Duration
	// RateLimit: запросов в секунду; <=0 отключает ограничение.
	RateLimit float64
}

// Client: JSON-клиент одного апстрима. Безопасен для конкурентного использования.
type Client struct {
	name    string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// New создаёт клиента апстрима.
func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	var lim *rate.Limiter
	if opts.RateLimit > 0 {
		burst := int(opts.RateLimit)
		if burst < 1 {
			burst = 1
		}
		lim = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return &Client{
		name:    opts.Name,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    hc,
		limiter: lim,
	}
}

// Name возвращает имя апстрима.
func (c *Client) Name() string { return c.name }

// Do выполняет запрос method к baseURL+path.
// in (если не nil) кодируется в JSON-тело, out (если не nil) заполняется из ответа 2xx.
// Возвращает статус ответа; при статусе вне 2xx: *StatusError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, in, out any) (int, error) {
	const op = "clients/upstream/Do"

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, fmt.Errorf("%s: %s rate limit: %w", op, c.name, err)
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("%s: encode: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, fmt.Errorf("%s: new request: %w", op, err)
	}

	rid := RequestIDFrom(ctx)
	if rid == "" {
		rid = uuid.NewString()
	}
	req.Header.Set("X-Request-Id", rid)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	lg := log.From(ctx).With(
		slog.String("upstream", c.name),
		slog.String("method", method),
		slog.String("path", path),
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		lg.Warn("upstream_call_failed", slog.String("err", err.Error()), slog.Duration("dur", time.Since(start)))
		return 0, fmt.Errorf("%s: %s %s %s: %w", op, c.name, method, path, err)
	}
	defer resp.Body.Close()

	lg.Debug("upstream_call", slog.Int("status", resp.StatusCode), slog.Duration("dur", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, &StatusError{
			Service:    c.name,
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%s: %s %s %s: decode: %w", op, c.name, method, path, err)
	}

	return resp.StatusCode, nil
}
