package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-music-profiles/internal/service"
	"github.com/pribylovaa/go-music-profiles/internal/transport/http/handlers"
	"github.com/pribylovaa/go-music-profiles/internal/transport/http/middleware"
)

// Options: параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string                  // например, "/api"; если пустой: роуты регистрируются на корне.
	Metrics  *middleware.HTTPMetrics // nil: метрики запросов не пишутся.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	if opts.Metrics != nil {
		root.Use(opts.Metrics.Middleware()) // снаружи Recover: паники считаются как 500
	}
	root.Use(
		middleware.Recover(opts.Logger), // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes: единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// artists
	r.Post("/artists", h.CreateArtist)
	r.Get("/artists", h.ListArtists)
	r.Get("/artists/{id}", h.GetArtist)
	r.Put("/artists/{id}", h.UpdateArtist)
	r.Delete("/artists/{id}", h.DeleteArtist)
	r.Post("/artists/{id}/albums", h.AddArtistAlbum)
	r.Post("/artists/{id}/songs", h.AddArtistSong)
	r.Post("/artists/{id}/albums/{album_id}/songs", h.AddSongToAlbum)

	// listeners
	r.Post("/listeners", h.CreateListener)
	r.Get("/listeners", h.ListListeners)
	r.Get("/listeners/{id}", h.GetListener)
	r.Put("/listeners/{id}", h.UpdateListener)
	r.Delete("/listeners/{id}", h.DeleteListener)
	r.Post("/listeners/{id}/playlists", h.AddListenerPlaylist)
	r.Post("/listeners/{id}/interests", h.AddListenerInterest)
	r.Get("/listeners/{id}/recommendations", h.Recommendations)

	// transactions
	r.Post("/transactions", h.CreateTransaction)
	r.Get("/transactions", h.ListTransactions)
	r.Get("/transactions/{id}", h.GetTransaction)
	r.Put("/transactions/{id}", h.UpdateTransaction)
}
