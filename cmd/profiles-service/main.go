package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-music-profiles/internal/clients/multimedia"
	"github.com/pribylovaa/go-music-profiles/internal/clients/upstream"
	"github.com/pribylovaa/go-music-profiles/internal/clients/users"
	"github.com/pribylovaa/go-music-profiles/internal/config"
	"github.com/pribylovaa/go-music-profiles/internal/service"
	pmongo "github.com/pribylovaa/go-music-profiles/internal/storage/mongo"
	phttp "github.com/pribylovaa/go-music-profiles/internal/transport/http"
	"github.com/pribylovaa/go-music-profiles/internal/transport/http/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting profiles-service", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	store, err := pmongo.New(dbCtx, cfg)
	dbCancel()
	if err != nil {
		log.Error("mongo_connect_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}
	log.Info("mongo_connected")

	usersClient := users.New(upstream.New(upstream.Options{
		Name:      "users",
		BaseURL:   cfg.Upstreams.UsersURL,
		Timeout:   cfg.Upstreams.Timeout,
		RateLimit: cfg.Upstreams.RateLimit,
	}))
	catalogClient := multimedia.New(upstream.New(upstream.Options{
		Name:      "multimedia",
		BaseURL:   cfg.Upstreams.MultimediaURL,
		Timeout:   cfg.Upstreams.Timeout,
		RateLimit: cfg.Upstreams.RateLimit,
	}))
	log.Info("clients_initialized",
		slog.String("users_url", cfg.Upstreams.UsersURL),
		slog.String("multimedia_url", cfg.Upstreams.MultimediaURL),
	)

	svc := service.New(service.Deps{
		Artists:      store,
		Listeners:    store,
		Transactions: store,
		Users:        usersClient,
		Catalog:      catalogClient,
	}, *cfg)
	log.Info("service_initialized")

	apiHandler := phttp.NewRouter(svc, phttp.Options{
		Logger:  log,
		Timeout: cfg.Timeouts.Service,
		Metrics: middleware.NewHTTPMetrics(nil),
	})

	var ready int32 // 0: not ready; 1: ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&ready) != 1 {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			log.Warn("healthz_mongo_ping_failed", slog.String("err", err.Error()))
			http.Error(w, "mongo unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		closeStore(store, log)
		rootCancel()
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	closeStore(store, log)
	log.Info("service_stopped")
}

func closeStore(store *pmongo.Mongo, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.Close(ctx); err != nil {
		log.Warn("mongo_close_failed", slog.String("err", err.Error()))
		return
	}
	log.Info("mongo_closed")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
