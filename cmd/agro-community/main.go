package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/agro-community/internal/cache"
	"github.com/pribylovaa/agro-community/internal/clients"
	"github.com/pribylovaa/agro-community/internal/config"
	agrohttp "github.com/pribylovaa/agro-community/internal/http"
	"github.com/pribylovaa/agro-community/internal/service"
	"github.com/pribylovaa/agro-community/internal/storage/minio"
	"github.com/pribylovaa/agro-community/internal/storage/mongo"
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
	log.Info("starting agro-community", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	store, err := mongo.New(dbCtx, cfg)
	dbCancel()
	if err != nil {
		log.Error("mongo_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	log.Info("mongo_connected")

	svc := service.New(store, cfg)
	closers := wireOptional(rootCtx, log, cfg, svc)
	log.Info("service_initialized")

	var ready int32 // 0 — not ready; 1 — ready

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
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", agrohttp.NewRouter(svc, agrohttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Service,
		BasePath: cfg.HTTP.BasePath,
	}))

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErrCh := make(chan error, 1)
	go func() {
		log.Info("http_listen_start", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_force_stop", slog.String("err", err.Error()))
		_ = httpSrv.Close()
	}
	shutdownCancel()

	for _, c := range closers {
		if err := c(); err != nil {
			log.Warn("close_failed", slog.String("err", err.Error()))
		}
	}
	_ = store.Close(context.Background())

	log.Info("service_stopped")
}

// wireOptional подключает внешние зависимости, без которых сервис работает
// в запасном режиме: хостинг изображений, кэш погоды, классификатор и погоду.
// Ошибка подключения логируется, зависимость остаётся выключенной.
func wireOptional(ctx context.Context, log *slog.Logger, cfg *config.Config, svc *service.Service) []func() error {
	var closers []func() error

	if cfg.S3.Enabled {
		s3Ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		media, err := minio.New(s3Ctx, cfg)
		cancel()
		if err != nil {
			log.Warn("minio_unavailable, media falls back to data urls", slog.String("err", err.Error()))
		} else {
			svc.SetMediaStorage(media)
			log.Info("minio_connected", "bucket", cfg.S3.Bucket)
		}
	}

	if cfg.Redis.URL != "" {
		wc, err := cache.NewRedisCache(cfg.Redis.URL, "")
		if err != nil {
			log.Warn("redis_unavailable, weather cache disabled", slog.String("err", err.Error()))
		} else {
			svc.SetWeatherCache(wc)
			closers = append(closers, wc.Close)
			log.Info("redis_connected")
		}
	}

	if cfg.Classifier.Token != "" {
		cl := clients.NewClassifier(cfg.Classifier, clients.DefaultConfig)
		svc.SetClassifier(cl)
		closers = append(closers, cl.Close)
	}

	if cfg.Weather.Live {
		wp := clients.NewWeather(cfg.Weather, clients.DefaultConfig)
		svc.SetWeatherProvider(wp)
		closers = append(closers, wp.Close)
	}

	return closers
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
