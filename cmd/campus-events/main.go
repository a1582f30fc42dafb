package main

import (
	"campusEvents/internal/config"
	"campusEvents/internal/lib/logger/handlers/slogpretty"
	"campusEvents/internal/lib/logger/sl"
	"campusEvents/internal/lib/metrics"
	"campusEvents/internal/models"
	"campusEvents/internal/storage/postgres"
	"campusEvents/internal/tracker/jira"
	"campusEvents/internal/trackersync"
	"context"
	"errors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	envLocal = "local"

	shutdownTimeout = 10 * time.Second
)

func main() {
	// a missing .env is fine, the environment may be set another way
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env, cfg.LogLevel)

	log.Info("Starting campus events", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage, err := postgres.New(ctx, cfg.StorageURL, cfg.Events.ResultCap)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	deps := routerDeps{
		storage:         storage,
		metrics:         m,
		gatherer:        registry,
		rejectPastDates: cfg.Events.RejectPastDates,
	}

	var syncer *trackersync.Syncer
	if cfg.Jira.Enabled() {
		client, err := jira.NewClient(jira.Config{
			BaseURL:    cfg.Jira.BaseURL,
			UserEmail:  cfg.Jira.UserEmail,
			APIToken:   cfg.Jira.APIToken,
			ProjectKey: cfg.Jira.ProjectKey,
			PageSize:   cfg.Jira.PageSize,
			Timeout:    cfg.Jira.Timeout,
		})
		if err != nil {
			log.Error("failed to init jira client", sl.Err(err))
			os.Exit(1)
		}

		syncer = trackersync.New(log, client, storage, trackersync.Mapping{
			DateField:         cfg.Jira.DateField,
			LocationField:     cfg.Jira.LocationField,
			DefaultVisibility: models.Visibility(cfg.Jira.DefaultVisibility),
		}, trackersync.WithRecorder(m))

		deps.tracker = client
		deps.syncer = syncer

		log.Info("jira integration enabled",
			slog.String("base_url", client.BaseURL()),
			slog.String("project", cfg.Jira.ProjectKey),
		)
	} else {
		log.Warn("jira is not configured, tracker routes are disabled")
	}

	router := newRouter(log, deps)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	if syncer != nil && cfg.Sync.Interval > 0 {
		log.Info("periodic sync enabled", slog.String("interval", cfg.Sync.Interval.String()))

		go func() {
			ticker := time.NewTicker(cfg.Sync.Interval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					if _, err := syncer.Run(ctx); err != nil {
						log.Error("periodic sync failed", sl.Err(err))
					}
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env, level string) *slog.Logger {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}

	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog(lvl)
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	}

	return log
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
