package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "supplierwatch/internal/adapters/http"
	"supplierwatch/internal/adapters/sqlitestore"
	"supplierwatch/internal/config"
	"supplierwatch/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "err", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := sqlitestore.Open(ctx, cfg.StorePath, logger)
	if err != nil {
		logger.Error("failed to open analytical store", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	svc := httpadapter.Services{
		Dossier:   services.NewDossierService(store, cfg.Disclaimer, nil),
		Ranking:   services.NewRankingService(store),
		Search:    services.NewSearchService(store),
		Alerts:    services.NewAlertFeedService(store),
		Graph:     services.NewGraphService(store, 50),
		Org:       services.NewOrgDashboardService(store),
		Stats:     services.NewStatsService(store),
		Export:    services.NewExportService(),
		Contracts: store,
	}

	router := httpadapter.New(svc, httpadapter.Options{
		RequestDeadline:  cfg.RequestDeadline,
		RateLimitPerMin:  cfg.RateLimitPerMinute,
		RateLimitWindow:  cfg.RateLimitWindow,
		BypassHeaderName: cfg.BypassHeaderName,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		Logger:           logger,
	})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "err", err)
		}
	case err := <-errCh:
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func newLogger(env string) *slog.Logger {
	var handler slog.Handler
	if env == "development" {
		handler = slog.NewTextHandler(os.Stdout, nil)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	}
	return slog.New(handler)
}
