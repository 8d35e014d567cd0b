package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/labstockease/insights/internal/config"
	"github.com/labstockease/insights/internal/repository/mongodb"
	"github.com/labstockease/insights/internal/scheduler"
	"github.com/labstockease/insights/internal/server/handlers"
	"github.com/labstockease/insights/internal/server/router"
	analyticssvc "github.com/labstockease/insights/internal/service/analytics"
	notifysvc "github.com/labstockease/insights/internal/service/notify"
	reportssvc "github.com/labstockease/insights/internal/service/reports"
	"github.com/labstockease/insights/pkg/clients/webhook"
	"github.com/labstockease/insights/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := mongodb.NewMongoStore(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	analyticsSvc := analyticssvc.NewService(store, baseLogger.Named("svc.analytics"))
	reportSvc := reportssvc.NewService(analyticsSvc, baseLogger.Named("svc.reports"))

	var alertClient webhook.Client
	if cfg.Digest.WebhookURL != "" {
		alertClient = webhook.NewClient(cfg.Digest.WebhookURL, cfg.Digest.WebhookToken)
		baseLogger.Info("stock alert webhook enabled")
	} else {
		baseLogger.Warn("alert webhook url missing, digest delivery disabled")
	}

	digestSvc := notifysvc.NewService(analyticsSvc, alertClient, baseLogger.Named("svc.notify"))
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsSvc, reportSvc, baseLogger.Named("handlers.analytics"))
	engine := router.New(analyticsHandler, baseLogger.Named("router"))

	if cfg.Digest.WebhookURL != "" {
		sched := scheduler.NewScheduler(cfg.Digest.CronSchedule, digestSvc, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
