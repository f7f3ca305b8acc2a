package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	conversionsHttp "conversions-adapter/internal/conversions/adapters/http/fiber"
	conversionsRepoPg "conversions-adapter/internal/conversions/adapters/postgres"
	"conversions-adapter/internal/conversions/adapters/sender"
	"conversions-adapter/internal/conversions/core/ports"
	"conversions-adapter/internal/conversions/core/translator"
	conversionsUsecase "conversions-adapter/internal/conversions/core/usecase"

	outcomesHttp "conversions-adapter/internal/outcomes/adapters/http/fiber"
	outcomesRepoPg "conversions-adapter/internal/outcomes/adapters/postgres"
	outcomesUsecase "conversions-adapter/internal/outcomes/core/usecase"

	"conversions-adapter/internal/platform/config"
	"conversions-adapter/internal/platform/logger"
	"conversions-adapter/internal/platform/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "conversions-adapter/docs"
)

// @title Conversions Adapter API
// @version 1.0
// @description Translates host analytics events into Conversions API requests.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// Metrics
	m := metrics.New(prometheus.DefaultRegisterer)

	// Optional outcome store
	var recorder ports.OutcomeRecorderPort
	var statsHandler *outcomesHttp.StatsHandler

	if cfg.RecordOutcomes() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := conversionsRepoPg.Open(ctx, cfg.PostgresDSN)
		cancel()
		if err != nil {
			log.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer db.Close()

		recorder = conversionsRepoPg.NewOutcomeRepository(db)

		statsRepository := outcomesRepoPg.NewStatsRepository(outcomesRepoPg.NewSQLDB(db))
		statsHandler = outcomesHttp.NewStatsHandler(outcomesUsecase.NewGetOutcomeStatsUseCase(statsRepository))
	} else {
		log.Info("POSTGRES_DSN is not set, outcome recording and /stats are disabled")
	}

	// Usecases
	tr := translator.New(cfg.ProviderHost)
	translateUC := conversionsUsecase.NewTranslateEventUseCase(tr, recorder, m, log)
	deliverUC := conversionsUsecase.NewDeliverEventUseCase(
		translateUC,
		sender.New(nil, cfg.SendTimeout),
		m,
		log,
	)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               "conversions-adapter",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	eventsHandler := conversionsHttp.NewEventHandler(translateUC, deliverUC)
	app.Post("/v1/translate/:kind", eventsHandler.Translate)
	app.Post("/v1/events/:kind", eventsHandler.Deliver)

	if statsHandler != nil {
		app.Get("/stats", statsHandler.GetStats)
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Error("fiber stopped", zap.Error(err))
		}
	}()

	log.Info("server started",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("provider_host", tr.Host()),
		zap.Duration("send_timeout", cfg.SendTimeout),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("fiber shutdown error", zap.Error(err))
	}

	log.Info("server exiting")
}
