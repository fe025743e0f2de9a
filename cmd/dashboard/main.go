package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/teacher-dashboard/internal/chart"
	"github.com/noah-isme/teacher-dashboard/internal/client"
	"github.com/noah-isme/teacher-dashboard/internal/config"
	"github.com/noah-isme/teacher-dashboard/internal/dashboard"
	"github.com/noah-isme/teacher-dashboard/internal/logger"
	"github.com/noah-isme/teacher-dashboard/internal/middleware"
	"github.com/noah-isme/teacher-dashboard/internal/router"
	"github.com/noah-isme/teacher-dashboard/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	teacherAPI, err := client.New(client.Config{
		BaseURL:    cfg.BackendURL,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		Logger:     appLogger,
	})
	if err != nil {
		log.Fatalf("failed to create teacher api client: %v", err)
	}

	page := web.NewPage()
	controller := dashboard.NewController(teacherAPI, page, chart.NewHandle(page), cfg.RequestTimeout, appLogger)
	dashboardServer := web.NewServer(controller, page, cfg.AppName, appLogger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{
		Logger:           &appLogger,
		SubmitsPerWindow: 20,
		SubmitWindow:     time.Second,
	})
	router.Register(app, cfg, router.Dependencies{
		Dashboard: dashboardServer,
	})

	appLogger.Info().
		Str("address", cfg.HTTPAddress()).
		Str("backend", cfg.BackendURL).
		Str("env", cfg.AppEnv).
		Msg("starting teacher dashboard")

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app, appLogger)
}

func waitForShutdown(app *fiber.App, appLogger zerolog.Logger) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}

	appLogger.Info().Msg("server stopped")
}
