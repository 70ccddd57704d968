package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	config2 "activity-signup-service/pkg/config"

	_ "activity-signup-service/docs"
	"activity-signup-service/internal/handler"
	"activity-signup-service/internal/repository"
	"activity-signup-service/internal/router"
	"activity-signup-service/internal/service"

	"github.com/go-playground/validator/v10"
)

// @title Activity Signup Service API
// @version 1.0
// @description Extracurricular activity directory with email signup
func main() {
	// Configure logger
	logLevel := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logLevel.Set(cfg.LogLevel)

	// Seed the activity directory
	activityRepo, err := repository.NewActivityRepository(repository.DefaultActivities())
	if err != nil {
		slog.Error("failed to seed activities", "error", err)
		os.Exit(1)
	}

	// Initialize validator
	validate := validator.New()

	// Initialize services
	activityService := service.NewActivityService(activityRepo)

	// Initialize handlers
	activityHandler := handler.NewActivityHandler(activityService, validate)
	rootHandler := handler.NewRootHandler()
	healthHandler := handler.NewHealthHandler()

	slog.Info("successfully configured services and handlers")

	// Setup router
	r := router.SetupRouter(
		activityHandler,
		rootHandler,
		healthHandler,
		router.Options{
			RequestTimeout: cfg.RequestTimeout,
			SwaggerEnabled: cfg.SwaggerEnabled,
		},
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}
