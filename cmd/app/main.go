package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ricotama/LAPORin/internal/adapter"
	"github.com/ricotama/LAPORin/internal/bootstrap"
	"github.com/ricotama/LAPORin/internal/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadAppConfig()

	client := config.InitEnt(cfg)
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
		}
	}()

	redisAdapter, err := adapter.NewRedisAdapter(cfg)
	if err != nil {
		slog.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}

	s3Client := config.NewS3Client(cfg)
	validate := config.NewValidator()

	wsLimiter := config.NewRateLimiter(cfg)
	defer wsLimiter.Stop()

	app := bootstrap.Init(cfg, client, validate, s3Client, redisAdapter, wsLimiter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go app.Hub.Run()
	go app.Collection.Run(ctx)

	addr := fmt.Sprintf(":%s", cfg.AppPort)
	slog.Info("Starting LAPORin API", "port", cfg.AppPort)

	server := &http.Server{Addr: addr, Handler: app.Mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down...")
	cancel()
	if err := server.Shutdown(context.Background()); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}
