package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/patrolsync/nibrs/internal/api"
	"github.com/patrolsync/nibrs/internal/config"
	"github.com/patrolsync/nibrs/internal/extraction"
	"github.com/patrolsync/nibrs/internal/logging"
	"github.com/patrolsync/nibrs/internal/mapper"
	"github.com/patrolsync/nibrs/internal/metrics"
	"github.com/patrolsync/nibrs/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("failed to init logger", "error", err)
		os.Exit(1)
	}

	logger.Info("starting nibrs mapping service")

	collector, err := metrics.NewCollector()
	if err != nil {
		logger.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}

	// The extraction collaborator is optional: without an API key the
	// service still maps, validates, and serializes pre-extracted input.
	var extractor extraction.Extractor
	if cfg.OpenAI.APIKey != "" {
		extractor = extraction.NewClient(cfg.OpenAI.APIKey, extraction.Config{
			Model:     cfg.OpenAI.Model,
			MaxTokens: cfg.OpenAI.MaxTokens,
		})
		logger.Info("extraction collaborator enabled", "model", cfg.OpenAI.Model)
	} else {
		logger.Info("extraction collaborator disabled: no OPENAI_API_KEY")
	}

	handler := api.NewHandler(mapper.New(), extractor, collector, logger)

	mux := http.NewServeMux()
	root := api.SetupRoutes(mux, handler, collector)

	srv := server.New(cfg.Server, logger, root)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	logger.Info("API available", "url", fmt.Sprintf("http://localhost:%s", cfg.Server.Port))

	waitForSignal(logger)

	logger.Info("shutting down")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("shutdown complete")
}

func waitForSignal(logger *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	sig := <-c
	logger.Info("received signal", "signal", sig.String())
	signal.Stop(c)
	close(c)
}
