package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mcoot/fairychess/internal/api"
	"github.com/mcoot/fairychess/internal/factory"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	depth, err := envInt("FAIRYCHESS_AI_DEPTH")
	if err != nil {
		logger.Error("invalid FAIRYCHESS_AI_DEPTH", slog.String("error", err.Error()))
		os.Exit(1)
	}
	maxGames, err := envInt("FAIRYCHESS_MAX_GAMES")
	if err != nil {
		logger.Error("invalid FAIRYCHESS_MAX_GAMES", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serverConfig, err := api.ServerConfigFromEnv(os.Getenv)
	if err != nil {
		logger.Error("invalid server config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := factory.New(factory.Config{
		Logger:   logger,
		Depth:    depth,
		MaxGames: maxGames,
	})

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		HubManager:     app.HubManager,
	})
	server := api.NewServer(router, serverConfig, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go app.HubManager.SweepEmptyHubs(ctx, time.Minute)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		// Event streams only end when their hub closes
		app.HubManager.Close()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// envInt reads a non-negative integer, 0 when unset
func envInt(key string) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
