package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/fairychess/internal/dependencies/clock"
	"github.com/mcoot/fairychess/internal/dependencies/random"
	"github.com/mcoot/fairychess/internal/services/game"
	"github.com/mcoot/fairychess/internal/storage"
	"github.com/mcoot/fairychess/internal/storage/memory"
	"github.com/mcoot/fairychess/internal/web/sse"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	GameController *game.Controller
	HubManager     *sse.HubManager
	Broadcaster    *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Depth is the computer's search depth (optional)
	// If zero, defaults to game.DefaultOptions().Depth
	Depth int
	// MaxGames caps the hosted games (optional)
	// If zero, defaults to game.DefaultOptions().MaxGames
	MaxGames int
}

func (c Config) options() game.Options {
	opts := game.DefaultOptions()
	if c.Depth > 0 {
		opts.Depth = c.Depth
	}
	if c.MaxGames > 0 {
		opts.MaxGames = c.MaxGames
	}
	return opts
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return newWithDependencies(memory.New(), clock.New(), random.New(), cfg.options(), logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, opts game.Options, logger *slog.Logger) *App {
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)
	gameController := game.NewController(store, broadcaster, clk, rnd, opts, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		GameController: gameController,
		HubManager:     hubManager,
		Broadcaster:    broadcaster,
	}
}
