package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"

	"github.com/mcoot/fairychess/internal/dependencies/clock"
	"github.com/mcoot/fairychess/internal/dependencies/random"
	"github.com/mcoot/fairychess/internal/model"
	"github.com/mcoot/fairychess/internal/rules"
	"github.com/mcoot/fairychess/internal/search"
	"github.com/mcoot/fairychess/internal/session"
	"github.com/mcoot/fairychess/internal/storage"
)

const maxNameLength = 64

// Publisher receives game events after each change
type Publisher interface {
	Publish(event model.Event)
}

// Options tune the controller
type Options struct {
	// Depth is the minimax search depth
	Depth int
	// MaxGames caps the number of hosted games, 0 for no limit
	MaxGames int
}

// DefaultOptions returns the default controller options
func DefaultOptions() Options {
	return Options{
		Depth:    search.DefaultDepth,
		MaxGames: 256,
	}
}

// CreateParams describes a new game. Empty fields take defaults.
type CreateParams struct {
	Name     string
	Mode     string
	AI       *bool
	Strategy string
}

// Controller hosts game sessions and serializes access to each of them
type Controller struct {
	storage    storage.Storage
	strategies map[string]search.Strategy
	publisher  Publisher
	clock      clock.Clock
	options    Options
	logger     *slog.Logger

	// Namer produces names for games created without one
	Namer func() string

	mu    sync.Mutex
	locks map[model.GameID]*sync.Mutex

	// createMu holds the game count steady between the cap check and the save
	createMu sync.Mutex
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	publisher Publisher,
	clock clock.Clock,
	random random.Random,
	options Options,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:    storage,
		strategies: search.Strategies(options.Depth, random),
		publisher:  publisher,
		clock:      clock,
		options:    options,
		logger:     logger.With(slog.String("component", "game")),
		Namer:      func() string { return petname.Generate(2, "-") },
		locks:      make(map[model.GameID]*sync.Mutex),
	}
}

func (c *Controller) lock(id model.GameID) func() {
	c.mu.Lock()
	l, ok := c.locks[id]
	if !ok {
		l = &sync.Mutex{}
		c.locks[id] = l
	}
	c.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (c *Controller) publish(eventType model.EventType, g *model.Game, payload any) {
	if c.publisher == nil {
		return
	}
	c.publisher.Publish(model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		GameID:    g.ID,
		Payload:   payload,
	})
}

func (c *Controller) strategy(name string) (string, search.Strategy, error) {
	if name == "" {
		name = search.StrategyMinimax
	}
	s, ok := c.strategies[name]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", model.ErrInvalidStrategy, name)
	}
	return name, s, nil
}

func parseMode(name string) (rules.Mode, error) {
	if name == "" {
		return rules.DefaultMode, nil
	}
	mode, ok := rules.ParseMode(name)
	if !ok {
		return rules.ModeCustom, fmt.Errorf("%w: %q", model.ErrInvalidMode, name)
	}
	return mode, nil
}

// CreateGame starts a new hosted session
func (c *Controller) CreateGame(ctx context.Context, params CreateParams) (model.GameView, error) {
	mode, err := parseMode(params.Mode)
	if err != nil {
		return model.GameView{}, err
	}
	strategyName, strategy, err := c.strategy(params.Strategy)
	if err != nil {
		return model.GameView{}, err
	}
	name := strings.TrimSpace(params.Name)
	if name == "" {
		name = c.Namer()
	}
	if len(name) > maxNameLength {
		return model.GameView{}, model.ErrInvalidName
	}
	ai := true
	if params.AI != nil {
		ai = *params.AI
	}

	c.createMu.Lock()
	defer c.createMu.Unlock()

	if c.options.MaxGames > 0 {
		count, err := c.storage.CountGames(ctx)
		if err != nil {
			return model.GameView{}, err
		}
		if count >= c.options.MaxGames {
			return model.GameView{}, model.ErrTooManyGames
		}
	}

	now := c.clock.Now()
	cfg := session.Config{Mode: mode, AI: ai, Depth: c.options.Depth}
	g := &model.Game{
		ID:        model.GameID(uuid.NewString()),
		Name:      name,
		Session:   session.New(cfg, strategy, c.logger),
		Strategy:  strategyName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, g); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(g.ID)),
			slog.String("error", err.Error()),
		)
		return model.GameView{}, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(g.ID)),
		slog.String("name", name),
		slog.String("mode", mode.String()),
		slog.Bool("ai", ai),
		slog.String("strategy", strategyName),
	)

	return g.View(), nil
}

// GetGame returns a view of one game
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (model.GameView, error) {
	g, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return model.GameView{}, err
	}
	unlock := c.lock(id)
	defer unlock()
	return g.View(), nil
}

// ListGames returns views of every hosted game, oldest first
func (c *Controller) ListGames(ctx context.Context) ([]model.GameView, error) {
	games, err := c.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.GameView, 0, len(games))
	for _, g := range games {
		unlock := c.lock(g.ID)
		views = append(views, g.View())
		unlock()
	}
	return views, nil
}

// StartNewGame switches the game to mode and ai. The board is kept when both
// already match.
func (c *Controller) StartNewGame(ctx context.Context, id model.GameID, modeName string, ai bool) (model.GameView, error) {
	mode, err := parseMode(modeName)
	if err != nil {
		return model.GameView{}, err
	}
	g, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return model.GameView{}, err
	}

	unlock := c.lock(id)
	defer unlock()

	before := g.Session.Board()
	if g.Session.StartNewGame(mode, ai) == before {
		return g.View(), nil
	}
	g.UpdatedAt = c.clock.Now()

	c.logger.Info("game switched",
		slog.String("game_id", string(id)),
		slog.String("mode", mode.String()),
		slog.Bool("ai", ai),
	)

	view := g.View()
	c.publish(model.EventGameRestart, g, model.BoardChangedPayload{Game: view})
	return view, nil
}

// Restart sets up a fresh board in the current mode
func (c *Controller) Restart(ctx context.Context, id model.GameID) (model.GameView, error) {
	g, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return model.GameView{}, err
	}

	unlock := c.lock(id)
	defer unlock()

	g.Session.Restart()
	g.UpdatedAt = c.clock.Now()
	c.logger.Info("game restarted", slog.String("game_id", string(id)))

	view := g.View()
	c.publish(model.EventGameRestart, g, model.BoardChangedPayload{Game: view})
	return view, nil
}

// Touch clicks a square of the game's board
func (c *Controller) Touch(ctx context.Context, id model.GameID, x, y int) (model.MoveResult, error) {
	g, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return model.MoveResult{}, err
	}

	unlock := c.lock(id)
	defer unlock()

	size := g.Session.Board().Size()
	if x < 0 || x >= size || y < -size || y >= 2*size {
		return model.MoveResult{}, fmt.Errorf("%w: (%d,%d)", model.ErrInvalidSquare, x, y)
	}

	moved := g.Session.Touch(x, y)
	g.UpdatedAt = c.clock.Now()

	result := model.MoveResult{Moved: moved, Game: g.View()}
	if moved {
		c.logger.Info("move played",
			slog.String("game_id", string(id)),
			slog.Int("x", x),
			slog.Int("y", y),
			slog.Int("plies", result.Game.Plies),
		)
	}
	c.publish(model.EventBoardChanged, g, model.BoardChangedPayload{Game: result.Game})
	return result, nil
}

// Ready lets the computer move when it is its turn
func (c *Controller) Ready(ctx context.Context, id model.GameID) (model.MoveResult, error) {
	g, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return model.MoveResult{}, err
	}

	unlock := c.lock(id)
	defer unlock()

	start := c.clock.Now()
	m, moved := g.Session.Ready()
	if !moved {
		return model.MoveResult{Game: g.View()}, nil
	}
	g.UpdatedAt = c.clock.Now()

	result := model.MoveResult{Moved: true, Move: &m, Game: g.View()}
	c.logger.Info("computer moved",
		slog.String("game_id", string(id)),
		slog.String("move", m.String()),
		slog.Int("score", m.Score),
		slog.Duration("took", c.clock.Since(start)),
	)
	c.publish(model.EventBoardChanged, g, model.BoardChangedPayload{Game: result.Game})
	return result, nil
}

// DeleteGame stops hosting a game
func (c *Controller) DeleteGame(ctx context.Context, id model.GameID) error {
	g, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return err
	}

	unlock := c.lock(id)
	err = c.storage.DeleteGame(ctx, id)
	unlock()
	if err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.locks, id)
	c.mu.Unlock()

	c.logger.Info("game deleted", slog.String("game_id", string(id)))
	c.publish(model.EventGameDeleted, g, nil)
	return nil
}
