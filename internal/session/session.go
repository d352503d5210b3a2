package session

import (
	"log/slog"

	"github.com/mcoot/fairychess/internal/rules"
	"github.com/mcoot/fairychess/internal/search"
)

// Config is the starting setup of a session
type Config struct {
	Mode rules.Mode
	AI   bool
	// Depth is the search depth of the default minimax opponent
	Depth int
}

// DefaultConfig is the small fantasy game against the computer
func DefaultConfig() Config {
	return Config{
		Mode:  rules.DefaultMode,
		AI:    true,
		Depth: search.DefaultDepth,
	}
}

// Session owns the board of one game. It is not safe for concurrent use.
type Session struct {
	board    *rules.Board
	strategy search.Strategy
	plies    int
	logger   *slog.Logger
}

// New starts a session with cfg. A nil strategy means minimax at cfg.Depth.
func New(cfg Config, strategy search.Strategy, logger *slog.Logger) *Session {
	if strategy == nil {
		strategy = search.Minimax{Depth: cfg.Depth}
	}
	s := &Session{
		strategy: strategy,
		logger:   logger.With(slog.String("component", "session")),
	}
	s.reset(cfg.Mode, cfg.AI)
	return s
}

func (s *Session) reset(mode rules.Mode, ai bool) {
	s.board = rules.NewGame(mode, ai)
	s.plies = 0
	s.logger.Info("new game",
		slog.String("mode", mode.String()),
		slog.Bool("ai", ai))
}

// StartNewGame replaces the board unless mode and ai already match the
// current game
func (s *Session) StartNewGame(mode rules.Mode, ai bool) *rules.Board {
	if s.board.Mode() == mode && s.board.AIEnabled() == ai {
		return s.board
	}
	s.reset(mode, ai)
	return s.board
}

// Restart always sets up a fresh board with the current mode and ai flag
func (s *Session) Restart() *rules.Board {
	s.reset(s.board.Mode(), s.board.AIEnabled())
	return s.board
}

// Touch forwards a click to the board
func (s *Session) Touch(x, y int) bool {
	moved := s.board.Touch(x, y)
	if moved {
		s.plies++
		s.logger.Debug("move played",
			slog.Int("x", x),
			slog.Int("y", y),
			slog.String("state", s.board.State().String()))
	}
	return moved
}

// AwaitingAI reports whether the computer is due to move
func (s *Session) AwaitingAI() bool {
	return s.board.AIEnabled() && s.board.Turn() == rules.Black && s.board.State() == rules.StateNone
}

// Ready lets the computer play Black. Nothing happens when it is not the
// computer's turn or the search finds no move.
func (s *Session) Ready() (rules.PlayerMove, bool) {
	if !s.board.AIEnabled() || s.board.Turn() != rules.Black {
		return rules.PlayerMove{}, false
	}

	s.board.Warm()
	m, ok := s.strategy.ChooseMove(s.board, rules.Black)
	if !ok {
		s.logger.Info("no move for computer", slog.String("state", s.board.State().String()))
		return rules.PlayerMove{}, false
	}

	s.board.Apply(m)
	s.board.NextTurn()
	s.board.RefreshCheck()
	s.plies++

	s.logger.Debug("computer moved",
		slog.String("move", m.String()),
		slog.Int("score", m.Score))
	return m, true
}

func (s *Session) Board() *rules.Board { return s.board }

func (s *Session) Mode() rules.Mode { return s.board.Mode() }

func (s *Session) AI() bool { return s.board.AIEnabled() }

// Plies counts moves played since the last new game
func (s *Session) Plies() int { return s.plies }

func (s *Session) Snapshot() rules.Snapshot { return s.board.Snapshot() }
