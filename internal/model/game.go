package model

import (
	"time"

	"github.com/mcoot/fairychess/internal/rules"
	"github.com/mcoot/fairychess/internal/session"
)

// GameID uniquely identifies a hosted game
type GameID string

// Game is one hosted session with its bookkeeping
type Game struct {
	ID      GameID
	Name    string
	Session *session.Session

	// Strategy names the computer opponent
	Strategy string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GameView is a consistent copy of a game taken under the controller lock
type GameView struct {
	ID        GameID
	Name      string
	Mode      rules.Mode
	AI        bool
	Strategy  string
	Plies     int
	Board     rules.Snapshot
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// View snapshots the game. The caller must hold whatever lock guards it.
func (g *Game) View() GameView {
	return GameView{
		ID:        g.ID,
		Name:      g.Name,
		Mode:      g.Session.Mode(),
		AI:        g.Session.AI(),
		Strategy:  g.Strategy,
		Plies:     g.Session.Plies(),
		Board:     g.Session.Snapshot(),
		Text:      g.Session.Board().String(),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// MoveResult is the outcome of a touch or a computer move
type MoveResult struct {
	Moved bool
	Move  *rules.PlayerMove
	Game  GameView
}
