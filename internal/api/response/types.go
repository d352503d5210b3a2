package response

import (
	"time"

	"github.com/mcoot/fairychess/internal/geom"
	"github.com/mcoot/fairychess/internal/model"
	"github.com/mcoot/fairychess/internal/rules"
)

// Piece represents a piece on the board or in a capture pool
type Piece struct {
	Square geom.Point `json:"square"`
	Type   string     `json:"type"`
	Side   string     `json:"side"`
	Value  int        `json:"value"`
	Key    string     `json:"key"`
	Royal  bool       `json:"royal,omitempty"`
}

// PieceFromView converts a rules.PieceView
func PieceFromView(v rules.PieceView) Piece {
	return Piece{
		Square: v.Square,
		Type:   v.Type,
		Side:   v.Side.String(),
		Value:  v.Value,
		Key:    v.Key,
		Royal:  v.Royal,
	}
}

func piecesFromViews(views []rules.PieceView) []Piece {
	out := make([]Piece, 0, len(views))
	for _, v := range views {
		out = append(out, PieceFromView(v))
	}
	return out
}

func piecePtr(v *rules.PieceView) *Piece {
	if v == nil {
		return nil
	}
	p := PieceFromView(*v)
	return &p
}

// Highlight is a legal destination of the selected piece
type Highlight struct {
	Square    geom.Point `json:"square"`
	TestGroup int        `json:"test_group"`
}

// Captured holds the capture pools keyed by the capturing side
type Captured struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// Board is everything a client needs to draw a game
type Board struct {
	Size       int         `json:"size"`
	Turn       string      `json:"turn"`
	State      string      `json:"state"`
	Pieces     []Piece     `json:"pieces"`
	Captured   Captured    `json:"captured"`
	Selected   *Piece      `json:"selected,omitempty"`
	LastMoved  *Piece      `json:"last_moved,omitempty"`
	Highlights []Highlight `json:"highlights"`
	Checks     []Piece     `json:"checks"`
	Text       string      `json:"text"`
}

// BoardFromSnapshot converts a rules.Snapshot with its text dump
func BoardFromSnapshot(s rules.Snapshot, text string) Board {
	highlights := make([]Highlight, 0, len(s.Highlights))
	for _, h := range s.Highlights {
		highlights = append(highlights, Highlight{Square: h.Square, TestGroup: h.TestGroup})
	}
	return Board{
		Size:   s.Size,
		Turn:   s.Turn.String(),
		State:  s.State.String(),
		Pieces: piecesFromViews(s.Pieces),
		Captured: Captured{
			White: piecesFromViews(s.Captured[rules.White]),
			Black: piecesFromViews(s.Captured[rules.Black]),
		},
		Selected:   piecePtr(s.Selected),
		LastMoved:  piecePtr(s.LastMoved),
		Highlights: highlights,
		Checks:     piecesFromViews(s.Checks),
		Text:       text,
	}
}

// Game represents a hosted game
type Game struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Mode      string    `json:"mode"`
	AI        bool      `json:"ai"`
	Strategy  string    `json:"strategy"`
	Plies     int       `json:"plies"`
	Board     Board     `json:"board"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GameFromView converts a model.GameView
func GameFromView(v model.GameView) Game {
	return Game{
		ID:        string(v.ID),
		Name:      v.Name,
		Mode:      v.Mode.String(),
		AI:        v.AI,
		Strategy:  v.Strategy,
		Plies:     v.Plies,
		Board:     BoardFromSnapshot(v.Board, v.Text),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// GameList is the response for listing games
type GameList struct {
	Games []Game `json:"games"`
}

// GameListFromViews converts a slice of model.GameView
func GameListFromViews(views []model.GameView) GameList {
	games := make([]Game, 0, len(views))
	for _, v := range views {
		games = append(games, GameFromView(v))
	}
	return GameList{Games: games}
}

// Leg is one step of a move
type Leg struct {
	From geom.Point `json:"from"`
	To   geom.Point `json:"to"`
}

// Move is a played move
type Move struct {
	Legs     []Leg        `json:"legs"`
	Captures []geom.Point `json:"captures"`
	Score    int          `json:"score"`
	Notation string       `json:"notation"`
}

// MoveFromRules converts a rules.PlayerMove
func MoveFromRules(m rules.PlayerMove) Move {
	legs := make([]Leg, 0, len(m.Legs))
	for _, l := range m.Legs {
		legs = append(legs, Leg{From: l.From, To: l.To})
	}
	captures := m.Captures
	if captures == nil {
		captures = []geom.Point{}
	}
	return Move{Legs: legs, Captures: captures, Score: m.Score, Notation: m.String()}
}

// MoveResult is the response for touch and ready
type MoveResult struct {
	Moved bool  `json:"moved"`
	Move  *Move `json:"move,omitempty"`
	Game  Game  `json:"game"`
}

// MoveResultFromModel converts a model.MoveResult
func MoveResultFromModel(r model.MoveResult) MoveResult {
	out := MoveResult{Moved: r.Moved, Game: GameFromView(r.Game)}
	if r.Move != nil {
		m := MoveFromRules(*r.Move)
		out.Move = &m
	}
	return out
}

// Modes lists the playable modes and computer strategies
type Modes struct {
	Modes      []string `json:"modes"`
	Strategies []string `json:"strategies"`
}
