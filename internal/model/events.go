package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventBoardChanged EventType = "board"
	EventGameRestart  EventType = "restarted"
	EventGameDeleted  EventType = "deleted"
)

// Event is published to a game's subscribers
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	Payload   any // Type-specific data
}

// BoardChangedPayload carries the game after a move or selection
type BoardChangedPayload struct {
	Game GameView
}
