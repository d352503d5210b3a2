package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mcoot/fairychess/internal/api/response"
	"github.com/mcoot/fairychess/internal/model"
)

// EventData is one rendered SSE event
type EventData struct {
	Event string
	Data  string
}

// RenderEvent converts a game event to its SSE form. Board payloads are sent
// as the same JSON the REST API returns for a game.
func RenderEvent(event model.Event) (EventData, error) {
	switch payload := event.Payload.(type) {
	case model.BoardChangedPayload:
		return RenderGame(string(event.Type), payload.Game)
	case nil:
		data, err := json.Marshal(map[string]string{"id": string(event.GameID)})
		if err != nil {
			return EventData{}, err
		}
		return EventData{Event: string(event.Type), Data: string(data)}, nil
	}
	return EventData{}, fmt.Errorf("unsupported payload %T for %s event", event.Payload, event.Type)
}

// RenderGame renders a game view as an event named name
func RenderGame(name string, view model.GameView) (EventData, error) {
	data, err := json.Marshal(response.GameFromView(view))
	if err != nil {
		return EventData{}, err
	}
	return EventData{Event: name, Data: string(data)}, nil
}

// Broadcaster forwards game events to the hub of each game
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Publish renders the event and sends it to the game's watchers, if any
func (b *Broadcaster) Publish(event model.Event) {
	hub := b.hubManager.GetHub(event.GameID)
	if hub == nil {
		return
	}

	data, err := RenderEvent(event)
	if err != nil {
		b.logger.Error("sse failed to render event",
			slog.String("game_id", string(event.GameID)),
			slog.String("event", string(event.Type)),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(data.Event, data.Data)

	if event.Type == model.EventGameDeleted {
		b.hubManager.RemoveHub(event.GameID)
	}
}
