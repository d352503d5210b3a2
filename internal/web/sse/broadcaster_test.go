package sse

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/fairychess/internal/model"
	"github.com/mcoot/fairychess/internal/rules"
	"github.com/mcoot/fairychess/internal/session"
	"github.com/mcoot/fairychess/internal/testutil"
)

func testView(id model.GameID) model.GameView {
	g := &model.Game{
		ID:      id,
		Name:    "test",
		Session: session.New(session.Config{Mode: rules.ModeChess}, nil, testutil.NopLogger()),
	}
	return g.View()
}

func receive(t *testing.T, client *Client) string {
	t.Helper()
	select {
	case msg, ok := <-client.send:
		require.True(t, ok, "client channel closed")
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("client did not receive message")
	}
	return ""
}

func dataOf(t *testing.T, msg string) map[string]any {
	t.Helper()
	var data string
	for _, line := range strings.Split(msg, "\n") {
		if rest, ok := strings.CutPrefix(line, "data: "); ok {
			data += rest
		}
	}
	out := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(data), &out))
	return out
}

func TestRenderEvent_Board(t *testing.T) {
	view := testView("game-1")

	data, err := RenderEvent(model.Event{
		Type:    model.EventBoardChanged,
		GameID:  view.ID,
		Payload: model.BoardChangedPayload{Game: view},
	})
	require.NoError(t, err)

	assert.Equal(t, "board", data.Event)
	assert.Contains(t, data.Data, `"id":"game-1"`)
	assert.Contains(t, data.Data, `"mode":"chess"`)
	assert.NotContains(t, data.Data, "\n")
}

func TestRenderEvent_Deleted(t *testing.T) {
	data, err := RenderEvent(model.Event{Type: model.EventGameDeleted, GameID: "game-1"})
	require.NoError(t, err)

	assert.Equal(t, "deleted", data.Event)
	assert.JSONEq(t, `{"id":"game-1"}`, data.Data)
}

func TestRenderEvent_UnsupportedPayload(t *testing.T) {
	_, err := RenderEvent(model.Event{Type: model.EventBoardChanged, Payload: 42})
	assert.Error(t, err)
}

func TestBroadcaster_PublishWithoutWatchers(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	broadcaster.Publish(model.Event{Type: model.EventGameDeleted, GameID: "nobody"})

	assert.Nil(t, manager.GetHub("nobody"))
}

func TestBroadcaster_PublishBoard(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.Close()
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("game-1")
	client := NewClient(hub, "client1")
	require.True(t, hub.Register(client))

	view := testView("game-1")
	broadcaster.Publish(model.Event{
		Type:    model.EventBoardChanged,
		GameID:  "game-1",
		Payload: model.BoardChangedPayload{Game: view},
	})

	msg := receive(t, client)
	assert.True(t, strings.HasPrefix(msg, "event: board\n"))
	data := dataOf(t, msg)
	assert.Equal(t, "game-1", data["id"])
	board := data["board"].(map[string]any)
	assert.Equal(t, "white", board["turn"])
	assert.Len(t, board["pieces"], 32)
}

func TestBroadcaster_DeletedClosesTheHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("game-1")
	client := NewClient(hub, "client1")
	require.True(t, hub.Register(client))

	broadcaster.Publish(model.Event{Type: model.EventGameDeleted, GameID: "game-1"})

	msg := receive(t, client)
	assert.True(t, strings.HasPrefix(msg, "event: deleted\n"))
	select {
	case _, ok := <-client.send:
		assert.False(t, ok, "channel should be closed after the hub stops")
	case <-time.After(time.Second):
		t.Fatal("hub did not close the client")
	}
	assert.Nil(t, manager.GetHub("game-1"))
	assert.False(t, hub.Register(NewClient(hub, "late")))
}
