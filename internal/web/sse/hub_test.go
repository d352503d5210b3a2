package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/fairychess/internal/model"
	"github.com/mcoot/fairychess/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "game json",
			eventName: "board",
			data:      `{"id":"game-1","plies":2}`,
			expected:  "event: board\ndata: {\"id\":\"game-1\",\"plies\":2}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "board",
			data:      "WR -- --\n-- BK --\n",
			expected:  "event: board\ndata: WR -- --\ndata: -- BK --\n\n",
		},
		{
			name:      "empty data",
			eventName: "deleted",
			data:      "",
			expected:  "event: deleted\ndata: \n\n",
		},
		{
			name:      "crlf line endings",
			eventName: "restarted",
			data:      "line1\r\nline2\r\n",
			expected:  "event: restarted\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(formatSSEMessage(tt.eventName, tt.data)))
		})
	}
}

func runningHub(t *testing.T, id model.GameID) *Hub {
	t.Helper()
	hub := NewHub(id, testutil.NopLogger())
	go hub.Run()
	t.Cleanup(hub.Close)
	return hub
}

func watch(t *testing.T, hub *Hub, id string) *Client {
	t.Helper()
	client := NewClient(hub, id)
	require.True(t, hub.Register(client))
	return client
}

func TestHub_BoardEventReachesEveryWatcher(t *testing.T) {
	hub := runningHub(t, "game-1")
	first := watch(t, hub, "client1")
	second := watch(t, hub, "client2")
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	data, err := RenderGame(string(model.EventBoardChanged), testView("game-1"))
	require.NoError(t, err)
	hub.BroadcastEvent(data.Event, data.Data)

	for _, client := range []*Client{first, second} {
		msg := receive(t, client)
		assert.True(t, strings.HasPrefix(msg, "event: board\n"), msg)
		game := dataOf(t, msg)
		assert.Equal(t, "game-1", game["id"])
		assert.Equal(t, "chess", game["mode"])
	}
}

func TestHub_CloseDeliversQueuedEventsFirst(t *testing.T) {
	hub := runningHub(t, "game-1")
	client := watch(t, hub, "client1")

	hub.BroadcastEvent("board", `{"plies":1}`)
	hub.BroadcastEvent("board", `{"plies":2}`)
	hub.BroadcastEvent("deleted", `{"id":"game-1"}`)
	hub.Close()

	var events []string
	for msg := range client.Messages() {
		events = append(events, strings.SplitN(string(msg), "\n", 2)[0])
	}
	assert.Equal(t, []string{"event: board", "event: board", "event: deleted"}, events)
}

func TestHub_UnregisterEndsTheStream(t *testing.T) {
	hub := runningHub(t, "game-1")
	client := watch(t, hub, "client1")

	hub.Unregister(client)

	select {
	case _, ok := <-client.Messages():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("stream was not closed")
	}
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_ClosedHubRefusesWatchers(t *testing.T) {
	hub := NewHub("game-1", testutil.NopLogger())
	hub.Close()
	hub.Close()

	assert.False(t, hub.Register(NewClient(hub, "late")))
	hub.Unregister(NewClient(hub, "late"))
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHubManager_OneHubPerGame(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.Close()

	assert.Nil(t, manager.GetHub("game-1"))

	hub := manager.GetOrCreateHub("game-1")
	assert.Same(t, hub, manager.GetOrCreateHub("game-1"))
	assert.Same(t, hub, manager.GetHub("game-1"))
	assert.NotSame(t, hub, manager.GetOrCreateHub("game-2"))
}

func TestHubManager_RemoveHubClosesIt(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	hub := manager.GetOrCreateHub("game-1")
	client := watch(t, hub, "client1")

	manager.RemoveHub("game-1")
	manager.RemoveHub("game-1")

	assert.Nil(t, manager.GetHub("game-1"))
	select {
	case _, ok := <-client.Messages():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("watcher was not disconnected")
	}
	assert.False(t, hub.Register(NewClient(hub, "late")))
}

func TestHubManager_CleanupEmptyHubs(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.Close()

	manager.GetOrCreateHub("idle")
	active := manager.GetOrCreateHub("watched")
	watch(t, active, "client1")
	require.Eventually(t, func() bool { return active.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	manager.CleanupEmptyHubs()

	assert.Nil(t, manager.GetHub("idle"))
	assert.Same(t, active, manager.GetHub("watched"))
}

func TestHubManager_SweepEmptyHubs(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	manager.GetOrCreateHub("idle")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		manager.SweepEmptyHubs(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return manager.GetHub("idle") == nil }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep did not stop after cancel")
	}
}

func TestHubManager_CloseStopsEveryHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	first := manager.GetOrCreateHub("game-1")
	second := manager.GetOrCreateHub("game-2")

	manager.Close()

	assert.Nil(t, manager.GetHub("game-1"))
	assert.Nil(t, manager.GetHub("game-2"))
	assert.False(t, first.Register(NewClient(first, "late")))
	assert.False(t, second.Register(NewClient(second, "late")))
}

func readEvent(t *testing.T, r *bufio.Reader) string {
	t.Helper()
	var sb strings.Builder
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		if line == "\n" {
			return sb.String()
		}
		sb.WriteString(line)
	}
}

func TestServeSSE_InitialBoardThenBroadcastsUntilDeleted(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.Close()
	hub := manager.GetOrCreateHub("game-1")

	initial, err := RenderGame(string(model.EventBoardChanged), testView("game-1"))
	require.NoError(t, err)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeSSE(w, r, hub, initial)
	}))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	first := readEvent(t, reader)
	assert.True(t, strings.HasPrefix(first, "event: board\n"), first)
	assert.Equal(t, "game-1", dataOf(t, first)["id"])

	hub.BroadcastEvent("deleted", `{"id":"game-1"}`)
	manager.RemoveHub("game-1")

	assert.Equal(t, "event: deleted\ndata: {\"id\":\"game-1\"}\n", readEvent(t, reader))
	_, err = reader.ReadString('\n')
	assert.Error(t, err)
}

func TestServeSSE_ClosedHubIsGone(t *testing.T) {
	hub := NewHub("game-1", testutil.NopLogger())
	hub.Close()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/game-1/events", nil)
	ServeSSE(rec, req, hub, EventData{Event: "board", Data: "{}"})

	assert.Equal(t, http.StatusGone, rec.Code)
}
