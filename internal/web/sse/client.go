package sse

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/fairychess/internal/middleware"
)

const (
	// Time between keepalive pings
	pingPeriod = 15 * time.Second

	// Buffer size for outgoing messages
	sendBufferSize = 64
)

// Client represents a connected SSE client
type Client struct {
	hub         *Hub
	id          string
	send        chan []byte
	connectedAt time.Time
}

// NewClient creates a new SSE client
func NewClient(hub *Hub, id string) *Client {
	if id == "" {
		id = uuid.NewString()
	}
	return &Client{
		hub:         hub,
		id:          id,
		send:        make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
	}
}

// Messages is the stream of formatted events for this client. It is closed
// when the client leaves the hub or the hub stops.
func (c *Client) Messages() <-chan []byte {
	return c.send
}

// ServeSSE streams a game's events to one client. initial is written before
// any broadcast so the client starts from the current board.
func ServeSSE(w http.ResponseWriter, r *http.Request, hub *Hub, initial EventData) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	// The server's write timeout would otherwise cut the stream
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	client := NewClient(hub, r.Header.Get(middleware.RequestIDHeader))
	if !hub.Register(client) {
		http.Error(w, "Game closed", http.StatusGone)
		return
	}
	defer hub.Unregister(client)

	_, _ = w.Write(formatSSEMessage(initial.Event, initial.Data))
	flusher.Flush()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.send:
			if !ok {
				// Hub closed the channel
				return
			}
			if _, err := w.Write(message); err != nil {
				return
			}
			flusher.Flush()

		case <-ticker.C:
			if _, err := w.Write([]byte(": keepalive\n\n")); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
