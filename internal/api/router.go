package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/fairychess/internal/api/handler"
	"github.com/mcoot/fairychess/internal/api/middleware"
	"github.com/mcoot/fairychess/internal/services/game"
	"github.com/mcoot/fairychess/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	HubManager     *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.HubManager)

	// Logging is outermost so recovered panics are logged with their 500
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.Recovery(cfg.Logger))

	api.HandleFunc("/modes", gameHandler.Modes).Methods(http.MethodGet)

	games := api.PathPrefix("/games").Subrouter()
	games.HandleFunc("", gameHandler.List).Methods(http.MethodGet)
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("/{id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	games.HandleFunc("/{id}/touch", gameHandler.Touch).Methods(http.MethodPost)
	games.HandleFunc("/{id}/ready", gameHandler.Ready).Methods(http.MethodPost)
	games.HandleFunc("/{id}/restart", gameHandler.Restart).Methods(http.MethodPost)
	games.HandleFunc("/{id}/new", gameHandler.NewGame).Methods(http.MethodPost)
	games.HandleFunc("/{id}/events", gameHandler.Events).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
