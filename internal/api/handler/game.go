package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/fairychess/internal/api/request"
	"github.com/mcoot/fairychess/internal/api/response"
	"github.com/mcoot/fairychess/internal/model"
	"github.com/mcoot/fairychess/internal/rules"
	"github.com/mcoot/fairychess/internal/search"
	"github.com/mcoot/fairychess/internal/services/game"
	"github.com/mcoot/fairychess/internal/web/sse"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	hubManager     *sse.HubManager
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, hubManager *sse.HubManager) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		hubManager:     hubManager,
	}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// decode reads a JSON body. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return NewInvalidRequestError("invalid request body")
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.gameController.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameListFromViews(views))
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.gameController.CreateGame(r.Context(), game.CreateParams{
		Name:     req.Name,
		Mode:     req.Mode,
		AI:       req.AI,
		Strategy: req.Strategy,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.GameFromView(view))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromView(view))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.DeleteGame(r.Context(), gameID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Touch handles POST /api/v1/games/{id}/touch
func (h *GameHandler) Touch(w http.ResponseWriter, r *http.Request) {
	var req request.TouchRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.X == nil || req.Y == nil {
		WriteError(w, NewInvalidRequestError("x and y are required"))
		return
	}

	result, err := h.gameController.Touch(r.Context(), gameID(r), *req.X, *req.Y)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MoveResultFromModel(result))
}

// Ready handles POST /api/v1/games/{id}/ready
func (h *GameHandler) Ready(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.Ready(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MoveResultFromModel(result))
}

// Restart handles POST /api/v1/games/{id}/restart
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	view, err := h.gameController.Restart(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromView(view))
}

// NewGame handles POST /api/v1/games/{id}/new
func (h *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	var req request.NewGameRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	ai := true
	if req.AI != nil {
		ai = *req.AI
	}

	view, err := h.gameController.StartNewGame(r.Context(), gameID(r), req.Mode, ai)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromView(view))
}

// Events handles GET /api/v1/games/{id}/events
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	view, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	initial, err := sse.RenderGame(string(model.EventBoardChanged), view)
	if err != nil {
		WriteError(w, NewInternalError())
		return
	}

	hub := h.hubManager.GetOrCreateHub(view.ID)
	sse.ServeSSE(w, r, hub, initial)
}

// Modes handles GET /api/v1/modes
func (h *GameHandler) Modes(w http.ResponseWriter, r *http.Request) {
	resp := response.Modes{Strategies: []string{search.StrategyMinimax, search.StrategyRandom}}
	for _, m := range rules.Modes() {
		resp.Modes = append(resp.Modes, m.String())
	}
	response.JSON(w, http.StatusOK, resp)
}
