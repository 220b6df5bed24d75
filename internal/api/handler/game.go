package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/royalsquare/internal/api/apierr"
	"github.com/mcoot/royalsquare/internal/api/request"
	"github.com/mcoot/royalsquare/internal/api/response"
	"github.com/mcoot/royalsquare/internal/dependencies/clock"
	"github.com/mcoot/royalsquare/internal/middleware"
	"github.com/mcoot/royalsquare/internal/model"
	"github.com/mcoot/royalsquare/internal/services/game"
	"github.com/mcoot/royalsquare/internal/sse"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController game.ControllerInterface
	hubManager     *sse.HubManager
	clock          clock.Clock
	logger         *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	gameController game.ControllerInterface,
	hubManager *sse.HubManager,
	clock clock.Clock,
	logger *slog.Logger,
) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		hubManager:     hubManager,
		clock:          clock,
		logger:         logger,
	}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// fail writes err as an API error. Server-side failures are logged.
func (h *GameHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if apierr.Status(err) >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("game_id", string(gameID(r))),
			slog.String("error", err.Error()),
		)
	}
	apierr.WriteError(w, err)
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.CreateGame(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if err := h.gameController.DeleteGame(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	if h.hubManager != nil {
		h.hubManager.RemoveHub(id)
	}
	response.NoContent(w)
}

// New handles POST /api/v1/games/{id}/new
func (h *GameHandler) New(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.NewGame(r.Context(), gameID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Select handles POST /api/v1/games/{id}/select
func (h *GameHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req request.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	g, err := h.gameController.SelectCell(r.Context(), gameID(r), model.Position{Row: req.Row, Col: req.Col})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Move handles POST /api/v1/games/{id}/moves
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	dir, err := request.ParseDirection(req.Direction)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	start, err := req.Start()
	if err != nil {
		h.fail(w, r, apierr.NewInvalidRequestError(err.Error()))
		return
	}

	id := gameID(r)
	result, err := h.gameController.SubmitMove(r.Context(), id, req.Word, dir, start)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MoveFromModel(result, g))
}

// CheckWord handles GET /api/v1/games/{id}/words/{word}
func (h *GameHandler) CheckWord(w http.ResponseWriter, r *http.Request) {
	check, err := h.gameController.CheckWord(r.Context(), gameID(r), mux.Vars(r)["word"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, response.WordCheckFromModel(check))
}

// Events handles GET /api/v1/games/{id}/events
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	if h.hubManager == nil {
		h.fail(w, r, apierr.NewInternalError())
		return
	}

	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	initial, err := sse.InitialState(g, h.clock.Now())
	if err != nil {
		h.logger.Error("failed to encode initial state",
			slog.String("game_id", string(g.ID)),
			slog.String("error", err.Error()),
		)
		h.fail(w, r, apierr.NewInternalError())
		return
	}

	sse.ServeSSE(w, r, h.hubManager.GetOrCreateHub(g.ID), initial)
}

// Summaries handles GET /api/v1/summaries
func (h *GameHandler) Summaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.gameController.ListSummaries(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameSummaries(summaries))
}
