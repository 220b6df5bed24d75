package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/royalsquare/internal/api/handler"
	"github.com/mcoot/royalsquare/internal/api/middleware"
	"github.com/mcoot/royalsquare/internal/api/response"
	"github.com/mcoot/royalsquare/internal/dependencies/clock"
	"github.com/mcoot/royalsquare/internal/services/dictionary"
	"github.com/mcoot/royalsquare/internal/services/game"
	"github.com/mcoot/royalsquare/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	GameController    game.ControllerInterface
	DictionaryService dictionary.ServiceInterface
	HubManager        *sse.HubManager
	Clock             clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.HubManager, cfg.Clock, cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID)
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/new", gameHandler.New).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/select", gameHandler.Select).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/moves", gameHandler.Move).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/words/{word}", gameHandler.CheckWord).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/events", gameHandler.Events).Methods(http.MethodGet)
	api.HandleFunc("/summaries", gameHandler.Summaries).Methods(http.MethodGet)

	api.HandleFunc("/health", healthHandler(cfg.DictionaryService)).Methods(http.MethodGet)

	return r
}

func healthHandler(dict dictionary.ServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !dict.IsLoaded() {
			response.JSON(w, http.StatusServiceUnavailable, response.Health{Status: "dictionary not loaded"})
			return
		}
		response.JSON(w, http.StatusOK, response.Health{Status: "ok", DictionaryWords: dict.WordCount()})
	}
}
