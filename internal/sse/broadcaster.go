package sse

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mcoot/royalsquare/internal/api/response"
	"github.com/mcoot/royalsquare/internal/model"
)

// StateEvent is the SSE event name carrying a game snapshot
const StateEvent = "state"

// Broadcaster pushes game snapshots to the clients watching each game
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

// Publish sends the event and the resulting game state to the game's hub.
// Games nobody is watching are skipped.
func (b *Broadcaster) Publish(ctx context.Context, event model.Event, game *model.Game) {
	hub := b.hubManager.GetHub(game.ID)
	if hub == nil {
		return
	}

	data, err := EncodeState(event, game)
	if err != nil {
		b.logger.Error("sse failed to encode game state",
			slog.String("game_id", string(game.ID)),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(StateEvent, data)
}

// EncodeState renders the JSON payload of a state event
func EncodeState(event model.Event, game *model.Game) (string, error) {
	data, err := json.Marshal(response.EventFromModel(event, game))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// InitialState renders the state message sent when a client connects
func InitialState(game *model.Game, at time.Time) ([]byte, error) {
	data, err := EncodeState(model.Event{Type: model.EventSnapshot, Timestamp: at, GameID: game.ID}, game)
	if err != nil {
		return nil, err
	}
	return formatSSEMessage(StateEvent, data), nil
}
