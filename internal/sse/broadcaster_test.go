package sse

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mcoot/royalsquare/internal/model"
	"github.com/mcoot/royalsquare/internal/testutil"
)

func testGame() *model.Game {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	game := model.NewGame("GAME1", now)
	game.Reset(now)
	game.Board.Place("игра", model.Position{Row: 2, Col: 1}, model.Horizontal)
	game.Scores = [2]int{4, 0}
	game.UsedWords = []string{"игра"}
	game.CurrentPlayer = model.PlayerTwo
	return game
}

func decodeState(t *testing.T, msg []byte) map[string]any {
	t.Helper()
	text := string(msg)
	if !strings.HasPrefix(text, "event: state\ndata: ") {
		t.Fatalf("unexpected message %q", text)
	}
	payload := strings.TrimSuffix(strings.TrimPrefix(text, "event: state\ndata: "), "\n\n")

	var decoded map[string]any
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		t.Fatalf("state payload is not JSON: %v", err)
	}
	return decoded
}

func TestBroadcaster_PublishSendsSnapshot(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.Close()
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	game := testGame()
	hub := manager.GetOrCreateHub(game.ID)
	client := NewClient(hub)
	hub.Register(client)
	waitForClients(t, hub, 1)

	broadcaster.Publish(context.Background(), model.Event{
		Type:      model.EventMoveAccepted,
		Timestamp: time.Now(),
		GameID:    game.ID,
		Payload:   model.MoveAcceptedPayload{Word: "игра", Player: 1, Score: 4},
	}, game)

	select {
	case msg := <-client.send:
		decoded := decodeState(t, msg)
		if decoded["type"] != "move_accepted" {
			t.Errorf("type = %v, want move_accepted", decoded["type"])
		}
		payload := decoded["payload"].(map[string]any)
		if payload["word"] != "игра" || payload["score"] != float64(4) {
			t.Errorf("unexpected payload %v", payload)
		}
		snapshot := decoded["game"].(map[string]any)
		if snapshot["current_player"] != float64(2) {
			t.Errorf("current_player = %v, want 2", snapshot["current_player"])
		}
		row := snapshot["board"].([]any)[2].([]any)
		if row[0] != "" || row[1] != "И" || row[4] != "А" {
			t.Errorf("board row 2 = %v", row)
		}
	case <-time.After(time.Second):
		t.Fatal("client did not receive state event")
	}
}

func TestBroadcaster_PublishWithoutHubIsNoop(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	broadcaster.Publish(context.Background(), model.Event{Type: model.EventGameStarted}, testGame())

	if manager.GetHub("GAME1") != nil {
		t.Error("Publish created a hub")
	}
}

func TestInitialState(t *testing.T) {
	msg, err := InitialState(testGame(), time.Now())
	if err != nil {
		t.Fatalf("InitialState returned error: %v", err)
	}

	decoded := decodeState(t, msg)
	if decoded["type"] != "snapshot" {
		t.Errorf("type = %v, want snapshot", decoded["type"])
	}
	scores := decoded["game"].(map[string]any)["scores"].(map[string]any)
	if scores["player1"] != float64(4) {
		t.Errorf("player1 score = %v, want 4", scores["player1"])
	}
}
