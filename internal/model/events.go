package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameStarted  EventType = "game_started"
	EventCellSelected EventType = "cell_selected"
	EventMoveAccepted EventType = "move_accepted"
	EventGameEnded    EventType = "game_ended"

	// EventSnapshot is sent to a new subscriber and does not follow a mutation
	EventSnapshot EventType = "snapshot"
)

// Event is published after every mutation of a game
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	Payload   any // Type-specific data
}

// MoveAcceptedPayload contains data for move accepted events
type MoveAcceptedPayload struct {
	Word   string
	Player int
	Score  int
}

// GameEndedPayload contains data for game ended events
type GameEndedPayload struct {
	Scores    [2]int
	Winner    int // 0 on tie
	EndReason EndReason
}
