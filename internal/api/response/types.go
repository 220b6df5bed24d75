package response

import (
	"time"

	"github.com/mcoot/royalsquare/internal/model"
)

// Position represents a board cell, 0-indexed
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Scores holds both players' cumulative scores
type Scores struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

// ScoresFromModel converts the game score pair
func ScoresFromModel(s [2]int) Scores {
	return Scores{Player1: s[0], Player2: s[1]}
}

// Game is the presentation snapshot of a game
type Game struct {
	ID            string     `json:"id"`
	Status        string     `json:"status"`
	Board         [][]string `json:"board"` // "" for an empty cell
	Selected      *Position  `json:"selected"`
	CurrentPlayer int        `json:"current_player"`
	Scores        Scores     `json:"scores"`
	UsedWords     []string   `json:"used_words"`
	Winner        *int       `json:"winner,omitempty"` // Set once ended; 0 is a tie
	EndReason     string     `json:"end_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// GameFromModel builds the snapshot for a game
func GameFromModel(g *model.Game) Game {
	board := make([][]string, g.Board.Size)
	for row := range board {
		board[row] = make([]string, g.Board.Size)
		for col := range board[row] {
			if r := g.Board.Cells[row][col]; r != 0 {
				board[row][col] = string(r)
			}
		}
	}

	var selected *Position
	if g.Selected != nil {
		selected = &Position{Row: g.Selected.Row, Col: g.Selected.Col}
	}

	var winner *int
	if g.Status == model.GameStatusEnded {
		w := g.Winner
		winner = &w
	}

	usedWords := g.UsedWords
	if usedWords == nil {
		usedWords = []string{}
	}

	return Game{
		ID:            string(g.ID),
		Status:        string(g.Status),
		Board:         board,
		Selected:      selected,
		CurrentPlayer: g.CurrentPlayer,
		Scores:        ScoresFromModel(g.Scores),
		UsedWords:     usedWords,
		Winner:        winner,
		EndReason:     string(g.EndReason),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// Move is the response for an accepted move
type Move struct {
	Accepted  bool   `json:"accepted"`
	Word      string `json:"word"`
	Player    int    `json:"player"`
	Score     int    `json:"score"`
	GameOver  bool   `json:"game_over"`
	Winner    *int   `json:"winner,omitempty"`
	EndReason string `json:"end_reason,omitempty"`
	Game      Game   `json:"game"`
}

// MoveFromModel combines a move result with the game after the move
func MoveFromModel(r *model.MoveResult, g *model.Game) Move {
	var winner *int
	if r.GameOver {
		w := r.Winner
		winner = &w
	}
	return Move{
		Accepted:  true,
		Word:      r.Word,
		Player:    r.Player,
		Score:     r.Score,
		GameOver:  r.GameOver,
		Winner:    winner,
		EndReason: string(r.EndReason),
		Game:      GameFromModel(g),
	}
}

// WordCheck is the response for a word lookup
type WordCheck struct {
	Word         string `json:"word"`
	InDictionary bool   `json:"in_dictionary"`
	Used         bool   `json:"used"`
}

// WordCheckFromModel converts model.WordCheck
func WordCheckFromModel(c *model.WordCheck) WordCheck {
	return WordCheck{
		Word:         c.Word,
		InDictionary: c.InDictionary,
		Used:         c.Used,
	}
}

// GameSummary represents a completed game summary
type GameSummary struct {
	ID          string    `json:"id"`
	Scores      Scores    `json:"scores"`
	Winner      int       `json:"winner"` // 0 on tie
	EndReason   string    `json:"end_reason"`
	CompletedAt time.Time `json:"completed_at"`
}

// GameSummaryFromModel converts model.GameSummary
func GameSummaryFromModel(s model.GameSummary) GameSummary {
	return GameSummary{
		ID:          string(s.ID),
		Scores:      ScoresFromModel(s.Scores),
		Winner:      s.Winner,
		EndReason:   string(s.EndReason),
		CompletedAt: s.CompletedAt,
	}
}

// GameSummaries converts a list of summaries
func GameSummaries(summaries []model.GameSummary) []GameSummary {
	result := make([]GameSummary, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, GameSummaryFromModel(s))
	}
	return result
}

// Event is the payload pushed to event stream subscribers
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
	Game      Game      `json:"game"`
}

// EventFromModel converts an event and the game state it produced
func EventFromModel(e model.Event, g *model.Game) Event {
	return Event{
		Type:      string(e.Type),
		Timestamp: e.Timestamp,
		Payload:   eventPayload(e.Payload),
		Game:      GameFromModel(g),
	}
}

func eventPayload(payload any) any {
	switch p := payload.(type) {
	case model.MoveAcceptedPayload:
		return map[string]any{"word": p.Word, "player": p.Player, "score": p.Score}
	case model.GameEndedPayload:
		return map[string]any{"scores": ScoresFromModel(p.Scores), "winner": p.Winner, "end_reason": string(p.EndReason)}
	case model.Position:
		return Position{Row: p.Row, Col: p.Col}
	default:
		return p
	}
}

// Health is the response for the health check
type Health struct {
	Status          string `json:"status"`
	DictionaryWords int    `json:"dictionary_words"`
}
