package storage

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/mcoot/royalsquare/internal/model"
)

// gameRecord is the persisted form of a game. The board is kept as one
// string per row with '.' for an empty cell.
type gameRecord struct {
	ID            model.GameID     `json:"id"`
	Status        model.GameStatus `json:"status"`
	Rows          []string         `json:"rows"`
	CurrentPlayer int              `json:"current_player"`
	Scores        [2]int           `json:"scores"`
	UsedWords     []string         `json:"used_words"`
	Selected      *model.Position  `json:"selected,omitempty"`
	Winner        int              `json:"winner,omitempty"`
	EndReason     model.EndReason  `json:"end_reason,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	StartedAt     time.Time        `json:"started_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// summaryRecord is the persisted form of a game summary
type summaryRecord struct {
	ID          model.GameID    `json:"id"`
	Scores      [2]int          `json:"scores"`
	Winner      int             `json:"winner"`
	EndReason   model.EndReason `json:"end_reason"`
	CompletedAt time.Time       `json:"completed_at"`
}

// EncodeGame serializes a game for a storage backend
func EncodeGame(g *model.Game) ([]byte, error) {
	return json.Marshal(gameRecord{
		ID:            g.ID,
		Status:        g.Status,
		Rows:          g.Board.Rows(),
		CurrentPlayer: g.CurrentPlayer,
		Scores:        g.Scores,
		UsedWords:     g.UsedWords,
		Selected:      g.Selected,
		Winner:        g.Winner,
		EndReason:     g.EndReason,
		CreatedAt:     g.CreatedAt,
		StartedAt:     g.StartedAt,
		UpdatedAt:     g.UpdatedAt,
	})
}

// DecodeGame restores a game written by EncodeGame
func DecodeGame(data []byte) (*model.Game, error) {
	var rec gameRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode game: %w", err)
	}

	board := model.NewBoard(len(rec.Rows))
	for row, line := range rec.Rows {
		if utf8.RuneCountInString(line) != board.Size {
			return nil, fmt.Errorf("decode game %s: row %d has %d cells, want %d",
				rec.ID, row, utf8.RuneCountInString(line), board.Size)
		}
		col := 0
		for _, r := range line {
			if r != '.' {
				board.Cells[row][col] = r
			}
			col++
		}
	}

	usedWords := rec.UsedWords
	if usedWords == nil {
		usedWords = []string{}
	}

	return &model.Game{
		ID:            rec.ID,
		Status:        rec.Status,
		Board:         board,
		CurrentPlayer: rec.CurrentPlayer,
		Scores:        rec.Scores,
		UsedWords:     usedWords,
		Selected:      rec.Selected,
		Winner:        rec.Winner,
		EndReason:     rec.EndReason,
		CreatedAt:     rec.CreatedAt,
		StartedAt:     rec.StartedAt,
		UpdatedAt:     rec.UpdatedAt,
	}, nil
}

// EncodeSummary serializes a game summary
func EncodeSummary(s *model.GameSummary) ([]byte, error) {
	return json.Marshal(summaryRecord(*s))
}

// DecodeSummary restores a summary written by EncodeSummary
func DecodeSummary(data []byte) (model.GameSummary, error) {
	var rec summaryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.GameSummary{}, fmt.Errorf("decode summary: %w", err)
	}
	return model.GameSummary(rec), nil
}
