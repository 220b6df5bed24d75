package request

import (
	"fmt"
	"strings"

	"github.com/mcoot/royalsquare/internal/model"
)

// SelectRequest is the request body for selecting the anchor cell
type SelectRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveRequest is the request body for submitting a word.
// Row and Col are optional; without them the selected cell is used.
type MoveRequest struct {
	Word      string `json:"word"`
	Direction string `json:"direction"`
	Row       *int   `json:"row,omitempty"`
	Col       *int   `json:"col,omitempty"`
}

// Start returns the explicit start cell, or nil to use the selection
func (r MoveRequest) Start() (*model.Position, error) {
	if r.Row == nil && r.Col == nil {
		return nil, nil
	}
	if r.Row == nil || r.Col == nil {
		return nil, fmt.Errorf("row and col must be given together")
	}
	return &model.Position{Row: *r.Row, Col: *r.Col}, nil
}

var directionLabels = map[string]model.Direction{
	"h":             model.Horizontal,
	"horizontal":    model.Horizontal,
	"горизонтально": model.Horizontal,
	"v":             model.Vertical,
	"vertical":      model.Vertical,
	"вертикально":   model.Vertical,
}

// ParseDirection accepts the direction labels offered to users
func ParseDirection(label string) (model.Direction, error) {
	if dir, ok := directionLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return dir, nil
	}
	return model.ParseDirection(label)
}
