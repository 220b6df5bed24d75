package model

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Direction is the axis a word is placed along
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// ParseDirection converts a direction name to a Direction
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Horizontal:
		return Horizontal, nil
	case Vertical:
		return Vertical, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Perpendicular returns the other axis
func (d Direction) Perpendicular() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// IsValid returns true for the two known directions
func (d Direction) IsValid() bool {
	return d == Horizontal || d == Vertical
}

// Move is a candidate word placement
type Move struct {
	Word      string
	Start     Position
	Direction Direction
}

// Length returns the number of letters in the move's word
func (m Move) Length() int {
	return utf8.RuneCountInString(m.Word)
}

// Path returns every cell the word covers, in order
func (m Move) Path() []Position {
	path := make([]Position, 0, m.Length())
	for i := 0; i < m.Length(); i++ {
		path = append(path, m.Start.Step(m.Direction, i))
	}
	return path
}

// Covers reports whether the move's path passes through pos
func (m Move) Covers(pos Position) bool {
	for _, p := range m.Path() {
		if p == pos {
			return true
		}
	}
	return false
}

// NormalizeWord trims, NFC-normalizes and lowercases a word so that
// composed and decomposed input compare equal
func NormalizeWord(word string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(word)))
}

// MoveResult describes the outcome of an accepted move
type MoveResult struct {
	Word      string
	Player    int
	Score     int
	GameOver  bool
	Winner    int // 0 on tie or while the game continues
	EndReason EndReason
}

// WordCheck answers a word lookup against a game
type WordCheck struct {
	Word         string
	InDictionary bool
	Used         bool
}
