package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound     = errors.New("game not found")
	ErrGameNotStarted   = errors.New("game has not been started")
	ErrGameEnded        = errors.New("game is over")
	ErrNoCellSelected   = errors.New("no starting cell selected")
	ErrInvalidPosition  = errors.New("invalid board position")
	ErrInvalidDirection = errors.New("invalid direction")

	// Move rejections
	ErrEmptyWord           = errors.New("word must not be empty")
	ErrWordUsed            = errors.New("word has already been used")
	ErrWordNotInDictionary = errors.New("word is not in the dictionary")
	ErrOutOfBounds         = errors.New("word does not fit on the board")
	ErrLetterMismatch      = errors.New("word does not match letters on the board")
	ErrNotConnected        = errors.New("word must connect to existing letters")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)

// LetterMismatchError names the cell where a word disagrees with the board
type LetterMismatchError struct {
	Pos Position
}

func (e *LetterMismatchError) Error() string {
	// Coordinates are 1-indexed for people
	return fmt.Sprintf("letter mismatch at (%d,%d)", e.Pos.Row+1, e.Pos.Col+1)
}

func (e *LetterMismatchError) Unwrap() error {
	return ErrLetterMismatch
}

// Reason is a stable code for a rejected move
type Reason string

const (
	ReasonEmptyWord       Reason = "empty_word"
	ReasonWordUsed        Reason = "word_used"
	ReasonNotInDictionary Reason = "not_in_dictionary"
	ReasonOutOfBounds     Reason = "out_of_bounds"
	ReasonLetterMismatch  Reason = "letter_mismatch"
	ReasonNotConnected    Reason = "not_connected"
)

var reasons = []struct {
	err    error
	reason Reason
}{
	{ErrEmptyWord, ReasonEmptyWord},
	{ErrWordUsed, ReasonWordUsed},
	{ErrWordNotInDictionary, ReasonNotInDictionary},
	{ErrOutOfBounds, ReasonOutOfBounds},
	{ErrLetterMismatch, ReasonLetterMismatch},
	{ErrNotConnected, ReasonNotConnected},
}

// ReasonOf returns the rejection code for a move error, or "" if err is not a rejection
func ReasonOf(err error) Reason {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ""
}

// IsRejection reports whether err is a move rejection
func IsRejection(err error) bool {
	return ReasonOf(err) != ""
}
