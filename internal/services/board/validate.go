package board

import (
	"github.com/mcoot/royalsquare/internal/model"
)

// Lexicon is the dictionary view the placement rules need
type Lexicon interface {
	Contains(word string) bool
	WordsOfLength(n int) []string
}

// Validate decides whether mv is a legal placement. used holds the
// normalized words already played; opening is true while no points have
// been scored. The first failing check wins. On success the move is
// returned with its word normalized.
func Validate(lex Lexicon, b *model.Board, used []string, mv model.Move, opening bool) (model.Move, error) {
	if !mv.Direction.IsValid() {
		return mv, model.ErrInvalidDirection
	}

	mv.Word = model.NormalizeWord(mv.Word)
	if mv.Word == "" {
		return mv, model.ErrEmptyWord
	}

	for _, w := range used {
		if w == mv.Word {
			return mv, model.ErrWordUsed
		}
	}

	if !lex.Contains(mv.Word) {
		return mv, model.ErrWordNotInDictionary
	}

	if !Fits(b, mv) {
		return mv, model.ErrOutOfBounds
	}

	connected, err := CheckPath(b, mv)
	if err != nil {
		return mv, err
	}

	if opening && mv.Covers(b.Center()) {
		connected = true
	}

	// An opening move on an empty board only connects through the center
	if !connected {
		return mv, model.ErrNotConnected
	}

	return mv, nil
}

// Fits reports whether the whole path of mv lies on the board
func Fits(b *model.Board, mv model.Move) bool {
	if !b.IsValidPosition(mv.Start) {
		return false
	}
	if mv.Direction == model.Horizontal {
		return mv.Start.Col+mv.Length() <= b.Size
	}
	return mv.Start.Row+mv.Length() <= b.Size
}

// CheckPath walks the path of a move that fits on the board. Every occupied
// cell must already hold the matching letter; connected is true when some
// empty cell on the path touches an existing letter.
func CheckPath(b *model.Board, mv model.Move) (connected bool, err error) {
	pos := mv.Start
	for _, want := range mv.Word {
		if have := b.LetterAt(pos); have != 0 {
			if !sameLetter(have, want) {
				return false, &model.LetterMismatchError{Pos: pos}
			}
		} else if b.HasNeighbor(pos) {
			connected = true
		}
		pos = pos.Step(mv.Direction, 1)
	}
	return connected, nil
}
