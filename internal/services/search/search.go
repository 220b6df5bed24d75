// Package search decides whether any legal move remains on a board.
package search

import (
	"github.com/mcoot/royalsquare/internal/model"
	"github.com/mcoot/royalsquare/internal/services/board"
	"github.com/mcoot/royalsquare/internal/services/dictionary"
)

var directions = [2]model.Direction{model.Horizontal, model.Vertical}

// FindMove returns the first legal move it finds, scanning start cells in
// row-major order, horizontal before vertical, shorter words first. Every
// candidate goes through board.Validate, so the rules match a submitted move.
func FindMove(lex board.Lexicon, b *model.Board, used []string, opening bool) (model.Move, bool) {
	if b.IsFull() {
		return model.Move{}, false
	}

	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			start := model.Position{Row: row, Col: col}
			for _, dir := range directions {
				if mv, ok := findFrom(lex, b, used, opening, start, dir); ok {
					return mv, true
				}
			}
		}
	}
	return model.Move{}, false
}

// HasLegalMove reports whether any unused dictionary word can be placed
func HasLegalMove(lex board.Lexicon, b *model.Board, used []string, opening bool) bool {
	_, ok := FindMove(lex, b, used, opening)
	return ok
}

// findFrom tries every window that starts at start and runs to the board edge
func findFrom(lex board.Lexicon, b *model.Board, used []string, opening bool, start model.Position, dir model.Direction) (model.Move, bool) {
	room := b.Size - start.Col
	if dir == model.Vertical {
		room = b.Size - start.Row
	}

	for n := 1; n <= room; n++ {
		for _, word := range lex.WordsOfLength(n) {
			mv := model.Move{Word: word, Start: start, Direction: dir}
			if _, err := board.Validate(lex, b, used, mv, opening); err == nil {
				return mv, true
			}
		}
	}
	return model.Move{}, false
}

// Service runs the search against a game using the loaded dictionary
type Service struct {
	dictionary dictionary.ServiceInterface
}

// New creates a new search Service
func New(dictionary dictionary.ServiceInterface) *Service {
	return &Service{
		dictionary: dictionary,
	}
}

// HasLegalMove reports whether the player to move in game can play anything
func (s *Service) HasLegalMove(game *model.Game) (bool, error) {
	index, err := s.dictionary.Index()
	if err != nil {
		return false, err
	}
	return HasLegalMove(index, game.Board, game.UsedWords, game.IsOpeningMove()), nil
}

// Interface for dependency injection
type ServiceInterface interface {
	HasLegalMove(game *model.Game) (bool, error)
}

var _ ServiceInterface = (*Service)(nil)
