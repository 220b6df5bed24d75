package board

import (
	"log/slog"
	"unicode"

	"github.com/mcoot/royalsquare/internal/model"
	"github.com/mcoot/royalsquare/internal/services/dictionary"
)

// Service validates moves against a game's board using the loaded dictionary
type Service struct {
	dictionary dictionary.ServiceInterface
	logger     *slog.Logger
}

// New creates a new BoardService
func New(dictionary dictionary.ServiceInterface, logger *slog.Logger) *Service {
	return &Service{
		dictionary: dictionary,
		logger:     logger,
	}
}

// ValidateMove checks mv against the current state of game. The returned
// move carries the normalized word.
func (s *Service) ValidateMove(game *model.Game, mv model.Move) (model.Move, error) {
	index, err := s.dictionary.Index()
	if err != nil {
		return mv, err
	}

	validated, err := Validate(index, game.Board, game.UsedWords, mv, game.IsOpeningMove())
	if err != nil {
		s.logger.Debug("move rejected",
			slog.String("game_id", string(game.ID)),
			slog.String("word", mv.Word),
			slog.String("error", err.Error()),
		)
		return validated, err
	}
	return validated, nil
}

// CheckWord reports whether word is in the dictionary
func (s *Service) CheckWord(word string) (bool, error) {
	index, err := s.dictionary.Index()
	if err != nil {
		return false, err
	}
	return index.Contains(word), nil
}

func sameLetter(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}

// Interface for dependency injection
type ServiceInterface interface {
	ValidateMove(game *model.Game, mv model.Move) (model.Move, error)
	CheckWord(word string) (bool, error)
}

var _ ServiceInterface = (*Service)(nil)
