package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/mcoot/royalsquare/internal/model"
	"github.com/mcoot/royalsquare/internal/services/dictionary"
)

// Lexicon is the membership test used to credit cross words
type Lexicon interface {
	Contains(word string) bool
}

// Service places validated moves and scores them
type Service struct {
	dictionary dictionary.ServiceInterface
}

// New creates a new ScoringService
func New(dictionary dictionary.ServiceInterface) *Service {
	return &Service{
		dictionary: dictionary,
	}
}

// Apply writes a validated move onto the board and returns its score
func (s *Service) Apply(board *model.Board, mv model.Move) (int, error) {
	index, err := s.dictionary.Index()
	if err != nil {
		return 0, err
	}
	return Apply(index, board, mv), nil
}

// DetermineWinner returns the player with the higher score, or 0 on a tie
func (s *Service) DetermineWinner(scores [2]int) int {
	return DetermineWinner(scores)
}

// Apply places mv and scores it. The score is the word length plus, for each
// letter of the word, the length of the perpendicular word through it when
// that word is longer than one letter and in the dictionary.
func Apply(lex Lexicon, board *model.Board, mv model.Move) int {
	board.Place(mv.Word, mv.Start, mv.Direction)

	score := mv.Length()
	for _, pos := range mv.Path() {
		cross := board.CrossWord(pos, mv.Direction)
		n := utf8.RuneCountInString(cross)
		if n > 1 && lex.Contains(strings.ToLower(cross)) {
			score += n
		}
	}
	return score
}

// DetermineWinner compares cumulative scores. Equal scores are a tie (0).
func DetermineWinner(scores [2]int) int {
	switch {
	case scores[0] > scores[1]:
		return model.PlayerOne
	case scores[1] > scores[0]:
		return model.PlayerTwo
	default:
		return 0
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Apply(board *model.Board, mv model.Move) (int, error)
	DetermineWinner(scores [2]int) int
}

var _ ServiceInterface = (*Service)(nil)
