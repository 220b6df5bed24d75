package model

import (
	"slices"
	"time"
)

// GameID uniquely identifies a game
type GameID string

// GameStatus represents the current phase of a game
type GameStatus string

const (
	GameStatusNotStarted GameStatus = "not_started"
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusEnded      GameStatus = "ended"
)

// EndReason says why a game finished
type EndReason string

const (
	EndReasonNone      EndReason = ""
	EndReasonBoardFull EndReason = "board_full"
	EndReasonNoMoves   EndReason = "no_moves"
)

// Player ids
const (
	PlayerOne = 1
	PlayerTwo = 2
)

// Game is the complete mutable state of one two-player game
type Game struct {
	ID            GameID
	Status        GameStatus
	Board         *Board
	CurrentPlayer int    // 1 or 2
	Scores        [2]int // Scores[0] is player 1
	UsedWords     []string
	Selected      *Position // Pending anchor cell, nil when none

	Winner    int // 0 on tie or while in progress
	EndReason EndReason

	CreatedAt time.Time
	StartedAt time.Time
	UpdatedAt time.Time
}

// NewGame creates a game that has not been started
func NewGame(id GameID, now time.Time) *Game {
	return &Game{
		ID:            id,
		Status:        GameStatusNotStarted,
		Board:         NewBoard(BoardSize),
		CurrentPlayer: PlayerOne,
		UsedWords:     []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Reset clears the board, scores and used words and starts the game
func (g *Game) Reset(now time.Time) {
	g.Status = GameStatusInProgress
	g.Board = NewBoard(BoardSize)
	g.CurrentPlayer = PlayerOne
	g.Scores = [2]int{}
	g.UsedWords = []string{}
	g.Selected = nil
	g.Winner = 0
	g.EndReason = EndReasonNone
	g.StartedAt = now
	g.UpdatedAt = now
}

// IsOpeningMove returns true until either player has scored
func (g *Game) IsOpeningMove() bool {
	return g.Scores[0]+g.Scores[1] == 0
}

// IsUsed reports whether a normalized word was already played
func (g *Game) IsUsed(word string) bool {
	return slices.Contains(g.UsedWords, word)
}

// Score returns the score of the given player
func (g *Game) Score(player int) int {
	return g.Scores[player-1]
}

// Credit adds points to the given player
func (g *Game) Credit(player, points int) {
	g.Scores[player-1] += points
}

// Opponent returns the other player
func Opponent(player int) int {
	if player == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// GameSummary is the per-game record kept after a game ends
type GameSummary struct {
	ID          GameID
	Scores      [2]int
	Winner      int // 0 on tie
	EndReason   EndReason
	CompletedAt time.Time
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	clone := *g
	if g.Board != nil {
		clone.Board = g.Board.Clone()
	}
	clone.UsedWords = slices.Clone(g.UsedWords)
	if g.Selected != nil {
		selected := *g.Selected
		clone.Selected = &selected
	}
	return &clone
}
