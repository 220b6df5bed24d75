package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/royalsquare/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := model.NewGame("game-1", time.Now())
	game.Reset(time.Now())
	game.Board.Place("игра", model.Position{Row: 2, Col: 1}, model.Horizontal)

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(model.GameStatusInProgress, retrieved.Status)
	s.Equal('И', retrieved.Board.LetterAt(model.Position{Row: 2, Col: 1}))
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSavedGameIsIsolatedFromCaller() {
	game := model.NewGame("game-1", time.Now())
	_ = s.storage.SaveGame(s.ctx, game)

	game.Board.Place("дом", model.Position{Row: 0, Col: 0}, model.Horizontal)
	game.UsedWords = append(game.UsedWords, "дом")

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.True(retrieved.Board.IsEmpty(model.Position{Row: 0, Col: 0}))
	s.Empty(retrieved.UsedWords)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, model.NewGame("game-1", time.Now()))

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Summary tests

func (s *StorageSuite) TestListGameSummariesNewestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveGameSummary(s.ctx, &model.GameSummary{ID: "old", Scores: [2]int{4, 2}, Winner: 1, CompletedAt: base})
	_ = s.storage.SaveGameSummary(s.ctx, &model.GameSummary{ID: "new", Scores: [2]int{3, 3}, CompletedAt: base.Add(time.Hour)})

	summaries, err := s.storage.ListGameSummaries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal(model.GameID("new"), summaries[0].ID)
	s.Equal(model.GameID("old"), summaries[1].ID)
	s.Equal(1, summaries[1].Winner)
}

func (s *StorageSuite) TestListGameSummariesEmpty() {
	summaries, err := s.storage.ListGameSummaries(s.ctx)
	s.Require().NoError(err)
	s.Empty(summaries)
}

// Dictionary tests

func (s *StorageSuite) TestDictionaryNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"игра", "слово"}
	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}
