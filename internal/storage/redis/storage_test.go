package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/royalsquare/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GameTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	_ = s.storage.Close()
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	game := model.NewGame("game-1", now)
	game.Reset(now)
	game.Board.Place("игра", model.Position{Row: 2, Col: 1}, model.Horizontal)
	game.Credit(model.PlayerOne, 4)
	game.UsedWords = append(game.UsedWords, "игра")
	game.Selected = &model.Position{Row: 1, Col: 1}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(model.GameStatusInProgress, retrieved.Status)
	s.Equal([2]int{4, 0}, retrieved.Scores)
	s.Equal([]string{"игра"}, retrieved.UsedWords)
	s.Equal(&model.Position{Row: 1, Col: 1}, retrieved.Selected)
	s.Equal(game.Board.Rows(), retrieved.Board.Rows())
	s.True(now.Equal(retrieved.StartedAt))
}

func (s *StorageSuite) TestGameHasTTL() {
	_ = s.storage.SaveGame(s.ctx, model.NewGame("game-1", time.Now()))

	s.Equal(time.Hour, s.mini.TTL("rsquare:game:game-1"))
}

func (s *StorageSuite) TestGetGameRefreshesTTL() {
	_ = s.storage.SaveGame(s.ctx, model.NewGame("game-1", time.Now()))
	s.mini.FastForward(40 * time.Minute)

	_, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(time.Hour, s.mini.TTL("rsquare:game:game-1"))
}

func (s *StorageSuite) TestKeyPrefix() {
	cfg := DefaultConfig()
	cfg.KeyPrefix = "other"
	store := NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), cfg)
	defer func() { _ = store.Close() }()

	s.Require().NoError(store.SaveGame(s.ctx, model.NewGame("game-1", time.Now())))
	s.True(s.mini.Exists("other:game:game-1"))

	_, err := s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
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
	err := s.storage.SaveGameSummary(s.ctx, &model.GameSummary{
		ID: "old", Scores: [2]int{7, 2}, Winner: 1, EndReason: model.EndReasonNoMoves, CompletedAt: base,
	})
	s.Require().NoError(err)
	err = s.storage.SaveGameSummary(s.ctx, &model.GameSummary{
		ID: "new", Scores: [2]int{5, 5}, EndReason: model.EndReasonBoardFull, CompletedAt: base.Add(time.Minute),
	})
	s.Require().NoError(err)

	summaries, err := s.storage.ListGameSummaries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal(model.GameID("new"), summaries[0].ID)
	s.Equal(0, summaries[0].Winner)
	s.Equal(model.GameID("old"), summaries[1].ID)
	s.Equal(model.EndReasonNoMoves, summaries[1].EndReason)
}

func (s *StorageSuite) TestSaveGameSummaryOverwrites() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	summary := &model.GameSummary{ID: "g", Scores: [2]int{1, 0}, Winner: 1, CompletedAt: base}
	s.Require().NoError(s.storage.SaveGameSummary(s.ctx, summary))

	summary.Scores = [2]int{1, 3}
	summary.Winner = 2
	summary.CompletedAt = base.Add(time.Hour)
	s.Require().NoError(s.storage.SaveGameSummary(s.ctx, summary))

	summaries, err := s.storage.ListGameSummaries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(2, summaries[0].Winner)
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
	err := s.storage.SaveDictionaryWords(s.ctx, []string{"игра", "слово", "дом"})
	s.Require().NoError(err)

	words, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"игра", "слово", "дом"}, words)
}

func (s *StorageSuite) TestSaveDictionaryWordsReplacesExisting() {
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"игра", "слово"})
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"дом"})

	words, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"дом"}, words)
}
