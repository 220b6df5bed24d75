package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/royalsquare/internal/dependencies/clock"
	"github.com/mcoot/royalsquare/internal/dependencies/random"
	"github.com/mcoot/royalsquare/internal/model"
	"github.com/mcoot/royalsquare/internal/services/board"
	"github.com/mcoot/royalsquare/internal/services/scoring"
	"github.com/mcoot/royalsquare/internal/services/search"
	"github.com/mcoot/royalsquare/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generated game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
)

// Publisher is notified after every successful mutation of a game
type Publisher interface {
	Publish(ctx context.Context, event model.Event, game *model.Game)
}

// NopPublisher discards events
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.Event, *model.Game) {}

// Controller drives the turn and game state machine.
// Mutations are serialized so a game sees one move at a time.
type Controller struct {
	storage        storage.Storage
	boardService   board.ServiceInterface
	scoringService scoring.ServiceInterface
	searchService  search.ServiceInterface
	publisher      Publisher
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger

	mu sync.Mutex
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService board.ServiceInterface,
	scoringService scoring.ServiceInterface,
	searchService search.ServiceInterface,
	publisher Publisher,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Controller{
		storage:        storage,
		boardService:   boardService,
		scoringService: scoringService,
		searchService:  searchService,
		publisher:      publisher,
		clock:          clock,
		random:         random,
		logger:         logger,
	}
}

// CreateGame stores a new game in the not started state
func (c *Controller) CreateGame(ctx context.Context) (*model.Game, error) {
	game := model.NewGame(model.GameID(c.random.String(GameIDLength, GameIDAlphabet)), c.clock.Now())

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created", slog.String("game_id", string(game.ID)))
	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// DeleteGame removes a game. Summaries of finished games are kept.
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	return c.storage.DeleteGame(ctx, gameID)
}

// NewGame resets the board, scores and used words and starts play with player 1.
// It is valid in every state.
func (c *Controller) NewGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game.Reset(now)

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game started", slog.String("game_id", string(gameID)))
	c.publish(ctx, game, model.EventGameStarted, nil)
	return game, nil
}

// SelectCell records the anchor cell for the next move
func (c *Controller) SelectCell(ctx context.Context, gameID model.GameID, pos model.Position) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.inProgressGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.Board.IsValidPosition(pos) {
		return nil, model.ErrInvalidPosition
	}

	game.Selected = &pos
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.publish(ctx, game, model.EventCellSelected, pos)
	return game, nil
}

// SubmitMove validates and plays a word for the current player. The word
// starts at start, or at the selected cell when start is nil. A rejected
// move leaves the game untouched and returns the rejection error.
func (c *Controller) SubmitMove(ctx context.Context, gameID model.GameID, word string, dir model.Direction, start *model.Position) (*model.MoveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.inProgressGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if start == nil {
		if game.Selected == nil {
			return nil, model.ErrNoCellSelected
		}
		start = game.Selected
	}

	mv, err := c.boardService.ValidateMove(game, model.Move{Word: word, Start: *start, Direction: dir})
	if err != nil {
		return nil, err
	}

	points, err := c.scoringService.Apply(game.Board, mv)
	if err != nil {
		return nil, err
	}

	player := game.CurrentPlayer
	game.Credit(player, points)
	game.UsedWords = append(game.UsedWords, mv.Word)
	game.Selected = nil
	game.UpdatedAt = c.clock.Now()

	result := &model.MoveResult{
		Word:   mv.Word,
		Player: player,
		Score:  points,
	}

	// The next player must have something to play, otherwise the game ends now
	game.CurrentPlayer = model.Opponent(player)
	endReason, err := c.checkTermination(game)
	if err != nil {
		return nil, err
	}
	if endReason != model.EndReasonNone {
		game.CurrentPlayer = player
		c.endGame(game, endReason)
		result.GameOver = true
		result.Winner = game.Winner
		result.EndReason = endReason
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("move accepted",
		slog.String("game_id", string(gameID)),
		slog.Int("player", player),
		slog.String("word", mv.Word),
		slog.Int("score", points),
	)
	c.publish(ctx, game, model.EventMoveAccepted, model.MoveAcceptedPayload{
		Word:   mv.Word,
		Player: player,
		Score:  points,
	})

	if result.GameOver {
		if err := c.saveSummary(ctx, game); err != nil {
			return nil, err
		}
		c.publish(ctx, game, model.EventGameEnded, model.GameEndedPayload{
			Scores:    game.Scores,
			Winner:    game.Winner,
			EndReason: game.EndReason,
		})
	}

	return result, nil
}

// CheckWord reports whether word is in the dictionary and already used in
// the game. It does not change the game.
func (c *Controller) CheckWord(ctx context.Context, gameID model.GameID, word string) (*model.WordCheck, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	normalized := model.NormalizeWord(word)
	if normalized == "" {
		return nil, model.ErrEmptyWord
	}

	known, err := c.boardService.CheckWord(normalized)
	if err != nil {
		return nil, err
	}

	return &model.WordCheck{
		Word:         normalized,
		InDictionary: known,
		Used:         game.IsUsed(normalized),
	}, nil
}

// ListSummaries returns the totals of finished games, newest first
func (c *Controller) ListSummaries(ctx context.Context) ([]model.GameSummary, error) {
	return c.storage.ListGameSummaries(ctx)
}

// inProgressGame loads a game that can accept moves
func (c *Controller) inProgressGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	switch game.Status {
	case model.GameStatusNotStarted:
		return nil, model.ErrGameNotStarted
	case model.GameStatusEnded:
		return nil, model.ErrGameEnded
	}
	return game, nil
}

// checkTermination decides whether the game ends before game.CurrentPlayer moves
func (c *Controller) checkTermination(game *model.Game) (model.EndReason, error) {
	if game.Board.IsFull() {
		return model.EndReasonBoardFull, nil
	}

	ok, err := c.searchService.HasLegalMove(game)
	if err != nil {
		return model.EndReasonNone, err
	}
	if !ok {
		return model.EndReasonNoMoves, nil
	}
	return model.EndReasonNone, nil
}

func (c *Controller) endGame(game *model.Game, reason model.EndReason) {
	game.Status = model.GameStatusEnded
	game.EndReason = reason
	game.Winner = c.scoringService.DetermineWinner(game.Scores)

	c.logger.Info("game ended",
		slog.String("game_id", string(game.ID)),
		slog.String("reason", string(reason)),
		slog.Int("winner", game.Winner),
		slog.Int("player1_score", game.Scores[0]),
		slog.Int("player2_score", game.Scores[1]),
	)
}

func (c *Controller) saveSummary(ctx context.Context, game *model.Game) error {
	summary := &model.GameSummary{
		ID:          game.ID,
		Scores:      game.Scores,
		Winner:      game.Winner,
		EndReason:   game.EndReason,
		CompletedAt: game.UpdatedAt,
	}
	if err := c.storage.SaveGameSummary(ctx, summary); err != nil {
		c.logger.Error("failed to save game summary",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

func (c *Controller) publish(ctx context.Context, game *model.Game, eventType model.EventType, payload any) {
	c.publisher.Publish(ctx, model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		GameID:    game.ID,
		Payload:   payload,
	}, game.Clone())
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	NewGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	SelectCell(ctx context.Context, gameID model.GameID, pos model.Position) (*model.Game, error)
	SubmitMove(ctx context.Context, gameID model.GameID, word string, dir model.Direction, start *model.Position) (*model.MoveResult, error)
	CheckWord(ctx context.Context, gameID model.GameID, word string) (*model.WordCheck, error)
	ListSummaries(ctx context.Context) ([]model.GameSummary, error)
}

var _ ControllerInterface = (*Controller)(nil)
