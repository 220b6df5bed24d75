package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"github.com/mcoot/royalsquare/internal/model"
	"github.com/mcoot/royalsquare/internal/storage"
)

// Storage keeps games, summaries and the dictionary in Redis.
// Games are strings holding the shared codec's JSON; summaries live in one
// hash with a sorted set ordering them by completion time.
type Storage struct {
	client *redis.Client
	keys   keyspace
	cfg    Config
}

var _ storage.Storage = (*Storage)(nil)

// New connects to the server at cfg.URL and checks it answers
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient wraps an existing client
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultConfig().KeyPrefix
	}
	return &Storage{
		client: client,
		keys:   keyspace{prefix: prefix},
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := storage.EncodeGame(game)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.keys.game(game.ID), data, s.cfg.GameTTL).Err()
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	var cmd *redis.StringCmd
	if s.cfg.GameTTL > 0 {
		cmd = s.client.GetEx(ctx, s.keys.game(id), s.cfg.GameTTL)
	} else {
		cmd = s.client.Get(ctx, s.keys.game(id))
	}

	data, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get game %s: %w", id, err)
	}
	return storage.DecodeGame(data)
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	return s.client.Del(ctx, s.keys.game(id)).Err()
}

func (s *Storage) SaveGameSummary(ctx context.Context, summary *model.GameSummary) error {
	data, err := storage.EncodeSummary(summary)
	if err != nil {
		return err
	}

	id := string(summary.ID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.keys.summaries(), id, data)
		pipe.ZAdd(ctx, s.keys.summaryOrder(), redis.Z{
			Score:  float64(summary.CompletedAt.UnixMilli()),
			Member: id,
		})
		return nil
	})
	return err
}

// ListGameSummaries returns summaries newest first
func (s *Storage) ListGameSummaries(ctx context.Context) ([]model.GameSummary, error) {
	ids, err := s.client.ZRevRange(ctx, s.keys.summaryOrder(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.GameSummary{}, nil
	}

	values, err := s.client.HMGet(ctx, s.keys.summaries(), ids...).Result()
	if err != nil {
		return nil, err
	}

	summaries := make([]model.GameSummary, 0, len(values))
	for i, val := range values {
		raw, ok := val.(string)
		if !ok {
			continue
		}
		summary, err := storage.DecodeSummary([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("summary %s: %w", ids[i], err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	words, err := s.client.SMembers(ctx, s.keys.dictionary()).Result()
	if err != nil {
		return nil, err
	}
	// Redis drops empty sets, so no members means nothing was saved
	if len(words) == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}
	return words, nil
}

// SaveDictionaryWords replaces the stored word list in one transaction
func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.keys.dictionary())
		if len(words) > 0 {
			pipe.SAdd(ctx, s.keys.dictionary(), lo.ToAnySlice(words)...)
		}
		return nil
	})
	return err
}
