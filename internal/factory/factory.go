package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/royalsquare/internal/config"
	"github.com/mcoot/royalsquare/internal/dependencies/clock"
	"github.com/mcoot/royalsquare/internal/dependencies/random"
	"github.com/mcoot/royalsquare/internal/services/board"
	"github.com/mcoot/royalsquare/internal/services/dictionary"
	"github.com/mcoot/royalsquare/internal/services/game"
	"github.com/mcoot/royalsquare/internal/services/scoring"
	"github.com/mcoot/royalsquare/internal/services/search"
	"github.com/mcoot/royalsquare/internal/sse"
	"github.com/mcoot/royalsquare/internal/storage"
	"github.com/mcoot/royalsquare/internal/storage/memory"
	redisstorage "github.com/mcoot/royalsquare/internal/storage/redis"
	sqlitestorage "github.com/mcoot/royalsquare/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	SearchService     *search.Service
	GameController    *game.Controller

	// Push
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLiteConfig holds database settings (required if StorageType is "sqlite")
	SQLiteConfig *sqlitestorage.Config
}

// ConfigFrom maps server configuration onto factory configuration
func ConfigFrom(cfg *config.Config, logger *slog.Logger) Config {
	out := Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
	}
	switch cfg.StorageType {
	case config.StorageRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		out.RedisConfig = &redisCfg
	case config.StorageSQLite:
		sqliteCfg := sqlitestorage.DefaultConfig()
		sqliteCfg.Path = cfg.SQLitePath
		out.SQLiteConfig = &sqliteCfg
	}
	return out
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageMemory
	}

	switch storageType {
	case config.StorageMemory:
		return memory.New(), nil
	case config.StorageRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case config.StorageSQLite:
		if cfg.SQLiteConfig == nil {
			return nil, errors.New("SQLiteConfig required when StorageType is sqlite")
		}
		return sqlitestorage.New(*cfg.SQLiteConfig)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be memory, redis or sqlite", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	dictService := dictionary.New(store, logger)
	boardService := board.New(dictService, logger)
	scoringService := scoring.New(dictService)
	searchService := search.New(dictService)
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)
	gameController := game.NewController(
		store,
		boardService,
		scoringService,
		searchService,
		broadcaster,
		clk,
		rnd,
		logger,
	)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		SearchService:     searchService,
		GameController:    gameController,
		HubManager:        hubManager,
		Broadcaster:       broadcaster,
	}
}

// LoadDictionary loads the word list from path, seeding it when missing
func (a *App) LoadDictionary(ctx context.Context, path string) error {
	return a.DictionaryService.LoadOrSeed(ctx, path)
}

// Close releases the SSE hubs and any storage connection
func (a *App) Close() error {
	a.HubManager.Close()
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
