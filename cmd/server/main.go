package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mcoot/royalsquare/internal/api"
	"github.com/mcoot/royalsquare/internal/config"
	"github.com/mcoot/royalsquare/internal/factory"
)

const hubCleanupInterval = time.Minute

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Optional config file (env: RSQUARE_*)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	level, _ := cfg.SlogLevel()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	app, err := factory.New(factory.ConfigFrom(cfg, logger))
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	// Load dictionary, seeding the default word list when missing
	if err := app.LoadDictionary(context.Background(), cfg.DictionaryPath); err != nil {
		logger.Warn("could not load dictionary",
			slog.String("path", cfg.DictionaryPath),
			slog.String("error", err.Error()),
		)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		GameController:    app.GameController,
		DictionaryService: app.DictionaryService,
		HubManager:        app.HubManager,
		Clock:             app.Clock,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", router)

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(mux, serverConfig, logger)
	server.OnShutdown(app.HubManager.Close)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go app.HubManager.RunJanitor(ctx, hubCleanupInterval)

	logger.Info("server configured",
		slog.String("storage_type", cfg.StorageType),
		slog.Int("dictionary_words", app.DictionaryService.WordCount()),
	)
	return server.Run(ctx)
}
