package main

import (
	"fmt"
	"log/slog"

	"support-chat/facade"
	"support-chat/internal"
	"support-chat/moderation"
	"support-chat/repositories"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

type app struct {
	config      internal.Config
	log         *slog.Logger
	db          *badger.DB
	facade      *facade.ChatFacade
	stepOptions moderation.StepOptions
}

func loadConfig() (internal.Config, error) {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return internal.Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

// newApp wires the store, the transcript and the facade. The caller closes db.
func newApp() (*app, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	stepOptions, err := config.StepOptions()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	// Fail fast on a misspelled default pipeline
	if _, err = moderation.ParseSteps(moderation.SplitStepNames(config.DefaultPipeline), stepOptions, log); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	db, err := repositories.OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	transcript := repositories.NewTranscriptRepository(db, log, config.LimitMessages)

	return &app{
		config:      config,
		log:         log,
		db:          db,
		facade:      facade.NewChatFacade(log, repositories.NewRepository(), transcript),
		stepOptions: stepOptions,
	}, nil
}

func (a *app) close() {
	a.log.Info("Closing BadgerDB...")
	_ = a.db.Close()
}
