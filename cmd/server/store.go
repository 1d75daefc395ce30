package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todo-service/internal/adapters/storage"
	badgerstore "github.com/jsamuelsen11/todo-service/internal/adapters/storage/badger"
	mongostore "github.com/jsamuelsen11/todo-service/internal/adapters/storage/mongo"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// openedStore is the todo repository plus what shutdown needs to release it.
type openedStore struct {
	repo   ports.TodoRepository
	health ports.HealthChecker
	close  func(ctx context.Context) error
}

// openStore connects the configured driver and wraps its repository with
// tracing and metrics.
func openStore(ctx context.Context, cfg config.StorageConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*openedStore, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		s, err := mongostore.Connect(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureIndexes(ctx); err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("ensuring indexes: %w", err)
		}
		repo := mongostore.NewRepository(s)
		return &openedStore{
			repo:   storage.Instrument(repo, config.DriverMongo, metrics),
			health: repo,
			close:  s.Close,
		}, nil

	case config.DriverBadger:
		db, err := badgerstore.Open(badgerstore.OptionsFromConfig(cfg.Badger, logger))
		if err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "opened badger store",
			slog.String("path", cfg.Badger.Path),
			slog.Bool("in_memory", cfg.Badger.InMemory),
		)
		repo := badgerstore.NewRepository(db)
		return &openedStore{
			repo:   storage.Instrument(repo, config.DriverBadger, metrics),
			health: repo,
			close:  func(context.Context) error { return db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func closeStore(s *openedStore, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), storeCloseTimeout)
	defer cancel()

	if err := s.close(ctx); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}
}
