package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/shell"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/shell/config"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore/memoryengine"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore/postgresengine"
)

// openEventStore builds the configured event store. The returned func releases its connections.
func openEventStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (shell.EventStore, func(), error) {
	if cfg.Engine == config.EngineMemory {
		logger.Debug("using the in-memory event store")
		return memoryengine.NewEventStore(memoryengine.WithLogger(logger)), func() {}, nil
	}

	options := []postgresengine.Option{
		postgresengine.WithTableName(cfg.TableName),
		postgresengine.WithLogger(logger),
	}

	var es postgresengine.EventStore
	var closeFn func()
	var err error

	switch cfg.Adapter {
	case config.AdapterSQLDB:
		db, openErr := config.NewSQLDB(ctx, cfg.DSN)
		if openErr != nil {
			return nil, nil, openErr
		}
		closeFn = func() { _ = db.Close() }
		es, err = postgresengine.NewEventStoreFromSQLDB(db, options...)

	case config.AdapterSQLX:
		db, openErr := config.NewSQLX(ctx, cfg.DSN)
		if openErr != nil {
			return nil, nil, openErr
		}
		closeFn = func() { _ = db.Close() }
		es, err = postgresengine.NewEventStoreFromSQLX(db, options...)

	default:
		pool, openErr := config.NewPGXPool(ctx, cfg.DSN)
		if openErr != nil {
			return nil, nil, openErr
		}
		closeFn = pool.Close
		es, err = postgresengine.NewEventStoreFromPGXPool(pool, options...)
	}

	if err != nil {
		closeFn()
		return nil, nil, err
	}

	if err = es.CreateSchema(ctx); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("creating the events table: %w", err)
	}

	logger.Debug("using the postgres event store", "adapter", cfg.Adapter, "table", cfg.TableName)

	return es, closeFn, nil
}
