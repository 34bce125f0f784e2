package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"activity_discovery/internal/config"
	"activity_discovery/internal/publisher"
	"activity_discovery/internal/service"
	"activity_discovery/internal/source/api"
	"activity_discovery/internal/storage/postgres"
)

var (
	errNoSettingsStore = errors.New("radius persistence needs the postgres backend")
	errNoSwipeStore    = errors.New("liked activities need the postgres backend")
)

// backend holds the collaborators selected by configuration.
type backend struct {
	feed     service.FeedSource
	resetter service.DeclinedResetter
	sink     service.DecisionSink
	radius   service.RadiusStore
	swipes   *postgres.SwipeStore

	closers []func() error
}

func (b *backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		_ = b.closers[i]()
	}
}

func buildBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*backend, error) {
	b := &backend{}

	client := api.New(api.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	var db *sqlx.DB
	if cfg.Discovery.Backend == config.BackendPostgres || cfg.Discovery.DecisionSink == config.SinkPostgres {
		var err error
		db, err = sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		b.closers = append(b.closers, db.Close)

		if err := db.PingContext(ctx); err != nil {
			b.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}
		logger.Info("connected to database")
	}

	switch cfg.Discovery.Backend {
	case config.BackendPostgres:
		swipes := postgres.NewSwipeStore(db, postgres.NewTransactionManager(db))
		b.feed = postgres.NewActivityStore(db)
		b.resetter = swipes
		b.radius = postgres.NewSettingsStore(db)
		b.swipes = swipes
	default:
		b.feed = client
		b.resetter = client
	}

	switch cfg.Discovery.DecisionSink {
	case config.SinkRabbitMQ:
		pub, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		b.closers = append(b.closers, pub.Close)
		b.sink = pub
	case config.SinkPostgres:
		b.sink = postgres.NewSwipeStore(db, postgres.NewTransactionManager(db))
	default:
		b.sink = client
	}

	logger.Info("backend ready",
		"backend", cfg.Discovery.Backend,
		"decision_sink", cfg.Discovery.DecisionSink,
	)
	return b, nil
}

func loadConfig(path string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	return cfg, setupLogger(cfg.LogLevel), nil
}
