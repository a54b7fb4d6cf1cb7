package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-lighting/internal/config"
	"github.com/KirkDiggler/rpg-lighting/internal/engine/senses"
	"github.com/KirkDiggler/rpg-lighting/internal/errors"
	"github.com/KirkDiggler/rpg-lighting/internal/orchestrators/sight"
	"github.com/KirkDiggler/rpg-lighting/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-lighting/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-lighting/internal/redis"
	speciesbounds "github.com/KirkDiggler/rpg-lighting/internal/repositories/species_bounds"
)

// dependencies is everything the handlers need, built from config
type dependencies struct {
	SightService sight.Service
	EventBus     events.EventBus

	closers []func() error
}

// Close releases connections opened while building
func (d *dependencies) Close() {
	for _, closer := range d.closers {
		if err := closer(); err != nil {
			slog.Warn("Failed to close dependency", "error", err)
		}
	}
}

func newDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	deps := &dependencies{}

	boundsRepo, err := deps.newBoundsRepository(ctx, cfg)
	if err != nil {
		deps.Close()
		return nil, err
	}

	if cfg.SeedDefaults {
		seeded, err := speciesbounds.SeedDefaults(ctx, boundsRepo)
		if err != nil {
			deps.Close()
			return nil, errors.Wrap(err, "failed to seed species bounds")
		}
		slog.Info("Species bounds seeded", "storage", cfg.Storage, "seeded", seeded)
	}

	sensesRoller, err := senses.NewRoller(&senses.Config{
		Roller: dice.DefaultRoller,
	})
	if err != nil {
		deps.Close()
		return nil, errors.Wrap(err, "failed to create senses roller")
	}

	deps.EventBus = events.NewBus()
	sight.SubscribeCalculationLog(deps.EventBus, slog.Default())

	deps.SightService, err = sight.NewOrchestrator(&sight.Config{
		BoundsRepo:   boundsRepo,
		SensesRoller: sensesRoller,
		EventBus:     deps.EventBus,
		IDGenerator:  idgen.NewUUID("calc"),
	})
	if err != nil {
		deps.Close()
		return nil, errors.Wrap(err, "failed to create sight orchestrator")
	}

	return deps, nil
}

func (d *dependencies) newBoundsRepository(ctx context.Context, cfg *config.Config) (speciesbounds.Repository, error) {
	if cfg.Storage != config.StorageRedis {
		return speciesbounds.NewInMemory(&speciesbounds.InMemoryConfig{
			Clock: clock.New(),
		})
	}

	opts := &redisclient.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	}

	var (
		client redisclient.Client
		err    error
	)
	if cfg.Redis.UsesSentinel() {
		client, err = redisclient.NewFailoverClient(cfg.Redis.MasterName, cfg.Redis.Sentinels, opts)
	} else {
		client, err = redisclient.NewClient(cfg.Redis.Addr, opts)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
	}
	d.closers = append(d.closers, client.Close)

	if err := redisclient.Ping(ctx, client, cfg.Redis.PingTimeout); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
	}
	slog.Info("Connected to redis", "addr", cfg.Redis.Addr, "sentinel", cfg.Redis.UsesSentinel())

	return speciesbounds.NewRedis(&speciesbounds.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
}
