package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/greed-island/internal/clients/gamemaster"
	"github.com/KirkDiggler/greed-island/internal/config"
	"github.com/KirkDiggler/greed-island/internal/errors"
	"github.com/KirkDiggler/greed-island/internal/orchestrators/game"
	"github.com/KirkDiggler/greed-island/internal/pkg/clock"
	"github.com/KirkDiggler/greed-island/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/greed-island/internal/redis"
	"github.com/KirkDiggler/greed-island/internal/repositories/session"
)

// app holds the wired game service and whatever must be closed with it
type app struct {
	games   game.Service
	closers []func() error
}

// Close releases resources in reverse order of creation
func (a *app) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func buildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	a := &app{}

	repo, err := a.sessionRepository(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	gm, err := a.gameMaster(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	games, err := game.NewOrchestrator(&game.Config{
		SessionRepo:  repo,
		GameMaster:   gm,
		IDGenerator:  idgen.NewUUID(""),
		Clock:        clock.New(),
		Logger:       logger.Named("game"),
		ResolveDelay: cfg.Game.ResolveDelay,
		PlayerName:   cfg.Game.PlayerName,
	})
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "failed to create game orchestrator")
	}
	a.games = games

	return a, nil
}

func (a *app) sessionRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (session.Repository, error) {
	if cfg.Session.Store != config.StoreRedis {
		logger.Info("using in-memory session store")
		return session.NewInMemory(), nil
	}

	client, err := redisclient.NewClient(cfg.Redis.Addr, &redisclient.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}
	a.closers = append(a.closers, client.Close)

	if err := redisclient.Ping(ctx, client); err != nil {
		return nil, err
	}

	repo, err := session.NewRedisRepository(&session.Config{
		Client: client,
		TTL:    cfg.Session.TTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session repository")
	}

	logger.Info("using redis session store", zap.String("addr", cfg.Redis.Addr))
	return repo, nil
}

func (a *app) gameMaster(ctx context.Context, cfg *config.Config, logger *zap.Logger) (gamemaster.Client, error) {
	gmLogger := logger.Named("gamemaster")

	var next gamemaster.Client
	switch cfg.GameMaster.Provider {
	case config.ProviderGemini:
		gemini, err := gamemaster.NewGemini(ctx, &gamemaster.GeminiConfig{
			APIKey:    cfg.GameMaster.APIKey,
			Model:     cfg.GameMaster.Model,
			Timeout:   cfg.GameMaster.Timeout,
			RateLimit: cfg.GameMaster.RateLimit,
			Burst:     cfg.GameMaster.Burst,
			Logger:    gmLogger,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create gemini game master")
		}
		a.closers = append(a.closers, gemini.Close)
		next = gemini
	default:
		scripted, err := gamemaster.NewScripted(&gamemaster.ScriptedConfig{Logger: gmLogger})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create scripted game master")
		}
		next = scripted
	}

	logger.Info("game master ready", zap.String("provider", cfg.GameMaster.Provider))
	return gamemaster.NewFallback(next, gmLogger), nil
}
