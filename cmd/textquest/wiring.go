package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-textquest/internal/config"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-textquest/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-textquest/internal/pkg/roller"
	"github.com/KirkDiggler/rpg-textquest/internal/redis"
	"github.com/KirkDiggler/rpg-textquest/internal/repositories/snapshot"
)

var loggedEvents = []string{
	combat.EventPlayerDefeated,
	combat.EventMonsterDefeated,
	combat.EventExited,
	dungeon.EventDungeonCleared,
	dungeon.EventDungeonFailed,
	dungeon.EventLevelUp,
}

// newGame wires a game from config. The returned func releases the snapshot store.
func newGame(ctx context.Context, cfg *config.Config) (*game.Game, func(), error) {
	repo, closeRepo, err := newSnapshotRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	bus := events.NewBus()
	for _, eventType := range loggedEvents {
		bus.SubscribeFunc(eventType, 0, logEvent)
	}

	g, err := game.New(&game.Config{
		Roller:      newRoller(cfg.Seed),
		EventBus:    bus,
		Snapshots:   repo,
		IDGenerator: idgen.NewUUID("char"),
		SaveSlot:    cfg.SaveSlot,
		PlayerName:  cfg.PlayerName,
	})
	if err != nil {
		closeRepo()
		return nil, nil, err
	}

	return g, closeRepo, nil
}

func newRoller(seed uint64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	return roller.NewSeeded(seed)
}

func newSnapshotRepository(ctx context.Context, cfg *config.Config) (snapshot.Repository, func(), error) {
	switch cfg.Storage {
	case config.StorageRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		repo, err := snapshot.NewRedis(&snapshot.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil

	case config.StorageSQLite:
		repo, err := snapshot.NewSQLite(ctx, &snapshot.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil

	default:
		repo, err := snapshot.NewFile(&snapshot.FileConfig{Root: cfg.SaveRoot})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

func logEvent(ctx context.Context, e events.Event) error {
	attrs := []any{"type", e.Type()}
	if src := e.Source(); src != nil {
		attrs = append(attrs, "source", src.GetID())
	}
	if target := e.Target(); target != nil {
		attrs = append(attrs, "target", target.GetID())
	}
	slog.InfoContext(ctx, "game event", attrs...)
	return nil
}
