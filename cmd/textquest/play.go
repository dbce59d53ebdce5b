package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-textquest/internal/handlers/console"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, closeGame, err := newGame(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeGame()

	stage, err := console.NewStage(&console.Config{
		Game:   g,
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Pacing: cfg.Pacing,
		Hooks: console.Hooks{
			OnGameStart: func(ctx context.Context, g *game.Game) {
				slog.InfoContext(ctx, "game started",
					"character_id", g.Player().ID,
					"slot", g.SaveSlot(),
					"storage", cfg.Storage)
			},
			OnGameEnd: func(ctx context.Context, g *game.Game) {
				slog.InfoContext(ctx, "game ended",
					"character_id", g.Player().ID,
					"level", g.Player().Level,
					"gold", g.Player().Gold)
			},
		},
	})
	if err != nil {
		return err
	}

	return stage.Run(ctx)
}
