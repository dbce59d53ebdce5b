package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-textquest/internal/entities"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/game"
)

var (
	simRuns   int
	simTier   string
	simRestAt int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run dungeon attempts back to back and report the outcome",
	Long: `simulate sends a fresh character into one dungeon tier over and over,
resting whenever health drops below --rest-at and gold allows. Pair it with
--seed for reproducible numbers.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simRuns, "runs", 1000, "number of dungeon attempts")
	simulateCmd.Flags().StringVar(&simTier, "tier", string(entities.TierNormal), "EASY, NORMAL or HARD")
	simulateCmd.Flags().IntVar(&simRestAt, "rest-at", 50, "rest when health falls below this")
}

type simulation struct {
	attempts  int
	clears    int
	failures  int
	levelUps  int
	rests     int
	lowHealth int
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("runs", simRuns, 1, vb)
	errors.ValidateMin("rest-at", simRestAt, 0, vb)
	if err := vb.Build(); err != nil {
		return err
	}
	tier, err := entities.TierByTag(entities.TierTag(simTier))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	g, closeGame, err := newGame(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeGame()

	var sim simulation
	player := g.Player()
	for i := 0; i < simRuns; i++ {
		if player.Health < simRestAt && player.Gold >= game.RestCost {
			if _, err := g.Rest(ctx); err != nil {
				return err
			}
			sim.rests++
		}

		result, err := g.EnterDungeon(ctx, tier.Tag)
		if err != nil {
			return err
		}
		sim.attempts++
		if result.Cleared {
			sim.clears++
		} else {
			sim.failures++
		}
		if result.LeveledUp {
			sim.levelUps++
		}
		if player.Health <= 0 {
			sim.lowHealth++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d attempts\n", tier.Name, sim.attempts)
	fmt.Fprintf(out, "  cleared   %d (%.1f%%)\n", sim.clears, percent(sim.clears, sim.attempts))
	fmt.Fprintf(out, "  failed    %d (%.1f%%)\n", sim.failures, percent(sim.failures, sim.attempts))
	fmt.Fprintf(out, "  rests     %d\n", sim.rests)
	fmt.Fprintf(out, "  ended at or below 0 health %d times\n", sim.lowHealth)
	fmt.Fprintf(out, "final: Lv. %d, attack %g, defense %d, health %d, gold %d G (%d level-ups)\n",
		player.Level, player.Attack, player.Defense, player.Health, player.Gold, sim.levelUps)
	return nil
}

func percent(n, total int) float64 {
	return float64(n) * 100 / float64(total)
}
