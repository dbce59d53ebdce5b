// Package console drives a game through numbered text menus
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/game"
)

const invalidInput = "Invalid input."

// errInputClosed unwinds every screen when the reader runs dry
var errInputClosed = errors.Canceled("input closed")

// Hooks are called synchronously at the edges of Run. Either may be nil.
type Hooks struct {
	OnGameStart func(ctx context.Context, g *game.Game)
	OnGameEnd   func(ctx context.Context, g *game.Game)
}

// Config holds the dependencies for a stage
type Config struct {
	Game *game.Game
	In   io.Reader
	Out  io.Writer

	// Pacing is the pause after a result screen; 0 disables it
	Pacing time.Duration
	Hooks  Hooks
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Game == nil {
		vb.RequiredField("Game")
	}
	if c.In == nil {
		vb.RequiredField("In")
	}
	if c.Out == nil {
		vb.RequiredField("Out")
	}
	if c.Pacing < 0 {
		vb.Field("Pacing", "must not be negative")
	}

	return vb.Build()
}

// Stage renders menus and maps selections onto game actions
type Stage struct {
	game   *game.Game
	in     *bufio.Scanner
	out    io.Writer
	pacing time.Duration
	hooks  Hooks
}

// NewStage creates a stage with the provided dependencies
func NewStage(cfg *Config) (*Stage, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Stage{
		game:   cfg.Game,
		in:     bufio.NewScanner(cfg.In),
		out:    cfg.Out,
		pacing: cfg.Pacing,
		hooks:  cfg.Hooks,
	}, nil
}

// Run shows the town menu until the player quits, input ends or ctx is done.
// Only unrecoverable game errors are returned.
func (s *Stage) Run(ctx context.Context) error {
	if s.hooks.OnGameStart != nil {
		s.hooks.OnGameStart(ctx, s.game)
	}

	err := s.town(ctx)

	if s.hooks.OnGameEnd != nil {
		s.hooks.OnGameEnd(ctx, s.game)
	}

	if errors.IsCanceled(err) {
		return nil
	}
	return err
}

func (s *Stage) town(ctx context.Context) error {
	screens := map[int]func(context.Context) error{
		1: s.status,
		2: s.inventory,
		3: s.shop,
		4: s.dungeon,
		5: s.rest,
		6: s.battle,
		7: s.save,
		8: s.load,
	}

	for {
		s.println()
		s.println("Welcome to Sparta village.")
		s.println("Here you can get ready before entering the dungeon.")
		s.println()
		s.println("1. Status")
		s.println("2. Inventory")
		s.println("3. Shop")
		s.println("4. Enter dungeon")
		s.println("5. Rest")
		s.println("6. Battle a monster")
		s.println("7. Save")
		s.println("8. Load")
		s.println("0. Quit")

		choice, err := s.choose(ctx)
		if err != nil {
			return err
		}
		if choice == 0 {
			s.println("Farewell.")
			return nil
		}

		screen, ok := screens[choice]
		if !ok {
			s.println(invalidInput)
			continue
		}
		if err := screen(ctx); err != nil {
			return err
		}
	}
}

// choose reads one selection. Anything that is not a number comes back as -1.
func (s *Stage) choose(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeCanceled, "stage stopped")
	}

	s.println()
	s.printf("Enter your choice.\n>> ")

	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return 0, errors.Wrap(err, "failed to read input")
		}
		return 0, errInputClosed
	}

	n, err := strconv.Atoi(strings.TrimSpace(s.in.Text()))
	if err != nil {
		return -1, nil
	}
	return n, nil
}

// report prints a recoverable error for the player and hands anything else back
func (s *Stage) report(ctx context.Context, err error) error {
	if errors.GetCode(err).Recoverable() {
		s.println(errors.GetMessage(err))
		return nil
	}
	slog.ErrorContext(ctx, "unrecoverable game error", "error", err)
	return err
}

func (s *Stage) pause() {
	if s.pacing > 0 {
		time.Sleep(s.pacing)
	}
}

func (s *Stage) println(a ...interface{}) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stage) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}
