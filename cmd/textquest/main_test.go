package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-textquest/internal/config"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/pkg/roller"
)

type CLITestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.ctx = context.Background()
	s.T().Setenv("TEXTQUEST_SAVE_ROOT", s.T().TempDir())
}

func (s *CLITestSuite) baseConfig(storage config.Storage) *config.Config {
	return &config.Config{
		SaveRoot:   s.T().TempDir(),
		SaveSlot:   "SaveData",
		Storage:    storage,
		SQLitePath: filepath.Join(s.T().TempDir(), "textquest.db"),
		Seed:       7,
		LogLevel:   config.LogLevelWarn,
	}
}

func (s *CLITestSuite) TestNewRoller() {
	s.Equal(dice.DefaultRoller, newRoller(0))
	s.IsType(&roller.Seeded{}, newRoller(42))
}

func (s *CLITestSuite) TestGameRoundTripsThroughEachBackend() {
	mr := miniredis.RunT(s.T())

	backends := []config.Storage{config.StorageFile, config.StorageSQLite, config.StorageRedis}
	for _, storage := range backends {
		s.Run(string(storage), func() {
			cfg := s.baseConfig(storage)
			cfg.RedisAddr = mr.Addr()

			g, closeGame, err := newGame(s.ctx, cfg)
			s.Require().NoError(err)
			defer closeGame()

			g.Player().Gold = 4321
			_, err = g.Save(s.ctx)
			s.Require().NoError(err)

			g.Player().Gold = 0
			_, err = g.Load(s.ctx)
			s.Require().NoError(err)
			s.Equal(4321, g.Player().Gold)
		})
	}
}

func (s *CLITestSuite) TestFreshSlotReportsMissingSave() {
	g, closeGame, err := newGame(s.ctx, s.baseConfig(config.StorageFile))
	s.Require().NoError(err)
	defer closeGame()

	_, err = g.Load(s.ctx)
	s.True(errors.IsNotFound(err))
}

func (s *CLITestSuite) TestSimulate() {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"simulate", "--runs", "25", "--tier", "EASY", "--rest-at", "50", "--seed", "3"})

	s.Require().NoError(rootCmd.ExecuteContext(s.ctx))
	s.Contains(out.String(), "Easy Dungeon: 25 attempts")
	s.Contains(out.String(), "final: Lv.")
}

func (s *CLITestSuite) TestSimulateRejectsBadInput() {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "no runs", args: []string{"simulate", "--runs", "0", "--tier", "EASY"}},
		{name: "negative rest threshold", args: []string{"simulate", "--runs", "5", "--tier", "EASY", "--rest-at=-1"}},
		{name: "unknown tier", args: []string{"simulate", "--runs", "5", "--tier", "IMPOSSIBLE"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})
			rootCmd.SetArgs(tc.args)

			err := rootCmd.ExecuteContext(s.ctx)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err) || errors.IsNotFound(err))
		})
	}
}
