package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-textquest/internal/entities"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/handlers/console"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/shop"
	"github.com/KirkDiggler/rpg-textquest/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-textquest/internal/pkg/roller"
	"github.com/KirkDiggler/rpg-textquest/internal/repositories/snapshot"
)

type StageTestSuite struct {
	suite.Suite
	ctx   context.Context
	game  *game.Game
	out   *bytes.Buffer
	calls []string
}

func TestStageSuite(t *testing.T) {
	suite.Run(t, new(StageTestSuite))
}

func (s *StageTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.out = &bytes.Buffer{}
	s.calls = nil

	repo, err := snapshot.NewFile(&snapshot.FileConfig{Root: s.T().TempDir()})
	s.Require().NoError(err)

	s.game, err = game.New(&game.Config{
		Roller:      roller.NewSeeded(3),
		EventBus:    events.NewBus(),
		Snapshots:   repo,
		IDGenerator: idgen.NewSequential("char"),
	})
	s.Require().NoError(err)
}

// play runs the stage over the given lines of input
func (s *StageTestSuite) play(lines ...string) {
	stage, err := console.NewStage(&console.Config{
		Game: s.game,
		In:   strings.NewReader(strings.Join(lines, "\n") + "\n"),
		Out:  s.out,
		Hooks: console.Hooks{
			OnGameStart: func(_ context.Context, _ *game.Game) { s.calls = append(s.calls, "start") },
			OnGameEnd:   func(_ context.Context, _ *game.Game) { s.calls = append(s.calls, "end") },
		},
	})
	s.Require().NoError(err)
	s.Require().NoError(stage.Run(s.ctx))
}

func (s *StageTestSuite) TestNewStageValidation() {
	_, err := console.NewStage(&console.Config{})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Game")
}

func (s *StageTestSuite) TestInvalidInputChangesNothing() {
	before := s.game.ToSnapshot()

	s.play("9", "abc", "-1", "0")

	s.Equal(3, strings.Count(s.out.String(), "Invalid input."))
	s.Contains(s.out.String(), "Farewell.")
	s.Equal(before, s.game.ToSnapshot())
	s.Equal([]string{"start", "end"}, s.calls)
}

func (s *StageTestSuite) TestInputEndingStopsCleanly() {
	s.play("3")

	s.Equal([]string{"start", "end"}, s.calls)
	s.Contains(s.out.String(), "Shop")
}

func (s *StageTestSuite) TestBuyAndEquip() {
	s.play(
		"3", "1", "4", "4", "0", "0", // shop, buy old sword twice
		"2", "1", "1", "0", "0", // inventory, equip it
		"0",
	)

	player := s.game.Player()
	s.Equal(900, player.Gold)
	s.Equal(2, player.ItemAttack)
	weapon, ok := player.Slots.Get(entities.SlotWeapon)
	s.Require().True(ok)
	s.Equal(shop.ItemOldSword, weapon.ID)
	s.Contains(s.out.String(), "Purchase complete.")
	s.Contains(s.out.String(), "already been purchased")
	s.Contains(s.out.String(), "[E]Old Sword")
}

func (s *StageTestSuite) TestSellEquipped() {
	_, err := s.game.Buy(s.ctx, shop.ItemNoviceArmor)
	s.Require().NoError(err)
	_, err = s.game.ToggleEquip(s.ctx, shop.ItemNoviceArmor)
	s.Require().NoError(err)

	s.play("3", "2", "1", "0", "0", "0")

	s.Equal(1350, s.game.Player().Gold)
	s.Empty(s.game.Player().Inventory)
	s.Equal(0, s.game.Player().ItemDefense)
	s.Contains(s.out.String(), "Sold for 850 G.")
}

func (s *StageTestSuite) TestRestWithoutGold() {
	s.game.Player().Gold = 100
	s.game.Player().Health = 40

	s.play("5", "1", "0", "0")

	s.Contains(s.out.String(), "not enough gold to rest")
	s.Equal(40, s.game.Player().Health)
	s.Equal(100, s.game.Player().Gold)
}

func (s *StageTestSuite) TestBattleAndReward() {
	s.play("6", "1", "1", "1", "1", "1", "1", "2", "0")

	player := s.game.Player()
	s.Equal(50, player.Health)
	s.Equal(12.0, player.Attack)
	s.Contains(s.out.String(), "The monster is defeated!")
	s.Contains(s.out.String(), "You drink the strength potion.")
}

func (s *StageTestSuite) TestBattleExit() {
	s.play("6", "2", "1", "0", "0")

	s.Equal(80, s.game.Player().Health)
	for _, m := range s.game.Monsters() {
		s.Equal(m.MaxHealth, m.Health)
	}
}

func (s *StageTestSuite) TestDungeon() {
	s.play("4", "1", "0", "0")

	s.Contains(s.out.String(), "Dungeon cleared!")
	s.Contains(s.out.String(), "Level up! (Lv. 1 -> 2)")
	s.Equal(2, s.game.Player().Level)
}

func (s *StageTestSuite) TestSaveAndLoad() {
	s.play("8", "7", "5", "1", "0", "8", "0")

	out := s.out.String()
	s.Contains(out, "Load failed: there is no saved game.")
	s.Contains(out, "Game saved.")
	s.Contains(out, "Game loaded.")
	s.Equal(1500, s.game.Player().Gold, "load undoes the rest taken after saving")
}
