// Package dungeon resolves dungeon attempts: the success gate, gold and health
// outcomes, and the level-up cadence tied to clears.
package dungeon

//go:generate mockgen -destination=mock/mock_service.go -package=dungeonmock github.com/KirkDiggler/rpg-textquest/internal/orchestrators/dungeon Service

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-textquest/internal/entities"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/pkg/roller"
)

const (
	// FailureChance is the percent chance an under-geared attempt fails
	FailureChance = 40

	// HealthCostMin and HealthCostMax bound the health cost before the defense offset
	HealthCostMin = 20
	HealthCostMax = 35

	// FailurePenalty is the fraction of health kept after a failed attempt
	FailurePenalty = 0.5
)

// Event types published on the bus
const (
	EventDungeonCleared = "dungeon.cleared"
	EventDungeonFailed  = "dungeon.failed"
	EventLevelUp        = "character.level_up"
)

// Service defines the interface for dungeon operations
type Service interface {
	// Enter resolves one attempt at the given tier and applies it to the character
	Enter(ctx context.Context, input *EnterInput) (*EnterOutput, error)
}

// Config holds the dependencies for the dungeon orchestrator
type Config struct {
	Roller   dice.Roller
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	roller   dice.Roller
	eventBus events.EventBus
}

// NewOrchestrator creates a new dungeon orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		roller:   cfg.Roller,
		eventBus: cfg.EventBus,
	}, nil
}

// Enter resolves one attempt at the given tier and applies it to the character
func (o *orchestrator) Enter(ctx context.Context, input *EnterInput) (*EnterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	tier, err := entities.TierByTag(input.Tier)
	if err != nil {
		return nil, err
	}

	player := input.Character
	result := &Result{
		Tier:         tier,
		Defense:      player.Defense,
		Attack:       int(math.Floor(player.Attack)),
		HealthBefore: player.Health,
		GoldBefore:   player.Gold,
		LevelBefore:  player.Level,
	}

	cleared := true
	if result.Defense < tier.RecommendedDefense {
		draw, err := roller.Percent(o.roller)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll success gate")
		}
		result.GateRolled = true
		result.GateRoll = draw
		cleared = draw >= FailureChance
	}

	if cleared {
		err = o.applyClear(player, tier, result)
	} else {
		o.applyFailure(player)
	}
	if err != nil {
		return nil, err
	}

	result.Cleared = cleared
	result.HealthAfter = player.Health
	result.GoldAfter = player.Gold
	result.LevelAfter = player.Level

	slog.InfoContext(ctx, "dungeon attempt resolved",
		"character_id", player.ID,
		"tier", tier.Tag,
		"cleared", cleared,
		"gate_rolled", result.GateRolled,
		"gold_reward", result.GoldReward,
		"health_after", result.HealthAfter,
		"leveled_up", result.LeveledUp)

	o.publish(ctx, player, result)

	return &EnterOutput{Result: result}, nil
}

// applyClear computes rewards before touching the character so a roller error
// leaves it unchanged.
func (o *orchestrator) applyClear(player *entities.Character, tier entities.Tier, result *Result) error {
	bonus, err := roller.Between(o.roller, result.Attack, 2*result.Attack)
	if err != nil {
		return errors.Wrap(err, "failed to roll gold bonus")
	}

	offset := result.Defense - tier.RecommendedDefense
	cost, err := roller.Between(o.roller, HealthCostMin-offset, HealthCostMax-offset)
	if err != nil {
		return errors.Wrap(err, "failed to roll health cost")
	}

	result.BonusRoll = bonus
	result.GoldReward = goldReward(tier.BaseGoldReward, bonus)
	result.HealthCost = cost

	player.TakeDamage(cost)
	player.Gold += result.GoldReward
	result.LeveledUp = player.RecordClear()
	return nil
}

func (o *orchestrator) applyFailure(player *entities.Character) {
	player.Health = int(math.Floor(float64(player.Health) * FailurePenalty))
}

// goldReward is floor(base * (100 + bonus) / 100) in integer math
func goldReward(base, bonus int) int {
	scaled := base * (100 + bonus)
	if scaled < 0 && scaled%100 != 0 {
		return scaled/100 - 1
	}
	return scaled / 100
}

func (o *orchestrator) publish(ctx context.Context, player *entities.Character, result *Result) {
	eventType := EventDungeonFailed
	if result.Cleared {
		eventType = EventDungeonCleared
	}

	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, player, nil)); err != nil {
		slog.WarnContext(ctx, "failed to publish dungeon event",
			"event", eventType,
			"error", err)
	}

	if result.LeveledUp {
		if err := o.eventBus.Publish(ctx, events.NewGameEvent(EventLevelUp, player, nil)); err != nil {
			slog.WarnContext(ctx, "failed to publish level up event",
				"error", err)
		}
	}
}
