// Package combat implements the turn-based fight between the player and a monster
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/rpg-textquest/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-textquest/internal/entities"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
)

// Event types published on the bus
const (
	EventPlayerDefeated  = "combat.player_defeated"
	EventMonsterDefeated = "combat.monster_defeated"
	EventExited          = "combat.exited"
)

// Service defines the interface for combat operations. It holds at most one
// encounter at a time.
type Service interface {
	// Monsters lists the monsters that can be fought
	Monsters() []*entities.Monster

	// State reports where the current encounter is
	State() State

	// Start begins an encounter against a monster
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Attack resolves one simultaneous exchange of blows
	Attack(ctx context.Context) (*AttackOutput, error)

	// Exit leaves the encounter, forfeiting any pending reward
	Exit(ctx context.Context) (*ExitOutput, error)

	// ClaimReward applies the reward chosen after a win
	ClaimReward(ctx context.Context, input *ClaimRewardInput) (*ClaimRewardOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Monsters []*entities.Monster
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Monsters) == 0 {
		vb.RequiredField("Monsters")
	}
	for _, m := range c.Monsters {
		if m == nil {
			vb.InvalidField("Monsters", "contains a nil monster")
			break
		}
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	monsters []*entities.Monster
	eventBus events.EventBus

	state   State
	player  *entities.Character
	monster *entities.Monster
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		monsters: cfg.Monsters,
		eventBus: cfg.EventBus,
		state:    StateIdle,
	}, nil
}

func (o *orchestrator) Monsters() []*entities.Monster {
	out := make([]*entities.Monster, len(o.monsters))
	copy(out, o.monsters)
	return out
}

func (o *orchestrator) State() State {
	return o.state
}

// Start begins an encounter against a monster
func (o *orchestrator) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if o.state != StateIdle {
		return nil, errors.FailedPreconditionf("an encounter is already in progress (%s)", o.state)
	}

	monster := o.findMonster(input.MonsterID)
	if monster == nil {
		return nil, errors.NotFoundf("monster %s not found", input.MonsterID).
			WithMeta("monster_id", input.MonsterID)
	}

	monster.Reset()
	o.player = input.Character
	o.monster = monster
	o.state = StateInCombat

	slog.DebugContext(ctx, "encounter started",
		"character_id", o.player.ID,
		"monster_id", monster.ID)

	return &StartOutput{Monster: monster}, nil
}

// Attack resolves one simultaneous exchange of blows. Both damages come from
// pre-turn values; a player knocked out wins precedence over a monster kill.
func (o *orchestrator) Attack(ctx context.Context) (*AttackOutput, error) {
	if o.state != StateInCombat {
		return nil, errors.FailedPreconditionf("no encounter in progress (%s)", o.state)
	}

	playerDamage := int(math.Floor(o.player.TotalAttack()))
	monsterDamage := int(math.Floor(o.monster.Attack))

	o.monster.TakeDamage(playerDamage)
	o.player.TakeDamage(monsterDamage)

	turn := &Turn{
		PlayerDamage:  playerDamage,
		MonsterDamage: monsterDamage,
		PlayerHealth:  o.player.Health,
		MonsterHealth: o.monster.Health,
		Outcome:       OutcomeOngoing,
	}

	switch {
	case o.player.Health <= 0:
		turn.Outcome = OutcomePlayerDefeated
		o.player.Dead = true
		o.publish(ctx, EventPlayerDefeated)
		o.player.Health = RevivalHealth
		o.player.Dead = false
		o.end()
	case o.monster.Health <= 0:
		turn.Outcome = OutcomeMonsterDefeated
		o.monster.Dead = true
		o.publish(ctx, EventMonsterDefeated)
		o.monster.Reset()
		o.state = StateRewardPending
	}

	slog.DebugContext(ctx, "combat turn",
		"player_damage", playerDamage,
		"monster_damage", monsterDamage,
		"player_health", turn.PlayerHealth,
		"monster_health", turn.MonsterHealth,
		"outcome", turn.Outcome)

	return &AttackOutput{Turn: turn}, nil
}

// Exit leaves the encounter, forfeiting any pending reward
func (o *orchestrator) Exit(ctx context.Context) (*ExitOutput, error) {
	switch o.state {
	case StateInCombat:
		o.publish(ctx, EventExited)
		o.end()
		return &ExitOutput{Outcome: OutcomeVoluntaryExit}, nil
	case StateRewardPending:
		o.end()
		return &ExitOutput{Outcome: OutcomeMonsterDefeated, ForfeitedReward: true}, nil
	default:
		return nil, errors.FailedPrecondition("no encounter in progress")
	}
}

// ClaimReward applies the reward chosen after a win
func (o *orchestrator) ClaimReward(ctx context.Context, input *ClaimRewardInput) (*ClaimRewardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.state != StateRewardPending {
		return nil, errors.FailedPreconditionf("no reward pending (%s)", o.state)
	}

	out := &ClaimRewardOutput{
		Reward:       input.Reward,
		HealthBefore: o.player.Health,
		AttackBefore: o.player.Attack,
	}

	switch input.Reward {
	case RewardHealthPotion:
		o.player.Health += HealthPotionAmount
	case RewardStrengthPotion:
		o.player.Attack += StrengthPotionAmount
	case RewardNone:
	default:
		return nil, errors.InvalidArgumentf("unknown reward %q", input.Reward)
	}

	out.HealthAfter = o.player.Health
	out.AttackAfter = o.player.Attack

	slog.InfoContext(ctx, "reward claimed",
		"character_id", o.player.ID,
		"reward", input.Reward)

	o.end()
	return out, nil
}

// end resets the monster and returns to idle
func (o *orchestrator) end() {
	if o.monster != nil {
		o.monster.Reset()
	}
	o.player = nil
	o.monster = nil
	o.state = StateIdle
}

func (o *orchestrator) findMonster(id string) *entities.Monster {
	for _, m := range o.monsters {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (o *orchestrator) publish(ctx context.Context, eventType string) {
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, o.player, o.monster)); err != nil {
		slog.WarnContext(ctx, "failed to publish combat event",
			"event", eventType,
			"error", err)
	}
}
