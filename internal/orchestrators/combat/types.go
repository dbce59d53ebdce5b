package combat

import "github.com/KirkDiggler/rpg-textquest/internal/entities"

// State is where the resolver is in an encounter
type State string

// Encounter states
const (
	StateIdle          State = "idle"
	StateInCombat      State = "in_combat"
	StateRewardPending State = "reward_pending"
)

// Outcome is the result of a turn or an exit
type Outcome string

// Turn and exit outcomes
const (
	OutcomeOngoing         Outcome = "ongoing"
	OutcomePlayerDefeated  Outcome = "player_defeated"
	OutcomeMonsterDefeated Outcome = "monster_defeated"
	OutcomeVoluntaryExit   Outcome = "voluntary_exit"
)

// Reward is the consumable picked after a win
type Reward string

// Rewards offered after a win
const (
	RewardNone           Reward = "none"
	RewardHealthPotion   Reward = "health_potion"
	RewardStrengthPotion Reward = "strength_potion"
)

// Reward magnitudes and the health a defeated player wakes up with
const (
	HealthPotionAmount   = 20
	StrengthPotionAmount = 2.0
	RevivalHealth        = 10
)

// StartInput defines the request for starting an encounter
type StartInput struct {
	Character *entities.Character
	MonsterID string
}

// StartOutput defines the response for starting an encounter
type StartOutput struct {
	Monster *entities.Monster
}

// Turn records one exchange of blows
type Turn struct {
	PlayerDamage  int
	MonsterDamage int
	PlayerHealth  int
	MonsterHealth int
	Outcome       Outcome
}

// AttackOutput defines the response for one combat turn
type AttackOutput struct {
	Turn *Turn
}

// ExitOutput defines the response for leaving an encounter
type ExitOutput struct {
	Outcome Outcome
	// ForfeitedReward is true when the player left the reward screen without picking
	ForfeitedReward bool
}

// ClaimRewardInput defines the request for claiming a reward
type ClaimRewardInput struct {
	Reward Reward
}

// ClaimRewardOutput defines the response for claiming a reward
type ClaimRewardOutput struct {
	Reward       Reward
	HealthBefore int
	HealthAfter  int
	AttackBefore float64
	AttackAfter  float64
}
