package dungeon

import "github.com/KirkDiggler/rpg-textquest/internal/entities"

// EnterInput defines the request for a dungeon attempt
type EnterInput struct {
	Character *entities.Character
	Tier      entities.TierTag
}

// EnterOutput defines the response for a dungeon attempt
type EnterOutput struct {
	Result *Result
}

// Result records everything one attempt did to the character
type Result struct {
	Tier    entities.Tier
	Cleared bool

	// Defense and Attack are the base stats the attempt was resolved against.
	// Equipment bonuses only count in combat.
	Defense int
	Attack  int

	// GateRolled is false when defense met the recommendation and no draw was made
	GateRolled bool
	GateRoll   int

	BonusRoll  int
	GoldReward int
	HealthCost int

	HealthBefore int
	HealthAfter  int
	GoldBefore   int
	GoldAfter    int
	LevelBefore  int
	LevelAfter   int
	LeveledUp    bool
}

// HealthLost is how much health the attempt took. Negative means it healed.
func (r *Result) HealthLost() int {
	return r.HealthBefore - r.HealthAfter
}
