package entities

import "github.com/KirkDiggler/rpg-textquest/internal/errors"

// TierTag names a dungeon difficulty
type TierTag string

// Dungeon tiers
const (
	TierEasy   TierTag = "EASY"
	TierNormal TierTag = "NORMAL"
	TierHard   TierTag = "HARD"
)

// Tier is a difficulty bucket with a recommended defense threshold and a base gold reward
type Tier struct {
	Tag                TierTag
	Name               string
	RecommendedDefense int
	BaseGoldReward     int
}

var tiers = []Tier{
	{Tag: TierEasy, Name: "Easy Dungeon", RecommendedDefense: 5, BaseGoldReward: 1000},
	{Tag: TierNormal, Name: "Normal Dungeon", RecommendedDefense: 11, BaseGoldReward: 1700},
	{Tag: TierHard, Name: "Hard Dungeon", RecommendedDefense: 17, BaseGoldReward: 2500},
}

// AllTiers returns the dungeon tiers from easiest to hardest
func AllTiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// TierByTag looks up a tier
func TierByTag(tag TierTag) (Tier, error) {
	for _, t := range tiers {
		if t.Tag == tag {
			return t, nil
		}
	}
	return Tier{}, errors.NotFoundf("dungeon tier %s not found", tag)
}
