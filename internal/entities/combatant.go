package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Entity types reported to rpg-toolkit
const (
	EntityTypeCharacter = "character"
	EntityTypeMonster   = "monster"
)

// Combatant is the capability shared by the player character and monsters
type Combatant interface {
	core.Entity
	GetName() string
	GetHealth() int
	TakeDamage(amount int)
	IsDead() bool
}

var (
	_ Combatant = (*Character)(nil)
	_ Combatant = (*Monster)(nil)
)
