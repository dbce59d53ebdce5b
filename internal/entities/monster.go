package entities

// Monster is a combat opponent. Health is restored to MaxHealth whenever an
// encounter ends.
type Monster struct {
	ID        string
	Name      string
	MaxHealth int
	Health    int
	Attack    float64
	Dead      bool
}

// NewMonster creates a monster at full health
func NewMonster(id, name string, maxHealth int, attack float64) *Monster {
	return &Monster{
		ID:        id,
		Name:      name,
		MaxHealth: maxHealth,
		Health:    maxHealth,
		Attack:    attack,
	}
}

// GetID returns the monster's ID
func (m *Monster) GetID() string {
	return m.ID
}

// GetType returns the entity type for rpg-toolkit
func (m *Monster) GetType() string {
	return EntityTypeMonster
}

// GetName returns the monster's display name
func (m *Monster) GetName() string {
	return m.Name
}

// GetHealth returns current health
func (m *Monster) GetHealth() int {
	return m.Health
}

// TakeDamage subtracts amount from health without clamping
func (m *Monster) TakeDamage(amount int) {
	m.Health -= amount
}

// IsDead reports the dead flag
func (m *Monster) IsDead() bool {
	return m.Dead
}

// Reset restores full health and clears the dead flag
func (m *Monster) Reset() {
	m.Health = m.MaxHealth
	m.Dead = false
}

// Monster IDs in the default bestiary
const (
	MonsterGoblin = "goblin"
	MonsterDragon = "dragon"
)

// DefaultBestiary returns fresh copies of the monsters available for battle
func DefaultBestiary() []*Monster {
	return []*Monster{
		NewMonster(MonsterGoblin, "Goblin", 50, 10),
		NewMonster(MonsterDragon, "Dragon", 100, 20),
	}
}
