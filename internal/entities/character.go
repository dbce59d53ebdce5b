package entities

import (
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
)

// Starting values for a new character
const (
	DefaultName    = "Warrior"
	DefaultLevel   = 1
	DefaultHealth  = 100
	DefaultAttack  = 10
	DefaultDefense = 5
	DefaultGold    = 1500

	// RestedHealth is the health a character wakes up with after resting
	RestedHealth = 100
)

// Character is the player-controlled entity
type Character struct {
	ID          string
	Name        string
	Level       int
	Health      int
	Attack      float64
	Defense     int
	ItemAttack  int
	ItemDefense int
	Gold        int
	Dead        bool

	// ClearCount counts dungeon clears since the last level-up
	ClearCount int

	Inventory []*Equipment
	Slots     EquipSlots
}

// NewCharacter creates a level 1 character with the starting stats
func NewCharacter(id, name string) *Character {
	if name == "" {
		name = DefaultName
	}
	return &Character{
		ID:      id,
		Name:    name,
		Level:   DefaultLevel,
		Health:  DefaultHealth,
		Attack:  DefaultAttack,
		Defense: DefaultDefense,
		Gold:    DefaultGold,
	}
}

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// GetName returns the character's name
func (c *Character) GetName() string {
	return c.Name
}

// GetHealth returns current health
func (c *Character) GetHealth() int {
	return c.Health
}

// IsDead reports the dead flag
func (c *Character) IsDead() bool {
	return c.Dead
}

// TotalAttack is base attack plus the equipped weapon bonus
func (c *Character) TotalAttack() float64 {
	return c.Attack + float64(c.ItemAttack)
}

// TotalDefense is base defense plus the equipped armor bonus
func (c *Character) TotalDefense() int {
	return c.Defense + c.ItemDefense
}

// TakeDamage subtracts amount from health. Health is not clamped at zero;
// callers check Health <= 0 themselves. A negative amount heals.
func (c *Character) TakeDamage(amount int) {
	c.Health -= amount
}

// LevelUp raises level by one along with attack and defense
func (c *Character) LevelUp() {
	c.Attack += 0.5
	c.Defense++
	c.Level++
}

// TakeRest restores health for a fee
func (c *Character) TakeRest(cost int) {
	c.Health = RestedHealth
	c.Gold -= cost
}

// Owns reports whether this exact item is in the inventory
func (c *Character) Owns(item *Equipment) bool {
	return c.inventoryIndex(item) >= 0
}

func (c *Character) inventoryIndex(item *Equipment) int {
	for i, owned := range c.Inventory {
		if owned == item {
			return i
		}
	}
	return -1
}

// BuyItem pays for the item and adds it to the inventory
func (c *Character) BuyItem(item *Equipment) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}
	if c.Owns(item) {
		return errors.AlreadyExistsf("%s is already owned", item.Name)
	}
	if c.Gold < item.Price {
		return errors.FailedPreconditionf("not enough gold: have %d, need %d", c.Gold, item.Price).
			WithMeta("item_id", item.ID)
	}

	c.Inventory = append(c.Inventory, item)
	c.Gold -= item.Price
	item.Purchased = true
	return nil
}

// SellItem removes the item from the inventory and refunds 85% of its price.
// Equipped items must be unequipped first.
func (c *Character) SellItem(item *Equipment) (int, error) {
	if item == nil {
		return 0, errors.InvalidArgument("item is required")
	}
	idx := c.inventoryIndex(item)
	if idx < 0 {
		return 0, errors.NotFoundf("%s is not in the inventory", item.Name).
			WithMeta("item_id", item.ID)
	}
	if item.Equipped {
		return 0, errors.FailedPreconditionf("%s must be unequipped before selling", item.Name)
	}

	c.Inventory = append(c.Inventory[:idx], c.Inventory[idx+1:]...)
	refund := item.SellPrice()
	c.Gold += refund
	item.Purchased = false
	return refund, nil
}

// EquipItem puts an owned item into its slot, evicting whatever was there
func (c *Character) EquipItem(item *Equipment) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}
	if !c.Owns(item) {
		return errors.NotFoundf("%s is not in the inventory", item.Name).
			WithMeta("item_id", item.ID)
	}
	if item.Equipped {
		return errors.FailedPreconditionf("%s is already equipped", item.Name)
	}

	slot := item.Kind.Slot()
	if current, ok := c.Slots.Get(slot); ok {
		if err := c.UnequipItem(current); err != nil {
			return err
		}
	}

	c.Slots.set(slot, item)
	item.Equipped = true
	c.adjustBonus(item, 1)
	return nil
}

// UnequipItem empties the item's slot
func (c *Character) UnequipItem(item *Equipment) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}
	slot := item.Kind.Slot()
	current, ok := c.Slots.Get(slot)
	if !ok || current != item {
		return errors.FailedPreconditionf("%s is not equipped", item.Name)
	}

	c.Slots.clear(slot)
	item.Equipped = false
	c.adjustBonus(item, -1)
	return nil
}

func (c *Character) adjustBonus(item *Equipment, sign int) {
	switch item.Kind {
	case KindWeapon:
		c.ItemAttack += sign * item.Bonus
	case KindArmor:
		c.ItemDefense += sign * item.Bonus
	}
}

// RecordClear counts a dungeon clear and levels up when the count reaches the
// current level. It reports whether a level-up happened.
func (c *Character) RecordClear() bool {
	c.ClearCount++
	if c.ClearCount == c.Level {
		c.LevelUp()
		c.ClearCount = 0
		return true
	}
	return false
}

// Restore overwrites every field with those of other. Used when loading a save;
// the receiver keeps its identity so anything holding the pointer sees the new state.
func (c *Character) Restore(other *Character) {
	*c = *other
}

// PlaceEquipped puts an owned item into its empty slot without touching the
// aggregate bonuses. Used to rebuild equip slots from a save, where the bonuses
// are restored separately.
func (c *Character) PlaceEquipped(item *Equipment) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}
	if !c.Owns(item) {
		return errors.NotFoundf("%s is not in the inventory", item.Name)
	}
	slot := item.Kind.Slot()
	if c.Slots.Occupied(slot) {
		return errors.FailedPreconditionf("%s slot is already occupied", slot)
	}
	c.Slots.set(slot, item)
	item.Equipped = true
	return nil
}
