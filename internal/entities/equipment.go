package entities

// Kind identifies which stat an equipment bonus applies to
type Kind string

// Equipment kinds
const (
	KindWeapon Kind = "weapon"
	KindArmor  Kind = "armor"
)

// Slot returns the equip slot items of this kind occupy
func (k Kind) Slot() Slot {
	if k == KindWeapon {
		return SlotWeapon
	}
	return SlotArmor
}

// Equipment is a purchasable item carrying exactly one stat bonus.
// Items are shared by pointer between the shop catalog and the owning
// character's inventory; identity is the pointer, not the name.
type Equipment struct {
	ID          string
	Name        string
	Description string
	Price       int
	Kind        Kind
	Bonus       int
	Purchased   bool
	Equipped    bool
}

// NewWeapon creates an unowned weapon with the given attack bonus
func NewWeapon(id, name, description string, price, attack int) *Equipment {
	return &Equipment{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Kind:        KindWeapon,
		Bonus:       attack,
	}
}

// NewArmor creates an unowned armor piece with the given defense bonus
func NewArmor(id, name, description string, price, defense int) *Equipment {
	return &Equipment{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Kind:        KindArmor,
		Bonus:       defense,
	}
}

// AttackBonus returns the attack bonus, or 0 for armor
func (e *Equipment) AttackBonus() int {
	if e.Kind == KindWeapon {
		return e.Bonus
	}
	return 0
}

// DefenseBonus returns the defense bonus, or 0 for weapons
func (e *Equipment) DefenseBonus() int {
	if e.Kind == KindArmor {
		return e.Bonus
	}
	return 0
}

// SellPrice is what the shop pays back for the item: 85% of the price, rounded down
func (e *Equipment) SellPrice() int {
	return e.Price * 85 / 100
}
