package entities

// Slot represents an equip slot on a character
type Slot string

// Define all available equip slots
const (
	SlotWeapon Slot = "weapon"
	SlotArmor  Slot = "armor"
)

// String returns the string representation of the slot
func (s Slot) String() string {
	return string(s)
}

// IsValid checks if the slot is valid
func (s Slot) IsValid() bool {
	switch s {
	case SlotWeapon, SlotArmor:
		return true
	default:
		return false
	}
}

// AllSlots returns every slot in display order
func AllSlots() []Slot {
	return []Slot{SlotWeapon, SlotArmor}
}

// EquipSlots holds at most one item per slot. Empty slots are reported through
// the ok result of Get rather than a nil item.
type EquipSlots struct {
	weapon *Equipment
	armor  *Equipment
}

// Get returns the item in the slot and whether the slot is occupied
func (s *EquipSlots) Get(slot Slot) (*Equipment, bool) {
	var item *Equipment
	switch slot {
	case SlotWeapon:
		item = s.weapon
	case SlotArmor:
		item = s.armor
	}
	return item, item != nil
}

// Occupied reports whether the slot holds an item
func (s *EquipSlots) Occupied(slot Slot) bool {
	_, ok := s.Get(slot)
	return ok
}

func (s *EquipSlots) set(slot Slot, item *Equipment) {
	switch slot {
	case SlotWeapon:
		s.weapon = item
	case SlotArmor:
		s.armor = item
	}
}

func (s *EquipSlots) clear(slot Slot) {
	s.set(slot, nil)
}
