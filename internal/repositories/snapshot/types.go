package snapshot

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-textquest/internal/entities"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
)

// NoBonus marks the stat an equipment record does not carry
const NoBonus = -1

// Equip slot positions in Snapshot.EquipSlots
const (
	WeaponSlotIndex = 0
	ArmorSlotIndex  = 1
)

// Snapshot is the flat saved form of a game: the character, its inventory and
// equip slots, and the shop catalog with purchase flags.
type Snapshot struct {
	CharacterID string              `json:"characterId,omitempty"`
	Name        string              `json:"name"`
	Level       int                 `json:"level"`
	Health      int                 `json:"health"`
	Attack      float64             `json:"attack"`
	ItemAttack  int                 `json:"itemAttack"`
	Defense     int                 `json:"def"`
	ItemDefense int                 `json:"itemDef"`
	Gold        int                 `json:"gold"`
	ClearCount  int                 `json:"clearCount"`
	ShopEquips  []*EquipmentRecord  `json:"shopEquips"`
	MyEquips    []*EquipmentRecord  `json:"myEquips"`
	EquipSlots  [2]*EquipmentRecord `json:"equipSlots"`
	SavedAt     time.Time           `json:"savedAt"`
}

// EquipmentRecord is the saved form of one item. Exactly one of Attack and Def
// is a bonus; the other holds NoBonus.
type EquipmentRecord struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Text    string `json:"text"`
	Price   int    `json:"price"`
	IsBuy   bool   `json:"isBuy"`
	Attack  int    `json:"attack"`
	Def     int    `json:"def"`
	IsEquip bool   `json:"isEquip"`
}

// RecordFromEquipment converts an item to its saved form
func RecordFromEquipment(item *entities.Equipment) *EquipmentRecord {
	if item == nil {
		return nil
	}
	rec := &EquipmentRecord{
		ID:      item.ID,
		Name:    item.Name,
		Text:    item.Description,
		Price:   item.Price,
		IsBuy:   item.Purchased,
		Attack:  NoBonus,
		Def:     NoBonus,
		IsEquip: item.Equipped,
	}
	switch item.Kind {
	case entities.KindWeapon:
		rec.Attack = item.Bonus
	case entities.KindArmor:
		rec.Def = item.Bonus
	}
	return rec
}

// Key identifies the item a record refers to. Older saves have no ID and are
// matched by name.
func (r *EquipmentRecord) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Name
}

// Kind reports whether the record is a weapon or armor
func (r *EquipmentRecord) Kind() (entities.Kind, error) {
	switch {
	case r.Attack >= 0 && r.Def < 0:
		return entities.KindWeapon, nil
	case r.Def >= 0 && r.Attack < 0:
		return entities.KindArmor, nil
	default:
		return "", InvalidErrorf("item %q must carry exactly one of attack or def", r.Name)
	}
}

// ToEquipment builds a fresh item from the record
func (r *EquipmentRecord) ToEquipment() (*entities.Equipment, error) {
	kind, err := r.Kind()
	if err != nil {
		return nil, err
	}

	id := r.ID
	if id == "" {
		id = r.Name
	}

	var item *entities.Equipment
	if kind == entities.KindWeapon {
		item = entities.NewWeapon(id, r.Name, r.Text, r.Price, r.Attack)
	} else {
		item = entities.NewArmor(id, r.Name, r.Text, r.Price, r.Def)
	}
	item.Purchased = r.IsBuy
	item.Equipped = r.IsEquip
	return item, nil
}

// Validate checks the snapshot describes a consistent game
func (s *Snapshot) Validate() error {
	if s.Level < 1 {
		return InvalidErrorf("level must be at least 1, got %d", s.Level)
	}
	if s.ClearCount < 0 || s.ClearCount >= s.Level {
		return InvalidErrorf("clear count must be in [0, %d), got %d", s.Level, s.ClearCount)
	}

	for _, list := range [][]*EquipmentRecord{s.ShopEquips, s.MyEquips} {
		for _, rec := range list {
			if err := validateRecord(rec); err != nil {
				return err
			}
		}
	}

	owned := make(map[string]bool, len(s.MyEquips))
	for _, rec := range s.MyEquips {
		if owned[rec.Key()] {
			return InvalidErrorf("item %q is owned twice", rec.Name)
		}
		owned[rec.Key()] = true
	}

	wantKinds := [2]entities.Kind{entities.KindWeapon, entities.KindArmor}
	for i, rec := range s.EquipSlots {
		if rec == nil {
			continue
		}
		if err := validateRecord(rec); err != nil {
			return err
		}
		kind, _ := rec.Kind()
		if kind != wantKinds[i] {
			return InvalidErrorf("item %q cannot be in the %s slot", rec.Name, wantKinds[i].Slot())
		}
		if !owned[rec.Key()] {
			return InvalidErrorf("equipped item %q is not in the inventory", rec.Name)
		}
	}

	return nil
}

func validateRecord(rec *EquipmentRecord) error {
	if rec == nil {
		return InvalidErrorf("item list contains a null entry")
	}
	if rec.Name == "" {
		return InvalidErrorf("item name is required")
	}
	if rec.Price < 0 {
		return InvalidErrorf("item %q has a negative price", rec.Name)
	}
	if _, err := rec.Kind(); err != nil {
		return err
	}
	if rec.IsEquip && !rec.IsBuy {
		return InvalidErrorf("item %q is equipped but not purchased", rec.Name)
	}
	return nil
}

// Encode serializes a snapshot
func Encode(s *Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}
	return data, nil
}

// Decode parses and validates stored snapshot data for a slot
func Decode(slot string, data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, corruptError(slot, err)
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "saved game in slot %s is invalid", slot).WithMeta("slot", slot)
	}
	return &s, nil
}
