package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-textquest/internal/entities"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/shop"
	"github.com/KirkDiggler/rpg-textquest/internal/repositories/snapshot"
)

// LoadOutput reports a successful load
type LoadOutput struct {
	SavedAt time.Time
}

// Save writes the live state to the configured slot
func (g *Game) Save(ctx context.Context) (*snapshot.SaveOutput, error) {
	if g.combat.State() != combat.StateIdle {
		return nil, errors.FailedPrecondition("cannot save during a battle")
	}

	out, err := g.snapshots.Save(ctx, snapshot.SaveInput{Slot: g.slot, Snapshot: g.ToSnapshot()})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save slot %s", g.slot)
	}

	slog.InfoContext(ctx, "game saved",
		"slot", g.slot,
		"character_id", g.player.ID)

	return out, nil
}

// Load replaces the live state with the configured slot's snapshot. The new
// state is built and checked in full first; on any error nothing changes.
// snapshot.FailureReason tells missing, corrupt and invalid saves apart.
func (g *Game) Load(ctx context.Context) (*LoadOutput, error) {
	if g.combat.State() != combat.StateIdle {
		return nil, errors.FailedPrecondition("cannot load during a battle")
	}

	out, err := g.snapshots.Load(ctx, snapshot.LoadInput{Slot: g.slot})
	if err != nil {
		slog.WarnContext(ctx, "load failed",
			"slot", g.slot,
			"reason", snapshot.FailureReason(err),
			"error", err)
		return nil, err
	}

	player, items, err := g.fromSnapshot(out.Snapshot)
	if err != nil {
		slog.WarnContext(ctx, "load failed",
			"slot", g.slot,
			"reason", snapshot.FailureReason(err),
			"error", err)
		return nil, errors.Wrapf(err, "saved game in slot %s is invalid", g.slot)
	}

	g.player.Restore(player)
	g.catalog.Replace(items)

	slog.InfoContext(ctx, "game loaded",
		"slot", g.slot,
		"character_id", g.player.ID,
		"level", g.player.Level)

	return &LoadOutput{SavedAt: out.Snapshot.SavedAt}, nil
}

// ToSnapshot captures the live state
func (g *Game) ToSnapshot() *snapshot.Snapshot {
	p := g.player
	snap := &snapshot.Snapshot{
		CharacterID: p.ID,
		Name:        p.Name,
		Level:       p.Level,
		Health:      p.Health,
		Attack:      p.Attack,
		ItemAttack:  p.ItemAttack,
		Defense:     p.Defense,
		ItemDefense: p.ItemDefense,
		Gold:        p.Gold,
		ClearCount:  p.ClearCount,
		ShopEquips:  make([]*snapshot.EquipmentRecord, 0, g.catalog.Len()),
		MyEquips:    make([]*snapshot.EquipmentRecord, 0, len(p.Inventory)),
	}

	for _, item := range g.catalog.Items() {
		snap.ShopEquips = append(snap.ShopEquips, snapshot.RecordFromEquipment(item))
	}
	for _, item := range p.Inventory {
		snap.MyEquips = append(snap.MyEquips, snapshot.RecordFromEquipment(item))
	}
	if weapon, ok := p.Slots.Get(entities.SlotWeapon); ok {
		snap.EquipSlots[snapshot.WeaponSlotIndex] = snapshot.RecordFromEquipment(weapon)
	}
	if armor, ok := p.Slots.Get(entities.SlotArmor); ok {
		snap.EquipSlots[snapshot.ArmorSlotIndex] = snapshot.RecordFromEquipment(armor)
	}

	return snap
}

func matches(item *entities.Equipment, rec *snapshot.EquipmentRecord) bool {
	if rec.ID != "" {
		return item.ID == rec.ID
	}
	return item.Name == rec.Name
}

func find(items []*entities.Equipment, rec *snapshot.EquipmentRecord) *entities.Equipment {
	for _, item := range items {
		if matches(item, rec) {
			return item
		}
	}
	return nil
}

// fromSnapshot builds a detached character and catalog. Owned items that are
// also in the catalog share the catalog's pointer so identity survives a load.
func (g *Game) fromSnapshot(snap *snapshot.Snapshot) (*entities.Character, []*entities.Equipment, error) {
	if snap == nil {
		return nil, nil, snapshot.InvalidErrorf("snapshot is empty")
	}
	if err := snap.Validate(); err != nil {
		return nil, nil, err
	}

	catalog := make([]*entities.Equipment, 0, len(snap.ShopEquips))
	for _, rec := range snap.ShopEquips {
		if find(catalog, rec) != nil {
			return nil, nil, snapshot.InvalidErrorf("shop lists %q twice", rec.Name)
		}
		item, err := rec.ToEquipment()
		if err != nil {
			return nil, nil, err
		}
		if rec.ID == "" {
			if id, ok := shop.IDForName(rec.Name); ok {
				item.ID = id
			}
		}
		item.Equipped = false
		catalog = append(catalog, item)
	}

	id := snap.CharacterID
	if id == "" {
		id = g.idGen.Generate()
	}

	player := entities.NewCharacter(id, snap.Name)
	player.Level = snap.Level
	player.Health = snap.Health
	player.Attack = snap.Attack
	player.Defense = snap.Defense
	player.ItemAttack = snap.ItemAttack
	player.ItemDefense = snap.ItemDefense
	player.Gold = snap.Gold
	player.ClearCount = snap.ClearCount

	for _, rec := range snap.MyEquips {
		item := find(catalog, rec)
		if item == nil {
			var err error
			if item, err = rec.ToEquipment(); err != nil {
				return nil, nil, err
			}
			item.Equipped = false
		}
		item.Purchased = true
		player.Inventory = append(player.Inventory, item)
	}

	for _, item := range catalog {
		if item.Purchased && !player.Owns(item) {
			return nil, nil, snapshot.InvalidErrorf("%s is marked purchased but not owned", item.Name)
		}
	}

	for _, rec := range snap.EquipSlots {
		if rec == nil {
			continue
		}
		item := find(player.Inventory, rec)
		if item == nil {
			return nil, nil, snapshot.InvalidErrorf("equipped item %q is not in the inventory", rec.Name)
		}
		if err := player.PlaceEquipped(item); err != nil {
			return nil, nil, snapshot.InvalidErrorf("cannot equip %q: %s", rec.Name, errors.GetMessage(err))
		}
	}

	return player, catalog, nil
}
