package shop

import (
	"github.com/KirkDiggler/rpg-textquest/internal/entities"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
)

// Catalog item IDs. They are stable across releases because saves refer to them.
const (
	ItemNoviceArmor  = "armor_novice"
	ItemIronArmor    = "armor_iron"
	ItemSpartanArmor = "armor_spartan"
	ItemOldSword     = "weapon_old_sword"
	ItemBronzeAxe    = "weapon_bronze_axe"
	ItemSpartanSpear = "weapon_spartan_spear"
)

// Catalog is the fixed set of items the shop sells. It lives for the whole run;
// purchase flags on its items are part of the saved game.
type Catalog struct {
	items []*entities.Equipment
}

// NewCatalog creates the default six-item catalog
func NewCatalog() *Catalog {
	return &Catalog{items: DefaultItems()}
}

// DefaultItems returns fresh, unpurchased copies of the catalog items
func DefaultItems() []*entities.Equipment {
	return []*entities.Equipment{
		entities.NewArmor(ItemNoviceArmor, "Novice Armor",
			"Armor that helps with training.", 1000, 5),
		entities.NewArmor(ItemIronArmor, "Iron Armor",
			"Sturdy armor made of cast iron.", 2000, 9),
		entities.NewArmor(ItemSpartanArmor, "Spartan Armor",
			"Legendary armor worn by the warriors of Sparta.", 3500, 15),
		entities.NewWeapon(ItemOldSword, "Old Sword",
			"A worn sword you can find anywhere.", 600, 2),
		entities.NewWeapon(ItemBronzeAxe, "Bronze Axe",
			"An axe that looks like it has seen use somewhere.", 1500, 5),
		entities.NewWeapon(ItemSpartanSpear, "Spartan Spear",
			"Legendary spear wielded by the warriors of Sparta.", 3000, 7),
	}
}

// Items returns the catalog items in display order. The slice is a copy; the
// items are shared.
func (c *Catalog) Items() []*entities.Equipment {
	out := make([]*entities.Equipment, len(c.items))
	copy(out, c.items)
	return out
}

// Get finds an item by ID
func (c *Catalog) Get(id string) (*entities.Equipment, error) {
	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, errors.NotFoundf("item %s not found", id).WithMeta("item_id", id)
}

// At returns the item at a zero-based display position
func (c *Catalog) At(index int) (*entities.Equipment, error) {
	if index < 0 || index >= len(c.items) {
		return nil, errors.OutOfRangef("item %d out of range", index+1)
	}
	return c.items[index], nil
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// Replace swaps in a new item set, as restored from a save
func (c *Catalog) Replace(items []*entities.Equipment) {
	c.items = items
}

// IDForName finds the stable ID of a default catalog item by display name.
// Saves written before items carried IDs only have the name.
func IDForName(name string) (string, bool) {
	for _, item := range DefaultItems() {
		if item.Name == name {
			return item.ID, true
		}
	}
	return "", false
}
