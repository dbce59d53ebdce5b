package shop

import "github.com/KirkDiggler/rpg-textquest/internal/entities"

// BuyInput defines the request for buying an item
type BuyInput struct {
	Character *entities.Character
	ItemID    string
}

// BuyOutput defines the response for buying an item
type BuyOutput struct {
	Item      *entities.Equipment
	GoldSpent int
}

// SellInput defines the request for selling an item
type SellInput struct {
	Character *entities.Character
	ItemID    string
}

// SellOutput defines the response for selling an item
type SellOutput struct {
	Item       *entities.Equipment
	Refund     int
	Unequipped bool
}
