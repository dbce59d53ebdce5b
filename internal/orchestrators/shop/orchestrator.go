// Package shop implements the equipment shop: a fixed catalog plus buy and sell
package shop

//go:generate mockgen -destination=mock/mock_service.go -package=shopmock github.com/KirkDiggler/rpg-textquest/internal/orchestrators/shop Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-textquest/internal/entities"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
)

// Service defines the interface for shop operations
type Service interface {
	// Catalog returns the catalog the shop sells from
	Catalog() *Catalog

	// ListItems returns the catalog items in display order
	ListItems(ctx context.Context) []*entities.Equipment

	// SellPrice is what the shop pays back for an item
	SellPrice(item *entities.Equipment) int

	// Buy purchases a catalog item for the character
	Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error)

	// Sell sells an owned item back, unequipping it first if needed
	Sell(ctx context.Context, input *SellInput) (*SellOutput, error)
}

// Config holds the dependencies for the shop orchestrator
type Config struct {
	Catalog *Catalog
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog *Catalog
}

// NewOrchestrator creates a new shop orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{catalog: cfg.Catalog}, nil
}

func (o *orchestrator) Catalog() *Catalog {
	return o.catalog
}

func (o *orchestrator) ListItems(_ context.Context) []*entities.Equipment {
	return o.catalog.Items()
}

func (o *orchestrator) SellPrice(item *entities.Equipment) int {
	if item == nil {
		return 0
	}
	return item.SellPrice()
}

// Buy purchases a catalog item for the character
func (o *orchestrator) Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	item, err := o.catalog.Get(input.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Purchased {
		return nil, errors.AlreadyExistsf("%s has already been purchased", item.Name).
			WithMeta("item_id", item.ID)
	}
	if input.Character.Gold < item.Price {
		return nil, errors.FailedPreconditionf("not enough gold: have %d, need %d",
			input.Character.Gold, item.Price).WithMeta("item_id", item.ID)
	}

	if err := input.Character.BuyItem(item); err != nil {
		return nil, errors.Wrapf(err, "failed to buy %s", item.Name)
	}

	slog.InfoContext(ctx, "item purchased",
		"character_id", input.Character.ID,
		"item_id", item.ID,
		"price", item.Price,
		"gold_left", input.Character.Gold)

	return &BuyOutput{Item: item, GoldSpent: item.Price}, nil
}

// Sell sells an owned item back, unequipping it first if needed
func (o *orchestrator) Sell(ctx context.Context, input *SellInput) (*SellOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	item, err := o.catalog.Get(input.ItemID)
	if err != nil {
		return nil, err
	}
	if !input.Character.Owns(item) {
		return nil, errors.NotFoundf("%s is not in the inventory", item.Name).
			WithMeta("item_id", item.ID)
	}

	unequipped := false
	if item.Equipped {
		if err := input.Character.UnequipItem(item); err != nil {
			return nil, errors.Wrapf(err, "failed to unequip %s", item.Name)
		}
		unequipped = true
	}

	refund, err := input.Character.SellItem(item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to sell %s", item.Name)
	}

	slog.InfoContext(ctx, "item sold",
		"character_id", input.Character.ID,
		"item_id", item.ID,
		"refund", refund,
		"unequipped", unequipped)

	return &SellOutput{Item: item, Refund: refund, Unequipped: unequipped}, nil
}
