package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-textquest/internal/entities"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/shop"
)

// ListItems returns the shop's items in display order
func (g *Game) ListItems(ctx context.Context) []*entities.Equipment {
	return g.shop.ListItems(ctx)
}

// SellPrice is what the shop pays back for an item
func (g *Game) SellPrice(item *entities.Equipment) int {
	return g.shop.SellPrice(item)
}

// Buy purchases a catalog item
func (g *Game) Buy(ctx context.Context, itemID string) (*shop.BuyOutput, error) {
	return g.shop.Buy(ctx, &shop.BuyInput{Character: g.player, ItemID: itemID})
}

// Sell sells an owned item, unequipping it first
func (g *Game) Sell(ctx context.Context, itemID string) (*shop.SellOutput, error) {
	return g.shop.Sell(ctx, &shop.SellInput{Character: g.player, ItemID: itemID})
}

// ToggleEquip equips the owned item if it is not equipped and unequips it
// otherwise. It reports whether the item ends up equipped.
func (g *Game) ToggleEquip(ctx context.Context, itemID string) (bool, error) {
	var item *entities.Equipment
	for _, owned := range g.player.Inventory {
		if owned.ID == itemID {
			item = owned
			break
		}
	}
	if item == nil {
		return false, errors.NotFoundf("item %s is not in the inventory", itemID).
			WithMeta("item_id", itemID)
	}

	if item.Equipped {
		if err := g.player.UnequipItem(item); err != nil {
			return true, err
		}
	} else if err := g.player.EquipItem(item); err != nil {
		return false, err
	}

	slog.DebugContext(ctx, "equipment toggled",
		"item_id", item.ID,
		"equipped", item.Equipped,
		"item_attack", g.player.ItemAttack,
		"item_defense", g.player.ItemDefense)

	return item.Equipped, nil
}

// RestOutput reports what a rest did
type RestOutput struct {
	HealthBefore int
	HealthAfter  int
	GoldLeft     int
}

// Rest restores health to full for RestCost gold
func (g *Game) Rest(ctx context.Context) (*RestOutput, error) {
	if g.player.Gold < RestCost {
		return nil, errors.FailedPreconditionf("not enough gold to rest: have %d, need %d",
			g.player.Gold, RestCost)
	}

	before := g.player.Health
	g.player.TakeRest(RestCost)

	slog.InfoContext(ctx, "character rested",
		"character_id", g.player.ID,
		"health_before", before,
		"gold_left", g.player.Gold)

	return &RestOutput{
		HealthBefore: before,
		HealthAfter:  g.player.Health,
		GoldLeft:     g.player.Gold,
	}, nil
}

// EnterDungeon resolves one attempt at the tier
func (g *Game) EnterDungeon(ctx context.Context, tier entities.TierTag) (*dungeon.Result, error) {
	if g.combat.State() != combat.StateIdle {
		return nil, errors.FailedPrecondition("finish the current battle first")
	}
	out, err := g.dungeon.Enter(ctx, &dungeon.EnterInput{Character: g.player, Tier: tier})
	if err != nil {
		return nil, err
	}
	return out.Result, nil
}

// StartBattle begins an encounter against a monster
func (g *Game) StartBattle(ctx context.Context, monsterID string) (*entities.Monster, error) {
	out, err := g.combat.Start(ctx, &combat.StartInput{Character: g.player, MonsterID: monsterID})
	if err != nil {
		return nil, err
	}
	return out.Monster, nil
}

// Attack resolves one combat turn
func (g *Game) Attack(ctx context.Context) (*combat.Turn, error) {
	out, err := g.combat.Attack(ctx)
	if err != nil {
		return nil, err
	}
	return out.Turn, nil
}

// ExitBattle leaves the current encounter
func (g *Game) ExitBattle(ctx context.Context) (*combat.ExitOutput, error) {
	return g.combat.Exit(ctx)
}

// ClaimReward applies the reward picked after a win
func (g *Game) ClaimReward(ctx context.Context, reward combat.Reward) (*combat.ClaimRewardOutput, error) {
	return g.combat.ClaimReward(ctx, &combat.ClaimRewardInput{Reward: reward})
}
