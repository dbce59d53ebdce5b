package shop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-textquest/internal/entities"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/shop"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx       context.Context
	catalog   *shop.Catalog
	shop      shop.Service
	character *entities.Character
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.catalog = shop.NewCatalog()

	var err error
	s.shop, err = shop.NewOrchestrator(&shop.Config{Catalog: s.catalog})
	s.Require().NoError(err)

	s.character = entities.NewCharacter("char_1", "Tester")
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := shop.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = shop.NewOrchestrator(&shop.Config{})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Catalog")
}

func (s *OrchestratorTestSuite) TestCatalogContents() {
	items := s.shop.ListItems(s.ctx)
	s.Require().Len(items, 6)

	var armorBonuses, weaponBonuses, armorPrices, weaponPrices []int
	for _, item := range items {
		switch item.Kind {
		case entities.KindArmor:
			armorBonuses = append(armorBonuses, item.Bonus)
			armorPrices = append(armorPrices, item.Price)
		case entities.KindWeapon:
			weaponBonuses = append(weaponBonuses, item.Bonus)
			weaponPrices = append(weaponPrices, item.Price)
		}
		s.False(item.Purchased)
		s.False(item.Equipped)
	}

	s.Equal([]int{5, 9, 15}, armorBonuses)
	s.Equal([]int{2, 5, 7}, weaponBonuses)
	s.IsIncreasing(armorPrices)
	s.IsIncreasing(weaponPrices)
}

func (s *OrchestratorTestSuite) TestBuy() {
	out, err := s.shop.Buy(s.ctx, &shop.BuyInput{Character: s.character, ItemID: shop.ItemOldSword})
	s.Require().NoError(err)
	s.Equal(600, out.GoldSpent)
	s.Equal(900, s.character.Gold)
	s.True(out.Item.Purchased)
	s.False(out.Item.Equipped)
	s.True(s.character.Owns(out.Item))
}

func (s *OrchestratorTestSuite) TestBuyErrors() {
	s.Run("unknown item", func() {
		_, err := s.shop.Buy(s.ctx, &shop.BuyInput{Character: s.character, ItemID: "weapon_laser"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("not enough gold", func() {
		_, err := s.shop.Buy(s.ctx, &shop.BuyInput{Character: s.character, ItemID: shop.ItemSpartanArmor})
		s.True(errors.IsFailedPrecondition(err))
		s.Equal(1500, s.character.Gold)
	})

	s.Run("already purchased", func() {
		_, err := s.shop.Buy(s.ctx, &shop.BuyInput{Character: s.character, ItemID: shop.ItemOldSword})
		s.Require().NoError(err)
		_, err = s.shop.Buy(s.ctx, &shop.BuyInput{Character: s.character, ItemID: shop.ItemOldSword})
		s.True(errors.IsAlreadyExists(err))
		s.Equal(900, s.character.Gold)
	})

	s.Run("missing character", func() {
		_, err := s.shop.Buy(s.ctx, &shop.BuyInput{ItemID: shop.ItemOldSword})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestSell() {
	_, err := s.shop.Buy(s.ctx, &shop.BuyInput{Character: s.character, ItemID: shop.ItemOldSword})
	s.Require().NoError(err)

	out, err := s.shop.Sell(s.ctx, &shop.SellInput{Character: s.character, ItemID: shop.ItemOldSword})
	s.Require().NoError(err)
	s.Equal(510, out.Refund)
	s.Equal(510, s.shop.SellPrice(out.Item))
	s.False(out.Unequipped)
	s.Equal(1410, s.character.Gold)
	s.False(out.Item.Purchased)

	_, err = s.shop.Sell(s.ctx, &shop.SellInput{Character: s.character, ItemID: shop.ItemOldSword})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSellEquippedUnequipsFirst() {
	out, err := s.shop.Buy(s.ctx, &shop.BuyInput{Character: s.character, ItemID: shop.ItemNoviceArmor})
	s.Require().NoError(err)
	s.Require().NoError(s.character.EquipItem(out.Item))
	s.Equal(5, s.character.ItemDefense)

	sold, err := s.shop.Sell(s.ctx, &shop.SellInput{Character: s.character, ItemID: shop.ItemNoviceArmor})
	s.Require().NoError(err)
	s.True(sold.Unequipped)
	s.Equal(850, sold.Refund)
	s.Equal(0, s.character.ItemDefense)
	s.False(s.character.Slots.Occupied(entities.SlotArmor))
	s.Equal(1350, s.character.Gold)
}

func (s *OrchestratorTestSuite) TestCatalogAt() {
	item, err := s.catalog.At(3)
	s.Require().NoError(err)
	s.Equal(shop.ItemOldSword, item.ID)

	_, err = s.catalog.At(6)
	s.True(errors.IsOutOfRange(err))
}

func (s *OrchestratorTestSuite) TestIDForName() {
	id, ok := shop.IDForName("Spartan Spear")
	s.True(ok)
	s.Equal(shop.ItemSpartanSpear, id)

	_, ok = shop.IDForName("Laser Sword")
	s.False(ok)
}
