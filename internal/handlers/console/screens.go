package console

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-textquest/internal/entities"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-textquest/internal/repositories/snapshot"
)

// waitForExit shows "0. Exit" until the player picks it
func (s *Stage) waitForExit(ctx context.Context) error {
	for {
		s.println()
		s.println("0. Exit")
		choice, err := s.choose(ctx)
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}
		s.println(invalidInput)
	}
}

func (s *Stage) status(ctx context.Context) error {
	p := s.game.Player()

	s.println()
	s.println("Status")
	s.println("Your character's information.")
	s.println()
	s.printf("Lv. %02d\n", p.Level)
	s.printf("Name : %s\n", p.Name)
	if p.ItemAttack != 0 {
		s.printf("Attack : %g (+%d)\n", p.TotalAttack(), p.ItemAttack)
	} else {
		s.printf("Attack : %g\n", p.Attack)
	}
	if p.ItemDefense != 0 {
		s.printf("Defense : %d (+%d)\n", p.TotalDefense(), p.ItemDefense)
	} else {
		s.printf("Defense : %d\n", p.Defense)
	}
	s.printf("Health : %d\n", p.Health)
	s.printf("Gold : %d G\n", p.Gold)

	return s.waitForExit(ctx)
}

func describe(item *entities.Equipment) string {
	mark := ""
	if item.Equipped {
		mark = "[E]"
	}
	stat := "Defense"
	if item.Kind == entities.KindWeapon {
		stat = "Attack"
	}
	return fmt.Sprintf("%s%s | %s +%d | %s", mark, item.Name, stat, item.Bonus, item.Description)
}

func (s *Stage) inventory(ctx context.Context) error {
	for {
		s.println()
		s.println("Inventory")
		s.println("Manage the items you own.")
		s.println()
		s.println("[Items]")
		for _, item := range s.game.Player().Inventory {
			s.printf("- %s\n", describe(item))
		}
		s.println()
		s.println("1. Manage equipment")
		s.println("0. Exit")

		choice, err := s.choose(ctx)
		if err != nil {
			return err
		}
		switch choice {
		case 0:
			return nil
		case 1:
			if err := s.equipment(ctx); err != nil {
				return err
			}
		default:
			s.println(invalidInput)
		}
	}
}

func (s *Stage) equipment(ctx context.Context) error {
	for {
		items := s.game.Player().Inventory

		s.println()
		s.println("Inventory - Manage equipment")
		s.println("Pick an item to equip or unequip it.")
		s.println()
		s.println("[Items]")
		for i, item := range items {
			s.printf("- %d %s\n", i+1, describe(item))
		}
		s.println()
		s.println("0. Exit")

		choice, err := s.choose(ctx)
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}
		if choice < 1 || choice > len(items) {
			s.println(invalidInput)
			continue
		}
		if _, err := s.game.ToggleEquip(ctx, items[choice-1].ID); err != nil {
			if err := s.report(ctx, err); err != nil {
				return err
			}
		}
	}
}

func (s *Stage) shop(ctx context.Context) error {
	for {
		s.println()
		s.println("Shop")
		s.println("Get the gear you need here.")
		s.println()
		s.println("[Gold]")
		s.printf(" %d G\n", s.game.Player().Gold)
		s.println()
		s.println("[Items]")
		for _, item := range s.game.ListItems(ctx) {
			s.printf("- %s | %s\n", describe(item), priceTag(item))
		}
		s.println()
		s.println("1. Buy")
		s.println("2. Sell")
		s.println("0. Exit")

		choice, err := s.choose(ctx)
		if err != nil {
			return err
		}
		switch choice {
		case 0:
			return nil
		case 1:
			err = s.buy(ctx)
		case 2:
			err = s.sell(ctx)
		default:
			s.println(invalidInput)
		}
		if err != nil {
			return err
		}
	}
}

func priceTag(item *entities.Equipment) string {
	if item.Purchased {
		return "Purchased"
	}
	return fmt.Sprintf("%d G", item.Price)
}

func (s *Stage) buy(ctx context.Context) error {
	for {
		items := s.game.ListItems(ctx)

		s.println()
		s.println("Shop - Buy")
		s.println()
		s.println("[Gold]")
		s.printf(" %d G\n", s.game.Player().Gold)
		s.println()
		s.println("[Items]")
		for i, item := range items {
			s.printf("- %d %s | %s\n", i+1, describe(item), priceTag(item))
		}
		s.println()
		s.println("0. Exit")

		choice, err := s.choose(ctx)
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}
		if choice < 1 || choice > len(items) {
			s.println(invalidInput)
			continue
		}

		if _, err := s.game.Buy(ctx, items[choice-1].ID); err != nil {
			if err := s.report(ctx, err); err != nil {
				return err
			}
			continue
		}
		s.println("Purchase complete.")
	}
}

func (s *Stage) sell(ctx context.Context) error {
	for {
		items := s.game.Player().Inventory

		s.println()
		s.println("Shop - Sell")
		s.println()
		s.println("[Gold]")
		s.printf(" %d G\n", s.game.Player().Gold)
		s.println()
		s.println("[Items]")
		for i, item := range items {
			s.printf("- %d %s | %d G\n", i+1, describe(item), s.game.SellPrice(item))
		}
		s.println()
		s.println("0. Exit")

		choice, err := s.choose(ctx)
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}
		if choice < 1 || choice > len(items) {
			s.println(invalidInput)
			continue
		}

		out, err := s.game.Sell(ctx, items[choice-1].ID)
		if err != nil {
			if err := s.report(ctx, err); err != nil {
				return err
			}
			continue
		}
		s.printf("Sold for %d G.\n", out.Refund)
	}
}

func (s *Stage) rest(ctx context.Context) error {
	for {
		s.println()
		s.println("Rest")
		s.printf("Pay %d G to recover your health. (Gold: %d G)\n", game.RestCost, s.game.Player().Gold)
		s.println()
		s.println("1. Rest")
		s.println("0. Exit")

		choice, err := s.choose(ctx)
		if err != nil {
			return err
		}
		switch choice {
		case 0:
			return nil
		case 1:
			if _, err := s.game.Rest(ctx); err != nil {
				if err := s.report(ctx, err); err != nil {
					return err
				}
				continue
			}
			s.println("You feel rested.")
			s.pause()
		default:
			s.println(invalidInput)
		}
	}
}

var tierChoices = []entities.TierTag{entities.TierEasy, entities.TierNormal, entities.TierHard}

func (s *Stage) dungeon(ctx context.Context) error {
	for {
		s.println()
		s.println("Enter dungeon")
		s.println()
		for i, tag := range tierChoices {
			tier, err := entities.TierByTag(tag)
			if err != nil {
				return err
			}
			s.printf("%d. %-14s | defense %d or more recommended\n", i+1, tier.Name, tier.RecommendedDefense)
		}
		s.println("0. Exit")

		choice, err := s.choose(ctx)
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}
		if choice < 1 || choice > len(tierChoices) {
			s.println(invalidInput)
			continue
		}

		result, err := s.game.EnterDungeon(ctx, tierChoices[choice-1])
		if err != nil {
			if err := s.report(ctx, err); err != nil {
				return err
			}
			continue
		}

		s.pause()
		s.println()
		if result.Cleared {
			s.println("Dungeon cleared!")
			s.printf("You cleared the %s.\n", result.Tier.Name)
			s.println()
			s.println("[Result]")
			s.printf("Health %d -> %d\n", result.HealthBefore, result.HealthAfter)
			s.printf("Gold %d G -> %d G\n", result.GoldBefore, result.GoldAfter)
			if result.LeveledUp {
				s.println()
				s.printf("*** Level up! (Lv. %d -> %d) ***\n", result.LevelBefore, result.LevelAfter)
			}
		} else {
			s.println("Dungeon failed...")
			s.println("You could not make it through.")
			s.println()
			s.println("[Result]")
			s.printf("Health %d -> %d\n", result.HealthBefore, result.HealthAfter)
		}
		return s.waitForExit(ctx)
	}
}

func (s *Stage) battle(ctx context.Context) error {
	for {
		monsters := s.game.Monsters()

		s.println()
		s.println("Battle a monster")
		s.println("Trade blows with a monster in turns.")
		s.println()
		s.println("[Monsters]")
		for i, m := range monsters {
			s.printf("%d. %s\n", i+1, m.Name)
		}
		s.println()
		s.println("0. Exit")

		choice, err := s.choose(ctx)
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}
		if choice < 1 || choice > len(monsters) {
			s.println(invalidInput)
			continue
		}

		monster, err := s.game.StartBattle(ctx, monsters[choice-1].ID)
		if err != nil {
			if err := s.report(ctx, err); err != nil {
				return err
			}
			continue
		}
		return s.fight(ctx, monster)
	}
}

func (s *Stage) fight(ctx context.Context, monster *entities.Monster) error {
	for {
		s.println()
		s.printf("[%s]\n", monster.Name)
		s.printf("Health left : %d\n", monster.Health)
		s.println()
		s.printf("Player health : %d\n", s.game.Player().Health)
		s.println()
		s.println("1. Attack")
		s.println("0. Exit")

		choice, err := s.choose(ctx)
		if err != nil {
			_, _ = s.game.ExitBattle(ctx)
			return err
		}
		switch choice {
		case 0:
			if _, err := s.game.ExitBattle(ctx); err != nil {
				return s.report(ctx, err)
			}
			return nil
		case 1:
		default:
			s.println(invalidInput)
			continue
		}

		turn, err := s.game.Attack(ctx)
		if err != nil {
			return s.report(ctx, err)
		}
		s.println()
		s.printf("You hit the monster for %d damage!\n", turn.PlayerDamage)
		s.printf("The monster hits you for %d damage!\n", turn.MonsterDamage)
		s.pause()

		switch turn.Outcome {
		case combat.OutcomePlayerDefeated:
			s.println()
			s.println("You were defeated... You wake up at the dungeon entrance.")
			s.pause()
			return nil
		case combat.OutcomeMonsterDefeated:
			return s.reward(ctx)
		}
	}
}

func (s *Stage) reward(ctx context.Context) error {
	for {
		s.println()
		s.println("The monster is defeated!")
		s.println("Choose your reward.")
		s.println()
		s.println("1. Health potion")
		s.println("2. Strength potion")
		s.println("0. Exit")

		choice, err := s.choose(ctx)
		if err != nil {
			_, _ = s.game.ExitBattle(ctx)
			return err
		}

		var reward combat.Reward
		switch choice {
		case 0:
			if _, err := s.game.ExitBattle(ctx); err != nil {
				return s.report(ctx, err)
			}
			return nil
		case 1:
			reward = combat.RewardHealthPotion
		case 2:
			reward = combat.RewardStrengthPotion
		default:
			s.println(invalidInput)
			continue
		}

		if _, err := s.game.ClaimReward(ctx, reward); err != nil {
			return s.report(ctx, err)
		}
		if reward == combat.RewardHealthPotion {
			s.println("You drink the health potion.")
		} else {
			s.println("You drink the strength potion.")
		}
		s.pause()
		return nil
	}
}

func (s *Stage) save(ctx context.Context) error {
	if _, err := s.game.Save(ctx); err != nil {
		return s.report(ctx, err)
	}
	s.println("Game saved.")
	s.pause()
	return nil
}

func (s *Stage) load(ctx context.Context) error {
	if _, err := s.game.Load(ctx); err != nil {
		switch snapshot.FailureReason(err) {
		case snapshot.ReasonMissing:
			s.println("Load failed: there is no saved game.")
		case snapshot.ReasonCorrupt:
			s.println("Load failed: the saved game is damaged.")
		case snapshot.ReasonInvalid:
			s.println("Load failed: the saved game is not valid.")
		default:
			return s.report(ctx, err)
		}
		return nil
	}
	s.println("Game loaded.")
	s.pause()
	return nil
}
