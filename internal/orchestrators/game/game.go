// Package game owns the live state of a single-player run and exposes every
// action the stage can take on it.
package game

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-textquest/internal/entities"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/rpg-textquest/internal/orchestrators/shop"
	"github.com/KirkDiggler/rpg-textquest/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-textquest/internal/repositories/snapshot"
)

// RestCost is the gold charged for a night's rest
const RestCost = 500

// DefaultSaveSlot is used when no slot is configured
const DefaultSaveSlot = "SaveData"

// Config holds the dependencies for a game
type Config struct {
	Roller      dice.Roller
	EventBus    events.EventBus
	Snapshots   snapshot.Repository
	IDGenerator idgen.Generator

	// SaveSlot names where Save and Load go; DefaultSaveSlot when empty
	SaveSlot string

	// PlayerName names the starting character; entities.DefaultName when empty
	PlayerName string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Snapshots == nil {
		vb.RequiredField("Snapshots")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Game is one run: a character, the shop catalog, the bestiary and the
// services that act on them
type Game struct {
	player    *entities.Character
	catalog   *shop.Catalog
	shop      shop.Service
	combat    combat.Service
	dungeon   dungeon.Service
	snapshots snapshot.Repository
	idGen     idgen.Generator
	slot      string
}

// New starts a fresh game with a new character
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	catalog := shop.NewCatalog()
	shopSvc, err := shop.NewOrchestrator(&shop.Config{Catalog: catalog})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create shop")
	}

	combatSvc, err := combat.NewOrchestrator(&combat.Config{
		Monsters: entities.DefaultBestiary(),
		EventBus: cfg.EventBus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat")
	}

	dungeonSvc, err := dungeon.NewOrchestrator(&dungeon.Config{
		Roller:   cfg.Roller,
		EventBus: cfg.EventBus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dungeon")
	}

	slot := cfg.SaveSlot
	if slot == "" {
		slot = DefaultSaveSlot
	}

	return &Game{
		player:    entities.NewCharacter(cfg.IDGenerator.Generate(), cfg.PlayerName),
		catalog:   catalog,
		shop:      shopSvc,
		combat:    combatSvc,
		dungeon:   dungeonSvc,
		snapshots: cfg.Snapshots,
		idGen:     cfg.IDGenerator,
		slot:      slot,
	}, nil
}

// Player returns the live character. The pointer stays valid across loads.
func (g *Game) Player() *entities.Character {
	return g.player
}

// Catalog returns the shop catalog
func (g *Game) Catalog() *shop.Catalog {
	return g.catalog
}

// Monsters lists the monsters available for battle
func (g *Game) Monsters() []*entities.Monster {
	return g.combat.Monsters()
}

// CombatState reports where the current encounter is
func (g *Game) CombatState() combat.State {
	return g.combat.State()
}

// SaveSlot names where Save and Load go
func (g *Game) SaveSlot() string {
	return g.slot
}
