package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/outpost/components"
	"github.com/pthm-cable/outpost/config"
	"github.com/pthm-cable/outpost/structures"
	"github.com/pthm-cable/outpost/world"
)

// Place builds the structure described by a layout entry and puts it on
// the grid. A mine with no explicit resource takes the resource of the
// deposit under it.
func (g *Game) Place(pc config.PlacementConfig) (structures.Structure, error) {
	group, err := structures.ParseGroup(pc.Kind)
	if err != nil {
		return nil, err
	}

	pos := world.Position{X: pc.X, Y: pc.Y}
	if !g.grid.InBounds(pos) {
		return nil, fmt.Errorf("%s at %s: out of bounds", group, pos)
	}
	if tile := g.grid.Tile(pos); !tile.Buildable() {
		return nil, fmt.Errorf("%s at %s: cannot build on %s", group, pos, tile)
	}

	s, err := g.construct(group, pos, pc)
	if err != nil {
		return nil, err
	}

	if err := g.grid.Place(pos, s); err != nil {
		return nil, err
	}

	slog.Info("structure placed",
		"kind", group.String(),
		"pos", pos.String(),
		"id", s.ID().String(),
	)
	return s, nil
}

// construct assembles the variant for a layout entry.
func (g *Game) construct(group structures.Group, pos world.Position, pc config.PlacementConfig) (structures.Structure, error) {
	switch group {
	case structures.GroupBase:
		return structures.NewBase(), nil

	case structures.GroupPowerPlant:
		return structures.NewPowerPlant(), nil

	case structures.GroupMine:
		resource, err := g.mineResource(pos, pc.Resource)
		if err != nil {
			return nil, err
		}
		return structures.NewMine(resource), nil

	case structures.GroupStorage:
		return structures.NewStorage(), nil

	case structures.GroupFactory:
		commodity, err := components.ParseCommodity(pc.Commodity)
		if err != nil {
			return nil, fmt.Errorf("factory at %s: %w", pos, err)
		}
		return structures.NewFactory(commodity)

	case structures.GroupRefinery:
		commodity, err := components.ParseCommodity(pc.Commodity)
		if err != nil {
			return nil, fmt.Errorf("refinery at %s: %w", pos, err)
		}
		return structures.NewRefinery(commodity)
	}

	return nil, fmt.Errorf("unhandled structure group %s", group)
}

// mineResource resolves which resource a new mine extracts: the explicit
// choice if given, otherwise the deposit under the mine.
func (g *Game) mineResource(pos world.Position, name string) (components.Resource, error) {
	if name != "" {
		return components.ParseResource(name)
	}
	if deposit := g.grid.Deposit(pos); deposit != nil {
		return deposit.Resource, nil
	}
	return 0, fmt.Errorf("mine at %s: no resource chosen and no deposit", pos)
}

// PlaceColony places the configured initial layout, skipping entries that
// cannot be placed on the generated terrain.
func (g *Game) PlaceColony(layout []config.PlacementConfig) int {
	placed := 0
	for _, pc := range layout {
		if _, err := g.Place(pc); err != nil {
			slog.Warn("skipping layout entry", "error", err)
			continue
		}
		placed++
	}
	return placed
}
