// Package structures defines the placeable structure variants and their
// constructors. A constructor assembles the full component set for its
// variant; callers never hand-assemble a blueprint.
package structures

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pthm-cable/outpost/components"
	"github.com/pthm-cable/outpost/config"
)

// Group identifies a structure variant.
type Group uint8

const (
	GroupBase Group = iota
	GroupPowerPlant
	GroupMine
	GroupStorage
	GroupFactory
	GroupRefinery
)

var groupNames = [...]string{
	GroupBase:       "Base",
	GroupPowerPlant: "PowerPlant",
	GroupMine:       "Mine",
	GroupStorage:    "Storage",
	GroupFactory:    "Factory",
	GroupRefinery:   "Refinery",
}

func (g Group) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	return fmt.Sprintf("Group(%d)", uint8(g))
}

// ParseGroup maps a config-file name to a structure group.
func ParseGroup(name string) (Group, error) {
	for i, n := range groupNames {
		if n == name {
			return Group(i), nil
		}
	}
	return 0, fmt.Errorf("unknown structure kind %q", name)
}

// Structure is one placed structure: a blueprint plus variant identity.
type Structure interface {
	Group() Group
	ID() uuid.UUID
	Blueprint() *components.Blueprint
}

// core carries the fields shared by every variant.
type core struct {
	id        uuid.UUID
	blueprint *components.Blueprint
}

func (c *core) ID() uuid.UUID { return c.id }

func (c *core) Blueprint() *components.Blueprint { return c.blueprint }

func newCore(cs ...components.Component) core {
	return core{id: uuid.New(), blueprint: components.NewBlueprint(cs...)}
}

// Base is the colony heart: an energy trickle plus the only battery bank.
type Base struct {
	core
}

func (*Base) Group() Group { return GroupBase }

// NewBase builds a base from the configured parameters.
func NewBase() *Base {
	p := config.Cfg().Structures.Base
	return &Base{core: newCore(
		&components.Energy{Out: p.EnergyOut},
		&components.Battery{Capacity: p.BatteryCapacity},
	)}
}

// PowerPlant produces a fixed energy output every tick.
type PowerPlant struct {
	core
}

func (*PowerPlant) Group() Group { return GroupPowerPlant }

// NewPowerPlant builds a power plant from the configured parameters.
func NewPowerPlant() *PowerPlant {
	p := config.Cfg().Structures.PowerPlant
	return &PowerPlant{core: newCore(
		&components.Energy{Out: p.EnergyOut},
	)}
}

// Mine extracts one assigned raw resource, spending energy each tick.
type Mine struct {
	core
	resource components.Resource
}

func (*Mine) Group() Group { return GroupMine }

// Resource returns the raw resource this mine extracts.
func (m *Mine) Resource() components.Resource { return m.resource }

// NewMine builds a mine extracting the given resource.
func NewMine(resource components.Resource) *Mine {
	p := config.Cfg().Structures.Mine
	return &Mine{
		core: newCore(
			&components.Energy{In: p.EnergyIn},
			&components.ResourceOutput{Amount: p.ResourceOut},
		),
		resource: resource,
	}
}

// Storage holds bounded local buffers for every resource and commodity kind.
type Storage struct {
	core
}

func (*Storage) Group() Group { return GroupStorage }

// NewStorage builds a storage with slots for the full goods rosters.
func NewStorage() *Storage {
	p := config.Cfg().Structures.Storage
	return &Storage{core: newCore(
		components.NewResourceStorage(components.AllResources(), p.ResourceCapacity),
		components.NewCommodityStorage(components.AllCommodities(), p.CommodityCapacity),
	)}
}

// Factory produces one construction-tier commodity via an all-or-nothing
// recipe.
type Factory struct {
	core
	commodity components.Commodity
}

func (*Factory) Group() Group { return GroupFactory }

// Commodity returns the commodity this factory produces.
func (f *Factory) Commodity() components.Commodity { return f.commodity }

// NewFactory builds a factory producing the given commodity. The commodity
// must have a factory recipe configured.
func NewFactory(commodity components.Commodity) (*Factory, error) {
	recipe, err := recipeComponent(config.Cfg().Derived.FactoryRecipes, commodity)
	if err != nil {
		return nil, fmt.Errorf("factory: %w", err)
	}
	return &Factory{core: newCore(recipe), commodity: commodity}, nil
}

// Refinery produces one refinery-tier commodity from raw resources.
type Refinery struct {
	core
	commodity components.Commodity
}

func (*Refinery) Group() Group { return GroupRefinery }

// Commodity returns the commodity this refinery produces.
func (r *Refinery) Commodity() components.Commodity { return r.commodity }

// NewRefinery builds a refinery producing the given commodity. The commodity
// must have a refinery recipe configured.
func NewRefinery(commodity components.Commodity) (*Refinery, error) {
	recipe, err := recipeComponent(config.Cfg().Derived.RefineryRecipes, commodity)
	if err != nil {
		return nil, fmt.Errorf("refinery: %w", err)
	}
	return &Refinery{core: newCore(recipe), commodity: commodity}, nil
}

// recipeComponent copies a configured recipe into an owned component.
func recipeComponent(table map[components.Commodity]config.RecipeSpec, commodity components.Commodity) (*components.RecipeOutput, error) {
	spec, ok := table[commodity]
	if !ok {
		return nil, fmt.Errorf("no recipe for %s", commodity)
	}

	required := make(map[components.Resource]uint64, len(spec.Resources))
	for r, amount := range spec.Resources {
		required[r] = amount
	}

	return &components.RecipeOutput{
		CommodityOut:     spec.Out,
		EnergyRequired:   spec.Energy,
		ResourceRequired: required,
	}, nil
}
