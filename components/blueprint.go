package components

import "fmt"

// Blueprint is the fixed component set attached to a structure instance.
// It holds at most one component per kind. Looking up a kind the structure
// was not built with is a construction defect, not a runtime condition, so
// the typed accessors panic rather than return an error.
type Blueprint struct {
	components map[Kind]Component
}

// NewBlueprint builds a blueprint from the given components.
func NewBlueprint(cs ...Component) *Blueprint {
	b := &Blueprint{components: make(map[Kind]Component, len(cs))}
	for _, c := range cs {
		b.Add(c)
	}
	return b
}

// Add inserts a component, replacing any existing component of its kind.
func (b *Blueprint) Add(c Component) {
	b.components[c.Kind()] = c
}

// Has reports whether the blueprint carries a component of the given kind.
// This is the non-failing capability probe.
func (b *Blueprint) Has(k Kind) bool {
	_, ok := b.components[k]
	return ok
}

// Get returns the component of the given kind, panicking if absent.
func (b *Blueprint) Get(k Kind) Component {
	c, ok := b.components[k]
	if !ok {
		panic(fmt.Sprintf("%s is missing in this structure", k))
	}
	return c
}

// Energy returns the energy component.
func (b *Blueprint) Energy() *Energy {
	return b.Get(KindEnergy).(*Energy)
}

// Battery returns the battery component.
func (b *Blueprint) Battery() *Battery {
	return b.Get(KindBattery).(*Battery)
}

// ResourceOutput returns the resource output component.
func (b *Blueprint) ResourceOutput() *ResourceOutput {
	return b.Get(KindResourceOutput).(*ResourceOutput)
}

// ResourceStorage returns the resource storage component.
func (b *Blueprint) ResourceStorage() *ResourceStorage {
	return b.Get(KindResourceStorage).(*ResourceStorage)
}

// CommodityStorage returns the commodity storage component.
func (b *Blueprint) CommodityStorage() *CommodityStorage {
	return b.Get(KindCommodityStorage).(*CommodityStorage)
}

// RecipeOutput returns the recipe output component.
func (b *Blueprint) RecipeOutput() *RecipeOutput {
	return b.Get(KindRecipeOutput).(*RecipeOutput)
}

// EnergyIn returns the per-tick energy demand, or zero without the capability.
func (b *Blueprint) EnergyIn() uint64 {
	if !b.Has(KindEnergy) {
		return 0
	}
	return b.Energy().In
}

// EnergyOut returns the per-tick energy supply, or zero without the capability.
func (b *Blueprint) EnergyOut() uint64 {
	if !b.Has(KindEnergy) {
		return 0
	}
	return b.Energy().Out
}
