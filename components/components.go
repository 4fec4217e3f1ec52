// Package components defines the capability records a structure is built
// from: energy figures, batteries, outputs, bounded storages and recipes.
// A structure's blueprint holds at most one component of each kind.
package components

import (
	"fmt"
	"sort"
)

// Kind tags a component record within a blueprint.
type Kind uint8

const (
	KindEnergy Kind = iota
	KindBattery
	KindResourceOutput
	KindResourceStorage
	KindCommodityStorage
	KindRecipeOutput
)

var kindNames = [...]string{
	KindEnergy:           "EnergyComponent",
	KindBattery:          "BatteryComponent",
	KindResourceOutput:   "ResourceOutputComponent",
	KindResourceStorage:  "ResourceStorageComponent",
	KindCommodityStorage: "CommodityStorageComponent",
	KindRecipeOutput:     "RecipeOutputComponent",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Component is one capability record attached to a blueprint.
type Component interface {
	Kind() Kind
}

// Energy declares a structure's fixed per-tick energy demand and supply.
type Energy struct {
	In  uint64
	Out uint64
}

func (*Energy) Kind() Kind { return KindEnergy }

// Battery is a bounded local energy buffer. Stored never exceeds Capacity.
type Battery struct {
	Capacity uint64
	Stored   uint64
}

func (*Battery) Kind() Kind { return KindBattery }

// Free returns the remaining charge capacity.
func (b *Battery) Free() uint64 {
	return b.Capacity - b.Stored
}

// Charge adds up to amount of energy and returns the amount accepted,
// clamped to free capacity.
func (b *Battery) Charge(amount uint64) uint64 {
	if amount > b.Free() {
		amount = b.Free()
	}
	b.Stored += amount
	return amount
}

// Discharge removes up to amount of energy and returns the amount released,
// clamped to the stored charge.
func (b *Battery) Discharge(amount uint64) uint64 {
	if amount > b.Stored {
		amount = b.Stored
	}
	b.Stored -= amount
	return amount
}

// ResourceOutput declares a fixed per-tick yield of one raw resource. The
// resource itself is identity data on the owning structure.
type ResourceOutput struct {
	Amount uint64
}

func (*ResourceOutput) Kind() Kind { return KindResourceOutput }

// ResourceStorage is a bounded local buffer with one slot per resource kind
// known to the structure.
type ResourceStorage struct {
	capacity map[Resource]uint64
	stored   map[Resource]uint64
}

// NewResourceStorage creates storage slots for the given kinds, each with
// the same capacity and zero initial stock.
func NewResourceStorage(kinds []Resource, capacity uint64) *ResourceStorage {
	s := &ResourceStorage{
		capacity: make(map[Resource]uint64, len(kinds)),
		stored:   make(map[Resource]uint64, len(kinds)),
	}
	for _, r := range kinds {
		s.capacity[r] = capacity
		s.stored[r] = 0
	}
	return s
}

func (*ResourceStorage) Kind() Kind { return KindResourceStorage }

// Resources returns the known resource kinds in declaration order.
func (s *ResourceStorage) Resources() []Resource {
	out := make([]Resource, 0, len(s.stored))
	for r := range s.stored {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Capacity returns the slot capacity for a resource kind.
func (s *ResourceStorage) Capacity(r Resource) uint64 {
	return s.capacity[r]
}

// Free returns the remaining slot capacity for a resource kind.
func (s *ResourceStorage) Free(r Resource) uint64 {
	return s.capacity[r] - s.stored[r]
}

// Stored returns the current stock for a resource kind.
func (s *ResourceStorage) Stored(r Resource) uint64 {
	return s.stored[r]
}

// Add stores up to amount of a resource and returns the amount accepted,
// clamped to free capacity. Unknown kinds are rejected entirely.
func (s *ResourceStorage) Add(r Resource, amount uint64) uint64 {
	if _, ok := s.stored[r]; !ok {
		return 0
	}
	if free := s.Free(r); amount > free {
		amount = free
	}
	s.stored[r] += amount
	return amount
}

// CommodityStorage is the commodity-keyed counterpart of ResourceStorage.
type CommodityStorage struct {
	capacity map[Commodity]uint64
	stored   map[Commodity]uint64
}

// NewCommodityStorage creates storage slots for the given kinds, each with
// the same capacity and zero initial stock.
func NewCommodityStorage(kinds []Commodity, capacity uint64) *CommodityStorage {
	s := &CommodityStorage{
		capacity: make(map[Commodity]uint64, len(kinds)),
		stored:   make(map[Commodity]uint64, len(kinds)),
	}
	for _, c := range kinds {
		s.capacity[c] = capacity
		s.stored[c] = 0
	}
	return s
}

func (*CommodityStorage) Kind() Kind { return KindCommodityStorage }

// Commodities returns the known commodity kinds in declaration order.
func (s *CommodityStorage) Commodities() []Commodity {
	out := make([]Commodity, 0, len(s.stored))
	for c := range s.stored {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Capacity returns the slot capacity for a commodity kind.
func (s *CommodityStorage) Capacity(c Commodity) uint64 {
	return s.capacity[c]
}

// Free returns the remaining slot capacity for a commodity kind.
func (s *CommodityStorage) Free(c Commodity) uint64 {
	return s.capacity[c] - s.stored[c]
}

// Stored returns the current stock for a commodity kind.
func (s *CommodityStorage) Stored(c Commodity) uint64 {
	return s.stored[c]
}

// Add stores up to amount of a commodity and returns the amount accepted,
// clamped to free capacity. Unknown kinds are rejected entirely.
func (s *CommodityStorage) Add(c Commodity, amount uint64) uint64 {
	if _, ok := s.stored[c]; !ok {
		return 0
	}
	if free := s.Free(c); amount > free {
		amount = free
	}
	s.stored[c] += amount
	return amount
}

// RecipeOutput is an all-or-nothing production rule: the full energy and
// resource requirement is consumed in one tick, or nothing is.
type RecipeOutput struct {
	CommodityOut     uint64
	EnergyRequired   uint64
	ResourceRequired map[Resource]uint64
}

func (*RecipeOutput) Kind() Kind { return KindRecipeOutput }

// Resources returns the required resource kinds in declaration order.
func (r *RecipeOutput) Resources() []Resource {
	out := make([]Resource, 0, len(r.ResourceRequired))
	for res := range r.ResourceRequired {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
