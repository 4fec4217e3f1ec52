package components

import "fmt"

// Resource identifies a raw material kind. Resources are extracted from
// deposits by mines and consumed by recipes; the identity itself is
// immutable and only used as a ledger key.
type Resource uint8

const (
	Iron Resource = iota
	Aluminum
	Carbon
	Silica
	Uranium
	Water
)

var resourceNames = [...]string{
	Iron:     "Iron",
	Aluminum: "Aluminum",
	Carbon:   "Carbon",
	Silica:   "Silica",
	Uranium:  "Uranium",
	Water:    "Water",
}

func (r Resource) String() string {
	if int(r) < len(resourceNames) {
		return resourceNames[r]
	}
	return fmt.Sprintf("Resource(%d)", uint8(r))
}

// AllResources returns every resource kind in declaration order.
func AllResources() []Resource {
	out := make([]Resource, len(resourceNames))
	for i := range resourceNames {
		out[i] = Resource(i)
	}
	return out
}

// ParseResource maps a config-file name to a resource kind.
func ParseResource(name string) (Resource, error) {
	for i, n := range resourceNames {
		if n == name {
			return Resource(i), nil
		}
	}
	return 0, fmt.Errorf("unknown resource %q", name)
}

// Commodity identifies a manufactured good kind. The refinery tier
// (Silicon onward) covers intermediate goods refined directly from raw
// resources; factories produce the construction tier.
type Commodity uint8

const (
	Concrete Commodity = iota
	Semiconductor
	Fuel
	Glass
	FuelRod

	// Refinery tier
	Silicon
	Steel
	Oxygen
	Hydrogen
	FuelPellet
)

var commodityNames = [...]string{
	Concrete:      "Concrete",
	Semiconductor: "Semiconductor",
	Fuel:          "Fuel",
	Glass:         "Glass",
	FuelRod:       "FuelRod",
	Silicon:       "Silicon",
	Steel:         "Steel",
	Oxygen:        "Oxygen",
	Hydrogen:      "Hydrogen",
	FuelPellet:    "FuelPellet",
}

func (c Commodity) String() string {
	if int(c) < len(commodityNames) {
		return commodityNames[c]
	}
	return fmt.Sprintf("Commodity(%d)", uint8(c))
}

// AllCommodities returns every commodity kind in declaration order.
func AllCommodities() []Commodity {
	out := make([]Commodity, len(commodityNames))
	for i := range commodityNames {
		out[i] = Commodity(i)
	}
	return out
}

// ParseCommodity maps a config-file name to a commodity kind.
func ParseCommodity(name string) (Commodity, error) {
	for i, n := range commodityNames {
		if n == name {
			return Commodity(i), nil
		}
	}
	return 0, fmt.Errorf("unknown commodity %q", name)
}
