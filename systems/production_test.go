package systems

import (
	"testing"

	"github.com/pthm-cable/outpost/components"
	"github.com/pthm-cable/outpost/structures"
	"github.com/pthm-cable/outpost/world"
)

func TestMineProducesWhenPowered(t *testing.T) {
	mine := structures.NewMine(components.Iron)
	required := mine.Blueprint().EnergyIn()
	yield := mine.Blueprint().ResourceOutput().Amount

	energy := EnergyLedger{output: required + 10}
	materials := newTestLedger()

	Produce([]world.Placement{place(0, 0, mine)}, &energy, materials)

	if got := materials.ResourceStock(components.Iron); got != yield {
		t.Errorf("expected stock %d, got %d", yield, got)
	}
	if energy.Output() != 10 {
		t.Errorf("expected output 10 after withdrawal, got %d", energy.Output())
	}
	if materials.ResourceDeficit(components.Iron) != 0 {
		t.Errorf("expected no deficit, got %d", materials.ResourceDeficit(components.Iron))
	}
}

func TestMineFailsWholesaleWithoutPower(t *testing.T) {
	mine := structures.NewMine(components.Iron)
	required := mine.Blueprint().EnergyIn()
	yield := mine.Blueprint().ResourceOutput().Amount

	energy := EnergyLedger{output: required - 1}
	materials := newTestLedger()

	Produce([]world.Placement{place(0, 0, mine)}, &energy, materials)

	if got := materials.ResourceStock(components.Iron); got != 0 {
		t.Errorf("expected no partial yield, got %d", got)
	}
	if got := energy.Deficit(); got != required {
		t.Errorf("expected energy deficit %d, got %d", required, got)
	}
	if got := materials.ResourceDeficit(components.Iron); got != yield {
		t.Errorf("expected resource deficit %d, got %d", yield, got)
	}
	// The check-before-withdraw contract: a failing mine drains nothing.
	if got := energy.Output(); got != required-1 {
		t.Errorf("expected pool untouched, got %d", got)
	}
}

func TestStorageIntakeClampsToCapacity(t *testing.T) {
	storage := structures.NewStorage()
	capacity := storage.Blueprint().ResourceStorage().Capacity(components.Iron)

	materials := newTestLedger()
	materials.DepositResource(components.Iron, capacity+500)

	var energy EnergyLedger
	Produce([]world.Placement{place(0, 0, storage)}, &energy, materials)

	if got := storage.Blueprint().ResourceStorage().Stored(components.Iron); got != capacity {
		t.Errorf("expected stored %d, got %d", capacity, got)
	}
	if got := materials.ResourceStock(components.Iron); got != 500 {
		t.Errorf("expected remaining stock 500, got %d", got)
	}
}

func TestStorageCompetitionFollowsPlacementOrder(t *testing.T) {
	first := structures.NewStorage()
	second := structures.NewStorage()
	capacity := first.Blueprint().ResourceStorage().Capacity(components.Iron)

	materials := newTestLedger()
	materials.DepositResource(components.Iron, capacity+300)

	var energy EnergyLedger
	Produce([]world.Placement{
		place(0, 0, first),
		place(1, 0, second),
	}, &energy, materials)

	if got := first.Blueprint().ResourceStorage().Stored(components.Iron); got != capacity {
		t.Errorf("expected first storage full at %d, got %d", capacity, got)
	}
	if got := second.Blueprint().ResourceStorage().Stored(components.Iron); got != 300 {
		t.Errorf("expected second storage 300, got %d", got)
	}
	if got := materials.ResourceStock(components.Iron); got != 0 {
		t.Errorf("expected stock exhausted, got %d", got)
	}
}

func TestStorageIntakeCoversCommodities(t *testing.T) {
	storage := structures.NewStorage()

	materials := newTestLedger()
	materials.DepositCommodity(components.Glass, 400)

	var energy EnergyLedger
	Produce([]world.Placement{place(0, 0, storage)}, &energy, materials)

	if got := storage.Blueprint().CommodityStorage().Stored(components.Glass); got != 400 {
		t.Errorf("expected stored 400, got %d", got)
	}
	if got := materials.CommodityStock(components.Glass); got != 0 {
		t.Errorf("expected stock drained, got %d", got)
	}
}

func TestFactoryProducesWhenFullySupplied(t *testing.T) {
	factory, err := structures.NewFactory(components.Glass)
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}
	recipe := factory.Blueprint().RecipeOutput()

	energy := EnergyLedger{output: recipe.EnergyRequired}
	materials := newTestLedger()
	for resource, amount := range recipe.ResourceRequired {
		// Strict availability check needs stock above the requirement.
		materials.DepositResource(resource, amount+1)
	}

	Produce([]world.Placement{place(0, 0, factory)}, &energy, materials)

	if got := materials.CommodityStock(components.Glass); got != recipe.CommodityOut {
		t.Errorf("expected %d glass, got %d", recipe.CommodityOut, got)
	}
	for resource, amount := range recipe.ResourceRequired {
		if got := materials.ResourceStock(resource); got != 1 {
			t.Errorf("%s: expected 1 left after consuming %d, got %d", resource, amount, got)
		}
	}
	if energy.Output() != 0 {
		t.Errorf("expected energy consumed, got %d", energy.Output())
	}
}

func TestFactoryAllOrNothingOnPartialResources(t *testing.T) {
	factory, err := structures.NewFactory(components.Concrete)
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}
	recipe := factory.Blueprint().RecipeOutput()
	if len(recipe.ResourceRequired) < 2 {
		t.Fatal("test needs a multi-resource recipe")
	}

	energy := EnergyLedger{output: recipe.EnergyRequired + 100}
	materials := newTestLedger()

	// Satisfy every requirement except one, which sits exactly at the
	// required amount and fails the strict check.
	short := recipe.Resources()[0]
	for resource, amount := range recipe.ResourceRequired {
		if resource == short {
			materials.DepositResource(resource, amount)
		} else {
			materials.DepositResource(resource, amount+10)
		}
	}

	Produce([]world.Placement{place(0, 0, factory)}, &energy, materials)

	if got := materials.CommodityStock(components.Concrete); got != 0 {
		t.Errorf("expected no commodity produced, got %d", got)
	}
	if got := materials.CommodityDeficit(components.Concrete); got != recipe.CommodityOut {
		t.Errorf("expected deficit %d, got %d", recipe.CommodityOut, got)
	}
	// No resource in the set may be decremented.
	for resource, amount := range recipe.ResourceRequired {
		want := amount
		if resource != short {
			want = amount + 10
		}
		if got := materials.ResourceStock(resource); got != want {
			t.Errorf("%s: expected stock %d untouched, got %d", resource, want, got)
		}
	}
	if got := energy.Output(); got != recipe.EnergyRequired+100 {
		t.Errorf("expected energy untouched, got %d", got)
	}
}

func TestFactorySkipsWithoutEnergy(t *testing.T) {
	factory, err := structures.NewFactory(components.Glass)
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}
	recipe := factory.Blueprint().RecipeOutput()

	energy := EnergyLedger{output: recipe.EnergyRequired - 1}
	materials := newTestLedger()
	for resource, amount := range recipe.ResourceRequired {
		materials.DepositResource(resource, amount+50)
	}

	Produce([]world.Placement{place(0, 0, factory)}, &energy, materials)

	if got := materials.CommodityStock(components.Glass); got != 0 {
		t.Errorf("expected nothing produced, got %d", got)
	}
	for resource, amount := range recipe.ResourceRequired {
		if got := materials.ResourceStock(resource); got != amount+50 {
			t.Errorf("%s: expected stock untouched, got %d", resource, got)
		}
	}
}

func TestRefineryProducesIntermediateGoods(t *testing.T) {
	refinery, err := structures.NewRefinery(components.Steel)
	if err != nil {
		t.Fatalf("NewRefinery: %v", err)
	}
	recipe := refinery.Blueprint().RecipeOutput()

	energy := EnergyLedger{output: recipe.EnergyRequired}
	materials := newTestLedger()
	for resource, amount := range recipe.ResourceRequired {
		materials.DepositResource(resource, amount+1)
	}

	Produce([]world.Placement{place(0, 0, refinery)}, &energy, materials)

	if got := materials.CommodityStock(components.Steel); got != recipe.CommodityOut {
		t.Errorf("expected %d steel, got %d", recipe.CommodityOut, got)
	}
}

func TestProduceSkipsPassiveStructures(t *testing.T) {
	base := structures.NewBase()
	plant := structures.NewPowerPlant()

	energy := EnergyLedger{output: 500}
	materials := newTestLedger()

	Produce([]world.Placement{place(0, 0, base), place(1, 0, plant)}, &energy, materials)

	if energy.Output() != 500 {
		t.Errorf("passive structures must not consume energy, got %d", energy.Output())
	}
}
