package systems

import (
	"github.com/pthm-cable/outpost/components"
	"github.com/pthm-cable/outpost/world"
)

// resourceProducer is the identity a resource-yielding structure carries:
// which raw resource its ResourceOutput component deposits.
type resourceProducer interface {
	Resource() components.Resource
}

// commodityProducer is the identity a recipe-holding structure carries:
// which commodity its RecipeOutput component deposits.
type commodityProducer interface {
	Commodity() components.Commodity
}

// Produce runs the production/consumption pass over the placed structures.
// Dispatch is by capability, not by structure variant: a structure acts
// through whichever output, recipe or storage components it was built with.
// Every action is all-or-nothing; shortfalls become ledger deficits.
func Produce(placements []world.Placement, energy *EnergyLedger, materials *MaterialLedger) {
	for _, pl := range placements {
		bp := pl.Structure.Blueprint()

		if bp.Has(components.KindResourceOutput) {
			if producer, ok := pl.Structure.(resourceProducer); ok {
				produceResource(bp, producer.Resource(), energy, materials)
			}
		}

		if bp.Has(components.KindRecipeOutput) {
			if producer, ok := pl.Structure.(commodityProducer); ok {
				produceRecipe(bp, producer.Commodity(), energy, materials)
			}
		}

		if bp.Has(components.KindResourceStorage) {
			intakeResources(bp.ResourceStorage(), materials)
		}

		if bp.Has(components.KindCommodityStorage) {
			intakeCommodities(bp.CommodityStorage(), materials)
		}
	}
}

// produceResource extracts a mine's per-tick yield if its energy demand can
// be met. The mine fully produces or fully fails; there is no partial yield.
func produceResource(bp *components.Blueprint, resource components.Resource, energy *EnergyLedger, materials *MaterialLedger) {
	required := bp.EnergyIn()
	yield := bp.ResourceOutput().Amount

	if energy.HasEnergy(required) {
		energy.Withdraw(required)
		materials.DepositResource(resource, yield)
	} else {
		energy.AddDeficit(required)
		materials.AddResourceDeficit(resource, yield)
	}
}

// produceRecipe runs one all-or-nothing recipe: only when the energy and
// every required resource are available is anything consumed.
func produceRecipe(bp *components.Blueprint, commodity components.Commodity, energy *EnergyLedger, materials *MaterialLedger) {
	recipe := bp.RecipeOutput()

	satisfied := energy.HasEnergy(recipe.EnergyRequired)
	if satisfied {
		for resource, amount := range recipe.ResourceRequired {
			if !materials.HasResource(resource, amount) {
				satisfied = false
				break
			}
		}
	}

	if !satisfied {
		materials.AddCommodityDeficit(commodity, recipe.CommodityOut)
		return
	}

	energy.Withdraw(recipe.EnergyRequired)
	for _, resource := range recipe.Resources() {
		materials.WithdrawResource(resource, recipe.ResourceRequired[resource])
	}
	materials.DepositCommodity(commodity, recipe.CommodityOut)
}

// intakeResources pulls global resource stock into a bounded local store.
// The ledger is debited by exactly what the store accepted, so competing
// stores earlier in iteration order win the contested stock.
func intakeResources(store *components.ResourceStorage, materials *MaterialLedger) {
	for _, resource := range store.Resources() {
		stock := materials.ResourceStock(resource)
		if stock == 0 {
			continue
		}
		accepted := store.Add(resource, stock)
		materials.WithdrawResource(resource, accepted)
	}
}

// intakeCommodities is the commodity counterpart of intakeResources.
func intakeCommodities(store *components.CommodityStorage, materials *MaterialLedger) {
	for _, commodity := range store.Commodities() {
		stock := materials.CommodityStock(commodity)
		if stock == 0 {
			continue
		}
		accepted := store.Add(commodity, stock)
		materials.WithdrawCommodity(commodity, accepted)
	}
}
