// Package telemetry records per-tick ledger snapshots and windowed
// aggregates for offline analysis.
package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/outpost/systems"
)

// TickRecord is one tick's energy ledger snapshot.
type TickRecord struct {
	Tick             uint64 `csv:"tick"`
	EnergyOutput     uint64 `csv:"energy_output"`
	EnergyStored     uint64 `csv:"energy_stored"`
	EnergyDischarged uint64 `csv:"energy_discharged"`
	EnergyDeficit    uint64 `csv:"energy_deficit"`
}

// MaterialRecord is one account's state at the end of a tick, long format:
// one row per resource or commodity kind.
type MaterialRecord struct {
	Tick    uint64 `csv:"tick"`
	Account string `csv:"account"`
	Kind    string `csv:"kind"`
	Stock   uint64 `csv:"stock"`
	Deficit uint64 `csv:"deficit"`
}

// WindowStats aggregates the energy ledger over one stats window.
type WindowStats struct {
	WindowEndTick uint64  `csv:"window_end"`
	Ticks         int     `csv:"ticks"`
	OutputMean    float64 `csv:"output_mean"`
	OutputStd     float64 `csv:"output_std"`
	DeficitMean   float64 `csv:"deficit_mean"`
	DeficitStd    float64 `csv:"deficit_std"`
	DischargeMean float64 `csv:"discharge_mean"`
	TotalDeficit  uint64  `csv:"total_deficit"`
}

// SnapshotEnergy builds a tick record from the energy ledger.
func SnapshotEnergy(tick uint64, energy *systems.EnergyLedger) TickRecord {
	return TickRecord{
		Tick:             tick,
		EnergyOutput:     energy.Output(),
		EnergyStored:     energy.Stored(),
		EnergyDischarged: energy.Discharged(),
		EnergyDeficit:    energy.Deficit(),
	}
}

// SnapshotMaterials builds one record per ledger account.
func SnapshotMaterials(tick uint64, materials *systems.MaterialLedger) []MaterialRecord {
	records := make([]MaterialRecord, 0, len(materials.Resources())+len(materials.Commodities()))
	for _, r := range materials.Resources() {
		records = append(records, MaterialRecord{
			Tick:    tick,
			Account: "resource",
			Kind:    r.String(),
			Stock:   materials.ResourceStock(r),
			Deficit: materials.ResourceDeficit(r),
		})
	}
	for _, c := range materials.Commodities() {
		records = append(records, MaterialRecord{
			Tick:    tick,
			Account: "commodity",
			Kind:    c.String(),
			Stock:   materials.CommodityStock(c),
			Deficit: materials.CommodityDeficit(c),
		})
	}
	return records
}

// meanStd returns mean and sample standard deviation, zero-safe for short
// windows.
func meanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean = stat.Mean(values, nil)
	if len(values) < 2 {
		return mean, 0
	}
	return mean, stat.StdDev(values, nil)
}
