package game

import (
	"log/slog"

	"github.com/pthm-cable/outpost/systems"
	"github.com/pthm-cable/outpost/telemetry"
)

// Step advances the simulation by one tick, running the five phases in
// their fixed order over a row-major snapshot of the placed structures.
// The order is load-bearing: discharge settles the battery debt produced
// during consumption, charge uses whatever output survived it.
func (g *Game) Step() {
	g.tick++
	placements := g.grid.Placements()

	// Phase 0: reset both ledgers. Material stocks persist; deficits and
	// the whole energy pool start from zero every tick.
	g.energy.Zero()
	g.materials.ZeroDeficits()

	// Phase 1: energy collection.
	g.energy.Collect(placements)

	// Phase 2: production, consumption and storage intake.
	systems.Produce(placements, g.energy, g.materials)

	// Phase 3: settle borrowed reserve against real batteries.
	if g.energy.Discharged() > 0 {
		g.energy.Discharge(placements)
	}

	// Phase 4: push leftover output into free battery capacity.
	if g.energy.Output() > 0 {
		g.energy.Charge(placements)
	}

	g.recordTelemetry()
}

// recordTelemetry snapshots both ledgers for this tick and flushes window
// stats when a window completes.
func (g *Game) recordTelemetry() {
	rec := telemetry.SnapshotEnergy(g.tick, g.energy)
	g.collector.Record(rec)

	if err := g.output.WriteEnergy(rec); err != nil {
		slog.Error("telemetry write failed", "error", err)
	}
	if err := g.output.WriteMaterials(telemetry.SnapshotMaterials(g.tick, g.materials)); err != nil {
		slog.Error("telemetry write failed", "error", err)
	}

	if !g.collector.Ready() {
		return
	}

	stats := g.collector.Flush()
	if g.logStats {
		slog.Info("window stats",
			"window_end", stats.WindowEndTick,
			"output_mean", stats.OutputMean,
			"output_std", stats.OutputStd,
			"deficit_mean", stats.DeficitMean,
			"total_deficit", stats.TotalDeficit,
		)
	}
	if err := g.output.WriteStats(stats); err != nil {
		slog.Error("telemetry write failed", "error", err)
	}
}
