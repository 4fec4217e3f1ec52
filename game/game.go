// Package game orchestrates the colony simulation: it owns the placement
// grid and both ledgers and drives the five-phase production pass once per
// tick.
package game

import (
	"fmt"

	"github.com/pthm-cable/outpost/components"
	"github.com/pthm-cable/outpost/config"
	"github.com/pthm-cable/outpost/systems"
	"github.com/pthm-cable/outpost/telemetry"
	"github.com/pthm-cable/outpost/world"
)

// Options holds host-side settings for a new game.
type Options struct {
	Seed        int64
	OutputDir   string // empty = CSV output disabled
	LogStats    bool   // log window stats via slog
	StatsWindow int    // ticks per stats window (0 = use config)
}

// Game holds the complete simulation state. The game exclusively owns both
// ledgers; structures are owned by the grid and borrowed one at a time
// during the passes.
type Game struct {
	grid      *world.Grid
	energy    *systems.EnergyLedger
	materials *systems.MaterialLedger

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	tick uint64
}

// NewGame generates terrain from the configured world parameters and
// creates an empty colony.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.World.Seed
	}

	return newGame(world.Generate(cfg, seed), opts)
}

// newGame assembles a game over an existing grid.
func newGame(grid *world.Grid, opts Options) (*Game, error) {
	cfg := config.Cfg()

	window := opts.StatsWindow
	if window == 0 {
		window = cfg.Telemetry.StatsWindow
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	return &Game{
		grid:      grid,
		energy:    systems.NewEnergyLedger(),
		materials: systems.NewMaterialLedger(components.AllResources(), components.AllCommodities()),
		collector: telemetry.NewCollector(window),
		output:    output,
		logStats:  opts.LogStats,
	}, nil
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() uint64 { return g.tick }

// Grid returns the placement grid.
func (g *Game) Grid() *world.Grid { return g.grid }

// Energy returns the energy ledger as of the last completed tick.
func (g *Game) Energy() *systems.EnergyLedger { return g.energy }

// Materials returns the material ledger as of the last completed tick.
func (g *Game) Materials() *systems.MaterialLedger { return g.materials }

// Close flushes and releases telemetry output.
func (g *Game) Close() error {
	return g.output.Close()
}
