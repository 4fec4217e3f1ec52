package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/outpost/config"
	"github.com/pthm-cable/outpost/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "World seed (0 = use config)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Log window stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	g, err := game.NewGame(game.Options{
		Seed:        *seed,
		OutputDir:   *outputDir,
		LogStats:    *logStats,
		StatsWindow: *statsWindow,
	})
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	placed := g.PlaceColony(cfg.Colony.Structures)
	slog.Info("colony initialized",
		"structures", placed,
		"width", g.Grid().Width(),
		"height", g.Grid().Height(),
		"max_ticks", *maxTicks,
	)

	interval := time.Duration(cfg.Colony.TickIntervalMs) * time.Millisecond
	for {
		g.Step()

		if cfg.Colony.ReportEvery > 0 && g.Tick()%uint64(cfg.Colony.ReportEvery) == 0 {
			g.Report()
		}
		if *maxTicks > 0 && g.Tick() >= uint64(*maxTicks) {
			break
		}
		if interval > 0 {
			time.Sleep(interval)
		}
	}

	slog.Info("simulation finished", "ticks", g.Tick())
}
