package game

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/pthm-cable/outpost/structures"
)

// logWriter is the destination for report output.
var logWriter io.Writer

// SetLogWriter sets the report output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted report line.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// Report logs a colony summary for the current tick: structure counts,
// the energy pool and every non-empty material account.
func (g *Game) Report() {
	counts := make(map[structures.Group]int)
	for _, p := range g.grid.Placements() {
		counts[p.Structure.Group()]++
	}

	Logf("=== Colony @ Tick %s ===", humanize.Comma(int64(g.tick)))
	Logf("Structures: %d (Base=%d, PowerPlant=%d, Mine=%d, Storage=%d, Factory=%d, Refinery=%d)",
		g.grid.Count(),
		counts[structures.GroupBase], counts[structures.GroupPowerPlant],
		counts[structures.GroupMine], counts[structures.GroupStorage],
		counts[structures.GroupFactory], counts[structures.GroupRefinery])
	Logf("Energy: output=%s stored=%s discharged=%s deficit=%s",
		humanize.Comma(int64(g.energy.Output())),
		humanize.Comma(int64(g.energy.Stored())),
		humanize.Comma(int64(g.energy.Discharged())),
		humanize.Comma(int64(g.energy.Deficit())))

	for _, r := range g.materials.Resources() {
		stock, deficit := g.materials.ResourceStock(r), g.materials.ResourceDeficit(r)
		if stock == 0 && deficit == 0 {
			continue
		}
		Logf("  %-12s stock=%s deficit=%s", r, humanize.Comma(int64(stock)), humanize.Comma(int64(deficit)))
	}
	for _, c := range g.materials.Commodities() {
		stock, deficit := g.materials.CommodityStock(c), g.materials.CommodityDeficit(c)
		if stock == 0 && deficit == 0 {
			continue
		}
		Logf("  %-12s stock=%s deficit=%s", c, humanize.Comma(int64(stock)), humanize.Comma(int64(deficit)))
	}
	Logf("")
}
