package telemetry

// Collector accumulates tick records and produces WindowStats once per
// stats window.
type Collector struct {
	windowTicks int

	windowEnd    uint64
	outputs      []float64
	deficits     []float64
	discharges   []float64
	totalDeficit uint64
}

// NewCollector creates a collector aggregating over windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: windowTicks,
		outputs:     make([]float64, 0, windowTicks),
		deficits:    make([]float64, 0, windowTicks),
		discharges:  make([]float64, 0, windowTicks),
	}
}

// Record adds one tick's snapshot to the current window.
func (c *Collector) Record(rec TickRecord) {
	c.windowEnd = rec.Tick
	c.outputs = append(c.outputs, float64(rec.EnergyOutput))
	c.deficits = append(c.deficits, float64(rec.EnergyDeficit))
	c.discharges = append(c.discharges, float64(rec.EnergyDischarged))
	c.totalDeficit += rec.EnergyDeficit
}

// Ready reports whether a full window has accumulated.
func (c *Collector) Ready() bool {
	return len(c.outputs) >= c.windowTicks
}

// Flush aggregates the current window into WindowStats and starts a new
// window.
func (c *Collector) Flush() WindowStats {
	outMean, outStd := meanStd(c.outputs)
	defMean, defStd := meanStd(c.deficits)
	disMean, _ := meanStd(c.discharges)

	stats := WindowStats{
		WindowEndTick: c.windowEnd,
		Ticks:         len(c.outputs),
		OutputMean:    outMean,
		OutputStd:     outStd,
		DeficitMean:   defMean,
		DeficitStd:    defStd,
		DischargeMean: disMean,
		TotalDeficit:  c.totalDeficit,
	}

	c.outputs = c.outputs[:0]
	c.deficits = c.deficits[:0]
	c.discharges = c.discharges[:0]
	c.totalDeficit = 0

	return stats
}
