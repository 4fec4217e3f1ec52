package telemetry

import (
	"math"
	"testing"
)

func TestCollectorWindowLifecycle(t *testing.T) {
	c := NewCollector(3)

	if c.Ready() {
		t.Error("empty collector must not be ready")
	}

	c.Record(TickRecord{Tick: 1, EnergyOutput: 10, EnergyDeficit: 0})
	c.Record(TickRecord{Tick: 2, EnergyOutput: 20, EnergyDeficit: 5})
	if c.Ready() {
		t.Error("collector must not be ready before the window fills")
	}

	c.Record(TickRecord{Tick: 3, EnergyOutput: 30, EnergyDeficit: 10})
	if !c.Ready() {
		t.Fatal("collector must be ready after three ticks")
	}

	stats := c.Flush()
	if stats.WindowEndTick != 3 {
		t.Errorf("expected window end 3, got %d", stats.WindowEndTick)
	}
	if stats.Ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", stats.Ticks)
	}
	if math.Abs(stats.OutputMean-20) > 1e-9 {
		t.Errorf("expected output mean 20, got %f", stats.OutputMean)
	}
	if math.Abs(stats.OutputStd-10) > 1e-9 {
		t.Errorf("expected output std 10, got %f", stats.OutputStd)
	}
	if stats.TotalDeficit != 15 {
		t.Errorf("expected total deficit 15, got %d", stats.TotalDeficit)
	}

	// Flushing starts a fresh window.
	if c.Ready() {
		t.Error("collector must reset after flush")
	}
}

func TestCollectorSingleTickWindowHasZeroStd(t *testing.T) {
	c := NewCollector(1)
	c.Record(TickRecord{Tick: 1, EnergyOutput: 42})

	stats := c.Flush()
	if stats.OutputStd != 0 {
		t.Errorf("expected zero std for single-sample window, got %f", stats.OutputStd)
	}
	if math.Abs(stats.OutputMean-42) > 1e-9 {
		t.Errorf("expected mean 42, got %f", stats.OutputMean)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0)
	c.Record(TickRecord{Tick: 1})
	if !c.Ready() {
		t.Error("window size must clamp to at least one tick")
	}
}
