package systems

import (
	"testing"

	"github.com/pthm-cable/outpost/config"
	"github.com/pthm-cable/outpost/structures"
	"github.com/pthm-cable/outpost/world"
)

func init() {
	config.MustInit("")
}

// place builds a placement at the given coordinate.
func place(x, y int, s structures.Structure) world.Placement {
	return world.Placement{Pos: world.Position{X: x, Y: y}, Structure: s}
}

func TestCollectAccumulatesOutputAndStored(t *testing.T) {
	base := structures.NewBase()
	base.Blueprint().Battery().Charge(300)
	plant := structures.NewPowerPlant()

	ledger := NewEnergyLedger()
	ledger.Collect([]world.Placement{place(0, 0, base), place(1, 0, plant)})

	wantOutput := base.Blueprint().EnergyOut() + plant.Blueprint().EnergyOut()
	if ledger.Output() != wantOutput {
		t.Errorf("expected output %d, got %d", wantOutput, ledger.Output())
	}
	if ledger.Stored() != 300 {
		t.Errorf("expected stored 300, got %d", ledger.Stored())
	}
	// Collection counts battery reserves without draining the battery.
	if base.Blueprint().Battery().Stored != 300 {
		t.Errorf("battery must be untouched by collect, got %d", base.Blueprint().Battery().Stored)
	}
}

func TestCollectIgnoresNonEnergyStructures(t *testing.T) {
	ledger := NewEnergyLedger()
	ledger.Collect([]world.Placement{place(0, 0, structures.NewStorage())})

	if ledger.Output() != 0 || ledger.Stored() != 0 {
		t.Error("storage must contribute no energy")
	}
}

func TestWithdrawDrainsOutputBeforeStored(t *testing.T) {
	ledger := EnergyLedger{output: 100, stored: 50}

	got := ledger.Withdraw(80)
	if got != 80 {
		t.Errorf("expected 80 withdrawn, got %d", got)
	}
	if ledger.Output() != 20 {
		t.Errorf("expected output 20, got %d", ledger.Output())
	}
	if ledger.Stored() != 50 {
		t.Errorf("stored must be untouched when output suffices, got %d", ledger.Stored())
	}
	if ledger.Discharged() != 0 {
		t.Errorf("expected no discharge, got %d", ledger.Discharged())
	}
}

func TestWithdrawSpillsIntoStored(t *testing.T) {
	ledger := EnergyLedger{output: 30, stored: 100}

	got := ledger.Withdraw(80)
	if got != 80 {
		t.Errorf("expected 80 withdrawn, got %d", got)
	}
	if ledger.Output() != 0 {
		t.Errorf("expected output drained, got %d", ledger.Output())
	}
	if ledger.Stored() != 50 {
		t.Errorf("expected stored 50, got %d", ledger.Stored())
	}
	// The 50 drained from reserve is owed to real batteries.
	if ledger.Discharged() != 50 {
		t.Errorf("expected discharged 50, got %d", ledger.Discharged())
	}
}

func TestWithdrawPartialReturn(t *testing.T) {
	ledger := EnergyLedger{output: 10, stored: 5}

	got := ledger.Withdraw(100)
	if got != 15 {
		t.Errorf("expected partial return 15, got %d", got)
	}
	if ledger.Output() != 0 || ledger.Stored() != 0 {
		t.Error("expected pool fully drained")
	}
}

func TestHasEnergyBoundaries(t *testing.T) {
	ledger := EnergyLedger{output: 50, stored: 25}

	if !ledger.HasEnergy(50) {
		t.Error("demand equal to output must be satisfiable")
	}
	if !ledger.HasEnergy(75) {
		t.Error("demand equal to combined pool must be satisfiable")
	}
	if ledger.HasEnergy(76) {
		t.Error("demand above combined pool must not be satisfiable")
	}
}

func TestDischargeReconcilesBatteries(t *testing.T) {
	base := structures.NewBase()
	base.Blueprint().Battery().Charge(200)

	ledger := EnergyLedger{discharged: 150}
	ledger.Discharge([]world.Placement{place(0, 0, base)})

	if ledger.Discharged() != 0 {
		t.Errorf("expected debt settled, got %d", ledger.Discharged())
	}
	if got := base.Blueprint().Battery().Stored; got != 50 {
		t.Errorf("expected battery 50, got %d", got)
	}
}

func TestDischargeSpreadsAcrossBatteries(t *testing.T) {
	a := structures.NewBase()
	a.Blueprint().Battery().Charge(40)
	b := structures.NewBase()
	b.Blueprint().Battery().Charge(100)

	ledger := EnergyLedger{discharged: 90}
	ledger.Discharge([]world.Placement{place(0, 0, a), place(1, 0, b)})

	if a.Blueprint().Battery().Stored != 0 {
		t.Errorf("expected first battery drained, got %d", a.Blueprint().Battery().Stored)
	}
	if b.Blueprint().Battery().Stored != 50 {
		t.Errorf("expected second battery 50, got %d", b.Blueprint().Battery().Stored)
	}
	if ledger.Discharged() != 0 {
		t.Errorf("expected debt settled, got %d", ledger.Discharged())
	}
}

func TestChargeMovesOutputIntoBatteries(t *testing.T) {
	base := structures.NewBase()

	ledger := EnergyLedger{output: 75}
	ledger.Charge([]world.Placement{place(0, 0, base)})

	if got := base.Blueprint().Battery().Stored; got != 75 {
		t.Errorf("expected battery 75, got %d", got)
	}
	if ledger.Output() != 0 {
		t.Errorf("expected output consumed, got %d", ledger.Output())
	}
}

func TestChargeStopsAtFullBatteries(t *testing.T) {
	base := structures.NewBase()
	capacity := base.Blueprint().Battery().Capacity
	base.Blueprint().Battery().Charge(capacity)

	ledger := EnergyLedger{output: 60}
	ledger.Charge([]world.Placement{place(0, 0, base)})

	// No free capacity anywhere: the leftover stays and is lost at reset.
	if ledger.Output() != 60 {
		t.Errorf("expected output untouched, got %d", ledger.Output())
	}
	if got := base.Blueprint().Battery().Stored; got != capacity {
		t.Errorf("expected battery still full, got %d", got)
	}
}

func TestZeroResetsAllFields(t *testing.T) {
	ledger := EnergyLedger{output: 1, stored: 2, discharged: 3, deficit: 4}
	ledger.Zero()

	if ledger.Output() != 0 || ledger.Stored() != 0 || ledger.Discharged() != 0 || ledger.Deficit() != 0 {
		t.Error("expected all fields zeroed")
	}
}
