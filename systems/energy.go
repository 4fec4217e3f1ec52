// Package systems implements the two process-wide ledgers and the ordered
// per-tick passes that structures read from and write to.
package systems

import (
	"github.com/pthm-cable/outpost/components"
	"github.com/pthm-cable/outpost/world"
)

// EnergyLedger is the pooled energy account for one tick. Output and stored
// are accumulated once during collection; discharged and deficit are derived
// while structures consume. All fields reset at the start of every tick.
type EnergyLedger struct {
	output     uint64
	stored     uint64
	discharged uint64
	deficit    uint64
}

// NewEnergyLedger creates an empty energy ledger.
func NewEnergyLedger() *EnergyLedger {
	return &EnergyLedger{}
}

// Output returns the unconsumed generator output for this tick.
func (l *EnergyLedger) Output() uint64 { return l.output }

// Stored returns the battery reserve the pool still counts as spendable.
func (l *EnergyLedger) Stored() uint64 { return l.stored }

// Discharged returns how much the pool has borrowed from battery reserves
// and not yet reconciled against real batteries.
func (l *EnergyLedger) Discharged() uint64 { return l.discharged }

// Deficit returns the energy demand that went unmet this tick.
func (l *EnergyLedger) Deficit() uint64 { return l.deficit }

// Combined returns output plus spendable battery reserve.
func (l *EnergyLedger) Combined() uint64 { return l.output + l.stored }

// Zero resets the ledger for a new tick.
func (l *EnergyLedger) Zero() {
	l.output = 0
	l.stored = 0
	l.discharged = 0
	l.deficit = 0
}

// HasEnergy reports whether the pool can cover amount. Callers must check
// this before Withdraw so a failing recipe does not half-drain the pool.
func (l *EnergyLedger) HasEnergy(amount uint64) bool {
	return l.output >= amount || l.Combined() >= amount
}

// Collect accumulates generator output and battery reserves from every
// structure with the matching capability. Battery charge is counted as
// spendable without being removed; the discharge pass reconciles later.
func (l *EnergyLedger) Collect(placements []world.Placement) {
	for _, pl := range placements {
		bp := pl.Structure.Blueprint()
		if bp.Has(components.KindEnergy) {
			l.output += bp.Energy().Out
		}
		if bp.Has(components.KindBattery) {
			l.stored += bp.Battery().Stored
		}
	}
}

// WithdrawOutput drains up to amount from generator output and returns the
// amount obtained.
func (l *EnergyLedger) WithdrawOutput(amount uint64) uint64 {
	if l.output == 0 || amount == 0 {
		return 0
	}

	if l.output < amount {
		available := l.output
		l.output = 0
		return available
	}

	l.output -= amount
	return amount
}

// WithdrawStored drains up to amount from the pooled battery reserve and
// returns the amount obtained. Whatever is drained is owed to real
// batteries and accumulates in discharged.
func (l *EnergyLedger) WithdrawStored(amount uint64) uint64 {
	if l.stored == 0 || amount == 0 {
		return 0
	}

	if l.stored < amount {
		available := l.stored
		l.stored = 0
		l.discharged += available
		return available
	}

	l.stored -= amount
	l.discharged += amount
	return amount
}

// WithdrawDischarge reduces the outstanding battery debt by up to amount
// and returns the amount settled.
func (l *EnergyLedger) WithdrawDischarge(amount uint64) uint64 {
	if l.discharged == 0 || amount == 0 {
		return 0
	}

	if l.discharged < amount {
		settled := l.discharged
		l.discharged = 0
		return settled
	}

	l.discharged -= amount
	return amount
}

// AddDeficit records unmet energy demand.
func (l *EnergyLedger) AddDeficit(amount uint64) {
	l.deficit += amount
}

// Withdraw obtains up to amount of energy, draining output first and the
// battery reserve only for the remainder. Returns the total obtained; a
// partial return means the caller's demand went unmet.
func (l *EnergyLedger) Withdraw(amount uint64) uint64 {
	fromOutput := l.WithdrawOutput(amount)
	if fromOutput >= amount {
		return amount
	}

	fromStored := l.WithdrawStored(amount - fromOutput)
	return fromOutput + fromStored
}

// Discharge reconciles the pool's borrowed reserve against real batteries,
// debiting each battery-capable structure until the debt is settled.
func (l *EnergyLedger) Discharge(placements []world.Placement) {
	for _, pl := range placements {
		if l.discharged == 0 {
			return
		}

		bp := pl.Structure.Blueprint()
		if !bp.Has(components.KindBattery) {
			continue
		}

		battery := bp.Battery()
		if battery.Stored > 0 {
			released := battery.Discharge(l.discharged)
			l.WithdrawDischarge(released)
		}
	}
}

// Charge pushes leftover generator output into free battery capacity.
// Output that finds no free capacity is lost, not carried to the next tick.
func (l *EnergyLedger) Charge(placements []world.Placement) {
	for _, pl := range placements {
		if l.output == 0 {
			return
		}

		bp := pl.Structure.Blueprint()
		if !bp.Has(components.KindBattery) {
			continue
		}

		battery := bp.Battery()
		if free := battery.Free(); free > 0 {
			if got := l.WithdrawOutput(free); got > 0 {
				battery.Charge(got)
			}
		}
	}
}
