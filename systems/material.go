package systems

import (
	"fmt"

	"github.com/pthm-cable/outpost/components"
)

// account is one material account: a stock that persists across ticks and a
// deficit counter that resets every tick.
type account struct {
	stock   uint64
	deficit uint64
}

// MaterialLedger is the process-wide stock account, one entry per raw
// resource kind and per commodity kind. Stock is the global stockpile
// pending distribution into storage structures.
type MaterialLedger struct {
	resources   map[components.Resource]*account
	commodities map[components.Commodity]*account
}

// NewMaterialLedger creates accounts for the given rosters, all empty.
func NewMaterialLedger(resources []components.Resource, commodities []components.Commodity) *MaterialLedger {
	l := &MaterialLedger{
		resources:   make(map[components.Resource]*account, len(resources)),
		commodities: make(map[components.Commodity]*account, len(commodities)),
	}
	for _, r := range resources {
		l.resources[r] = &account{}
	}
	for _, c := range commodities {
		l.commodities[c] = &account{}
	}
	return l
}

// Resources returns the resource roster known to the ledger.
func (l *MaterialLedger) Resources() []components.Resource {
	out := make([]components.Resource, 0, len(l.resources))
	for _, r := range components.AllResources() {
		if _, ok := l.resources[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Commodities returns the commodity roster known to the ledger.
func (l *MaterialLedger) Commodities() []components.Commodity {
	out := make([]components.Commodity, 0, len(l.commodities))
	for _, c := range components.AllCommodities() {
		if _, ok := l.commodities[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// resource returns the account for a kind, failing fast on an unknown key.
// An unknown kind means the ledger was built with the wrong roster.
func (l *MaterialLedger) resource(r components.Resource) *account {
	acct, ok := l.resources[r]
	if !ok {
		panic(fmt.Sprintf("no ledger account for resource %s", r))
	}
	return acct
}

func (l *MaterialLedger) commodity(c components.Commodity) *account {
	acct, ok := l.commodities[c]
	if !ok {
		panic(fmt.Sprintf("no ledger account for commodity %s", c))
	}
	return acct
}

// ResourceStock returns the current global stock of a resource.
func (l *MaterialLedger) ResourceStock(r components.Resource) uint64 {
	return l.resource(r).stock
}

// ResourceDeficit returns this tick's unmet demand for a resource.
func (l *MaterialLedger) ResourceDeficit(r components.Resource) uint64 {
	return l.resource(r).deficit
}

// HasResource reports whether stock strictly exceeds amount. The strict
// comparison matches the long-observed engine behavior: demand equal to the
// full stock is reported as unmeetable.
func (l *MaterialLedger) HasResource(r components.Resource, amount uint64) bool {
	return l.resource(r).stock > amount
}

// DepositResource adds to a resource stock and returns the new stock.
func (l *MaterialLedger) DepositResource(r components.Resource, amount uint64) uint64 {
	acct := l.resource(r)
	acct.stock += amount
	return acct.stock
}

// WithdrawResource removes up to amount from a resource stock and returns
// the amount actually removed. Stock never goes negative.
func (l *MaterialLedger) WithdrawResource(r components.Resource, amount uint64) uint64 {
	acct := l.resource(r)
	if amount > acct.stock {
		available := acct.stock
		acct.stock = 0
		return available
	}
	acct.stock -= amount
	return amount
}

// AddResourceDeficit records unmet demand for a resource.
func (l *MaterialLedger) AddResourceDeficit(r components.Resource, amount uint64) {
	l.resource(r).deficit += amount
}

// CommodityStock returns the current global stock of a commodity.
func (l *MaterialLedger) CommodityStock(c components.Commodity) uint64 {
	return l.commodity(c).stock
}

// CommodityDeficit returns this tick's unmet demand for a commodity.
func (l *MaterialLedger) CommodityDeficit(c components.Commodity) uint64 {
	return l.commodity(c).deficit
}

// HasCommodity reports whether stock strictly exceeds amount.
func (l *MaterialLedger) HasCommodity(c components.Commodity, amount uint64) bool {
	return l.commodity(c).stock > amount
}

// DepositCommodity adds to a commodity stock and returns the new stock.
func (l *MaterialLedger) DepositCommodity(c components.Commodity, amount uint64) uint64 {
	acct := l.commodity(c)
	acct.stock += amount
	return acct.stock
}

// WithdrawCommodity removes up to amount from a commodity stock and returns
// the amount actually removed.
func (l *MaterialLedger) WithdrawCommodity(c components.Commodity, amount uint64) uint64 {
	acct := l.commodity(c)
	if amount > acct.stock {
		available := acct.stock
		acct.stock = 0
		return available
	}
	acct.stock -= amount
	return amount
}

// AddCommodityDeficit records unmet demand for a commodity.
func (l *MaterialLedger) AddCommodityDeficit(c components.Commodity, amount uint64) {
	l.commodity(c).deficit += amount
}

// ZeroDeficits resets every deficit counter for a new tick. Stocks persist.
func (l *MaterialLedger) ZeroDeficits() {
	for _, acct := range l.resources {
		acct.deficit = 0
	}
	for _, acct := range l.commodities {
		acct.deficit = 0
	}
}
