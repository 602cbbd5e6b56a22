package billing

import (
	"math"

	"github.com/idilsaglam/partbill/internal/model"
)

// Ledger is the ordered set of line items on the current bill. Each part
// appears at most once and every item present has a positive quantity.
type Ledger struct {
	items []model.LineItem
}

func NewLedger() *Ledger { return &Ledger{} }

func (l *Ledger) find(id int64) int {
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Add puts one more of p on the bill. A part not yet present is appended.
// Quantities saturate at math.MaxInt.
func (l *Ledger) Add(p model.Part) {
	if i := l.find(p.ID); i >= 0 {
		if l.items[i].Quantity < math.MaxInt {
			l.items[i].Quantity++
		}
		return
	}
	l.items = append(l.items, model.LineItem{Part: p, Quantity: 1})
}

// AdjustQuantity adds delta to the item with the given id. An item whose
// quantity drops to zero or below is removed; the rest keep their position.
// Increases saturate at math.MaxInt. Unknown ids are ignored.
func (l *Ledger) AdjustQuantity(id int64, delta int) {
	i := l.find(id)
	if i < 0 {
		return
	}
	q := l.items[i].Quantity + delta
	switch {
	case delta > 0 && q < l.items[i].Quantity:
		q = math.MaxInt
	case delta < 0 && q > l.items[i].Quantity:
		q = 0
	}
	if q <= 0 {
		l.items = append(l.items[:i], l.items[i+1:]...)
		return
	}
	l.items[i].Quantity = q
}

// Quantity returns how many of id are on the bill, 0 if none.
func (l *Ledger) Quantity(id int64) int {
	if i := l.find(id); i >= 0 {
		return l.items[i].Quantity
	}
	return 0
}

// Items returns a copy of the line items in insertion order.
func (l *Ledger) Items() []model.LineItem {
	out := make([]model.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Len() int { return len(l.items) }

func (l *Ledger) Clear() { l.items = nil }
