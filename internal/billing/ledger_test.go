package billing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/partbill/internal/model"
)

var (
	filter = model.Part{ID: 1, Name: "Filter", Price: 100}
	belt   = model.Part{ID: 2, Name: "Belt", Price: 250}
	hose   = model.Part{ID: 3, Name: "Hose", Price: 12.5}
)

func TestLedgerAddTwiceIncrements(t *testing.T) {
	l := NewLedger()
	l.Add(filter)
	l.Add(filter)

	require.Equal(t, []model.LineItem{{Part: filter, Quantity: 2}}, l.Items())
	require.Equal(t, 200.0, Total(l.Items()))
}

func TestLedgerKeepsInsertionOrder(t *testing.T) {
	l := NewLedger()
	l.Add(filter)
	l.Add(belt)
	l.Add(hose)
	l.Add(filter)
	l.AdjustQuantity(belt.ID, 4)

	items := l.Items()
	require.Len(t, items, 3)
	require.Equal(t, filter.ID, items[0].ID)
	require.Equal(t, belt.ID, items[1].ID)
	require.Equal(t, 5, items[1].Quantity)
	require.Equal(t, hose.ID, items[2].ID)
}

func TestLedgerAdjustQuantity(t *testing.T) {
	t.Run("decrement to zero removes", func(t *testing.T) {
		l := NewLedger()
		l.Add(filter)
		l.AdjustQuantity(filter.ID, -1)
		require.Empty(t, l.Items())
	})

	t.Run("decrement past zero removes", func(t *testing.T) {
		l := NewLedger()
		l.Add(filter)
		l.Add(filter)
		l.AdjustQuantity(filter.ID, -2)
		require.Empty(t, l.Items())

		l.Add(belt)
		l.AdjustQuantity(belt.ID, -7)
		require.Zero(t, l.Len())
	})

	t.Run("removal keeps neighbours in place", func(t *testing.T) {
		l := NewLedger()
		l.Add(filter)
		l.Add(belt)
		l.Add(hose)
		l.AdjustQuantity(belt.ID, -1)
		items := l.Items()
		require.Len(t, items, 2)
		require.Equal(t, filter.ID, items[0].ID)
		require.Equal(t, hose.ID, items[1].ID)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		l := NewLedger()
		l.Add(filter)
		l.Add(belt)
		before := l.Items()
		l.AdjustQuantity(99, -1)
		l.AdjustQuantity(99, 3)
		require.Equal(t, before, l.Items())
	})

	t.Run("increase saturates instead of wrapping", func(t *testing.T) {
		l := NewLedger()
		l.Add(filter)
		l.AdjustQuantity(filter.ID, math.MaxInt-1)
		require.Equal(t, math.MaxInt, l.Quantity(filter.ID))

		l.Add(filter)
		l.AdjustQuantity(filter.ID, 5)
		require.Equal(t, math.MaxInt, l.Quantity(filter.ID))
		require.Positive(t, Total(l.Items()))
	})

	t.Run("huge delta on a single item keeps it", func(t *testing.T) {
		l := NewLedger()
		l.Add(filter)
		l.AdjustQuantity(filter.ID, math.MaxInt)
		require.Equal(t, []model.LineItem{{Part: filter, Quantity: math.MaxInt}}, l.Items())
	})

	t.Run("huge negative delta removes", func(t *testing.T) {
		l := NewLedger()
		l.Add(filter)
		l.AdjustQuantity(filter.ID, math.MinInt)
		require.Empty(t, l.Items())

		l.Add(belt)
		l.AdjustQuantity(belt.ID, math.MaxInt-1)
		l.AdjustQuantity(belt.ID, math.MinInt)
		require.Empty(t, l.Items())
	})

	t.Run("arbitrary positive delta", func(t *testing.T) {
		l := NewLedger()
		l.Add(hose)
		l.AdjustQuantity(hose.ID, 9)
		require.Equal(t, 10, l.Quantity(hose.ID))
	})
}

func TestLedgerItemsIsACopy(t *testing.T) {
	l := NewLedger()
	l.Add(filter)
	items := l.Items()
	items[0].Quantity = 42
	require.Equal(t, 1, l.Quantity(filter.ID))
}

func TestLedgerClear(t *testing.T) {
	l := NewLedger()
	l.Add(filter)
	l.Add(belt)
	l.Clear()
	require.Zero(t, l.Len())
	require.Zero(t, l.Quantity(filter.ID))
}

func TestTotal(t *testing.T) {
	require.Zero(t, Total(nil))

	items := []model.LineItem{
		{Part: filter, Quantity: 2},
		{Part: belt, Quantity: 1},
		{Part: hose, Quantity: 3},
	}
	require.InDelta(t, 200+250+37.5, Total(items), 1e-9)
}
