package ui

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/partbill/internal/model"
)

func plain(t *testing.T) {
	t.Helper()
	SetColorForcing(false, true)
	SetTheme("classic")
	t.Cleanup(func() { SetColorForcing(false, false) })
}

func TestMoney(t *testing.T) {
	require.Equal(t, "Rs.100", Money("Rs.", 100))
	require.Equal(t, "Rs.12.5", Money("Rs.", 12.5))
	require.Equal(t, "0", Money("", 0))
	require.Equal(t, "Rs.0.30000000000000004", Money("Rs.", 0.1+0.2))
}

func TestPanelFramesLines(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "abcd"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"┌──────┐",
		"│ ab   │",
		"│ abcd │",
		"└──────┘",
	}, lines)
}

func TestBillLines(t *testing.T) {
	plain(t)
	b := Bill{
		Shop:     "Parts Shop",
		Currency: "Rs.",
		Header: model.BillHeader{
			BillNo: "BILL-1", Customer: "Ram", Address: "Itahari",
			Calendar: model.CalendarAD, ADDate: "2024-03-09",
		},
		Items: []model.LineItem{
			{Part: model.Part{ID: 1, Name: "Filter", Price: 100}, Quantity: 2},
			{Part: model.Part{ID: 2, Name: "Belt", Price: 250}, Quantity: 1},
		},
		Total: 450,
	}
	out := strings.Join(BillLines(io.Discard, b), "\n")

	require.Contains(t, out, "Parts Shop")
	require.Contains(t, out, "Bill No. BILL-1")
	require.Contains(t, out, "Name    : Ram")
	require.Contains(t, out, "Date    : 2024-03-09 (AD)")
	require.Contains(t, out, "S.No Parts  Qty  Price  Total")
	require.Contains(t, out, "1    Filter   2 Rs.100 Rs.200")
	require.Contains(t, out, "Grand Total: Rs.450")
	require.NotContains(t, out, "No items added.")
}

func TestBillLinesEmpty(t *testing.T) {
	plain(t)
	out := strings.Join(BillLines(io.Discard, Bill{Currency: "Rs.", Header: model.BillHeader{Calendar: model.CalendarBS, BSDate: "2080-11-26"}}), "\n")
	require.Contains(t, out, "No items added.")
	require.Contains(t, out, "Grand Total: Rs.0")
	require.Contains(t, out, "2080-11-26 (BS)")
}

func TestCatalogLines(t *testing.T) {
	plain(t)
	lines := CatalogLines(io.Discard, []model.Part{
		{ID: 1, Name: "Filter", Price: 100},
		{ID: 12, Name: "Hydraulic Hose", Price: 1100.5},
	}, "Rs.")
	require.Equal(t, []string{
		" 1  Filter          Rs.100",
		"12  Hydraulic Hose  Rs.1100.5",
	}, lines)

	require.Equal(t, []string{"no parts"}, CatalogLines(io.Discard, nil, "Rs."))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestFailAndOK(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	OK(&buf, "printed")
	Fail(&buf, "bad")
	require.Equal(t, "✔ printed\n✖ bad\n", buf.String())
}

func TestColorFollowsWriter(t *testing.T) {
	SetTheme("classic")
	t.Cleanup(func() { SetColorForcing(false, false) })

	SetColorForcing(false, false)
	var buf bytes.Buffer
	Fail(&buf, "bad")
	require.Equal(t, "✖ bad\n", buf.String())

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, "x", Cw(f, Current().Error, "x"))

	SetColorForcing(true, false)
	buf.Reset()
	OK(&buf, "printed")
	require.Equal(t, Current().Success+"✔ printed"+reset+"\n", buf.String())
	require.Equal(t, Current().Muted+"no parts"+reset, CatalogLines(&buf, nil, "Rs.")[0])

	SetColorForcing(true, true)
	require.Equal(t, "x", Cw(&buf, Current().Error, "x"))
}
