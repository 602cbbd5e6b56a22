package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/partbill/internal/model"
)

const maxNameWidth = 40

// Bill is everything printed on a finished bill.
type Bill struct {
	Shop     string
	Currency string
	Header   model.BillHeader
	Items    []model.LineItem
	Total    float64
}

// BillLines lays out a bill as panel lines for w: shop header, customer
// block, the item table and the grand total.
func BillLines(w io.Writer, b Bill) []string {
	t := Current()
	h := b.Header

	lines := []string{
		Cw(w, t.Title, b.Shop),
		Cw(w, t.Muted, "Bill No. ") + h.BillNo,
		"",
		"Name    : " + h.Customer,
		"Address : " + h.Address,
		fmt.Sprintf("Date    : %s (%s)", h.Date(), h.Calendar),
		"",
	}

	header := []string{"S.No", "Parts", "Qty", "Price", "Total"}
	rows := make([][]string, 0, len(b.Items))
	for i, it := range b.Items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			truncate(it.Name, maxNameWidth),
			strconv.Itoa(it.Quantity),
			Money(b.Currency, it.Price),
			Money(b.Currency, it.Subtotal()),
		})
	}

	widths := make([]int, len(header))
	for c, title := range header {
		widths[c] = len(title)
		for _, r := range rows {
			widths[c] = max(widths[c], lipgloss.Width(r[c]))
		}
	}
	tableWidth := len(widths) - 1
	for _, wd := range widths {
		tableWidth += wd
	}

	lines = append(lines, Cw(w, t.Accent, formatRow(header, widths)))
	lines = append(lines, Cw(w, t.Muted, strings.Repeat(t.Rule, tableWidth)))
	if len(rows) == 0 {
		lines = append(lines, Cw(w, t.Muted, "No items added."))
	}
	for _, r := range rows {
		lines = append(lines, formatRow(r, widths))
	}
	lines = append(lines, Cw(w, t.Muted, strings.Repeat(t.Rule, tableWidth)))

	total := "Grand Total: " + Money(b.Currency, b.Total)
	lines = append(lines, Cw(w, t.Total, padLeft(total, tableWidth)))
	return lines
}

// formatRow left-aligns the first two columns and right-aligns the numbers.
func formatRow(cells []string, widths []int) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if i < 2 {
			out[i] = padRight(c, widths[i])
		} else {
			out[i] = padLeft(c, widths[i])
		}
	}
	return strings.Join(out, " ")
}

// CatalogLines lists parts one per line with id and price, colored for w.
func CatalogLines(w io.Writer, parts []model.Part, currency string) []string {
	t := Current()
	if len(parts) == 0 {
		return []string{Cw(w, t.Muted, "no parts")}
	}
	idw, namew := 0, 0
	for _, p := range parts {
		idw = max(idw, len(strconv.FormatInt(p.ID, 10)))
		namew = max(namew, lipgloss.Width(truncate(p.Name, maxNameWidth)))
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		id := padLeft(strconv.FormatInt(p.ID, 10), idw)
		out = append(out, fmt.Sprintf("%s  %s  %s",
			Cw(w, t.Muted, id), padRight(truncate(p.Name, maxNameWidth), namew), Money(currency, p.Price)))
	}
	return out
}
