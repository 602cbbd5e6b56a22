package billing

import "github.com/idilsaglam/partbill/internal/model"

// Total sums quantity * price over items. No rounding is applied.
func Total(items []model.LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Subtotal()
	}
	return sum
}
