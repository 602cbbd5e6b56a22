package model

// Part is a catalog entry. Parts are read-only once loaded.
type Part struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// LineItem is a part on the bill together with how many of it were sold.
type LineItem struct {
	Part
	Quantity int `json:"quantity"`
}

// Subtotal is quantity times unit price, unrounded.
func (li LineItem) Subtotal() float64 {
	return float64(li.Quantity) * li.Price
}
