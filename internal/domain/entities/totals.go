package entities

// Totals holds the derived invoice amounts. They are ephemeral: recomputed
// from the aggregate on every read and never persisted.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`
}

// ComputeTotals derives subtotal, discount amount and total from the line
// items and discount rate (a percentage).
//
// The rate is trusted as-is: negative or >100 rates are not clamped, so the
// total may be negative. An empty item list yields all zeros.
func ComputeTotals(items []InvoiceItem, discountRate float64) Totals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	discountAmount := subtotal * (discountRate / 100)
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          subtotal - discountAmount,
	}
}
