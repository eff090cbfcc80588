package entities

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// InvoiceNumberPrefix is the fixed prefix used for generated invoice numbers.
const InvoiceNumberPrefix = "INV-"

// InvoiceItem is a single billable line on an invoice.
//
// Quantity and Price are unclamped magnitudes: negative values pass through
// untouched and non-numeric input is coerced to 0 at the edge, never here.
type InvoiceItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// LineTotal returns quantity x price for this item.
func (i InvoiceItem) LineTotal() float64 {
	return i.Quantity * i.Price
}

// Invoice is the editable invoice aggregate.
//
// Dates are opaque YYYY-MM-DD strings; no format validation is performed and
// downstream consumers must not parse them. Items keep entry order, which is
// significant for presentation only.
type Invoice struct {
	InvoiceNumber string        `json:"invoiceNumber"`
	InvoiceDate   string        `json:"invoiceDate"`
	DueDate       string        `json:"dueDate"`
	Items         []InvoiceItem `json:"items"`
	Notes         string        `json:"notes"`
	DiscountRate  float64       `json:"discountRate"`
}

// NewInvoiceItem returns a blank line item with a fresh unique id,
// quantity 1 and price 0.
func NewInvoiceItem() InvoiceItem {
	return InvoiceItem{
		ID:       uuid.NewString(),
		Quantity: 1,
		Price:    0,
	}
}

// DefaultInvoice returns the template invoice used when nothing has been
// persisted yet: today's dates and a single seed item.
func DefaultInvoice() Invoice {
	return Invoice{
		InvoiceNumber: InvoiceNumberPrefix + "001",
		InvoiceDate:   TodayDate(),
		DueDate:       TodayDate(),
		Items: []InvoiceItem{
			{ID: uuid.NewString(), Name: "Web design services", Quantity: 1, Price: 1500},
		},
		Notes:        "Thank you for your business!",
		DiscountRate: 0,
	}
}

// RandomInvoiceNumber returns a freshly randomized invoice number with the
// fixed prefix and a 3-digit suffix (100-999). Collisions are acceptable:
// the number is a low-stakes, user-editable identifier.
func RandomInvoiceNumber() string {
	return fmt.Sprintf("%s%03d", InvoiceNumberPrefix, rand.Intn(900)+100)
}

// TodayDate returns the current local date as YYYY-MM-DD.
func TodayDate() string {
	return time.Now().Format("2006-01-02")
}
