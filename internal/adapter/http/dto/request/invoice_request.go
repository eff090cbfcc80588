package request

import (
	"math"
	"strconv"
	"strings"

	"salesease/internal/usecase"
)

// CoercedNumber is a numeric field that accepts JSON numbers or raw strings.
// Anything that fails to parse becomes 0, silently: the form treats numeric
// garbage as an empty magnitude, never as an error.
type CoercedNumber float64

func (n *CoercedNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*n = 0
		return nil
	}
	*n = CoercedNumber(v)
	return nil
}

// InvoiceUpdateRequest edits the top-level invoice scalars. Nil fields are
// untouched; date strings are stored verbatim with no format validation.
type InvoiceUpdateRequest struct {
	InvoiceNumber *string        `json:"invoiceNumber"`
	InvoiceDate   *string        `json:"invoiceDate"`
	DueDate       *string        `json:"dueDate"`
	Notes         *string        `json:"notes"`
	DiscountRate  *CoercedNumber `json:"discountRate"`
}

func (r InvoiceUpdateRequest) ToPatch() usecase.InvoicePatch {
	return usecase.InvoicePatch{
		InvoiceNumber: r.InvoiceNumber,
		InvoiceDate:   r.InvoiceDate,
		DueDate:       r.DueDate,
		Notes:         r.Notes,
		DiscountRate:  toFloatPtr(r.DiscountRate),
	}
}

// ItemUpdateRequest edits a single line item addressed by its path id.
type ItemUpdateRequest struct {
	Name     *string        `json:"name"`
	Quantity *CoercedNumber `json:"quantity"`
	Price    *CoercedNumber `json:"price"`
}

func (r ItemUpdateRequest) ToPatch() usecase.ItemPatch {
	return usecase.ItemPatch{
		Name:     r.Name,
		Quantity: toFloatPtr(r.Quantity),
		Price:    toFloatPtr(r.Price),
	}
}

type BusinessUpdateRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

func (r BusinessUpdateRequest) ToPatch() usecase.BusinessPatch {
	return usecase.BusinessPatch{
		Name:    r.Name,
		Address: r.Address,
		Email:   r.Email,
		Phone:   r.Phone,
	}
}

type ClientUpdateRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
}

func (r ClientUpdateRequest) ToPatch() usecase.ClientPatch {
	return usecase.ClientPatch{
		Name:    r.Name,
		Address: r.Address,
		Email:   r.Email,
	}
}

func toFloatPtr(n *CoercedNumber) *float64 {
	if n == nil {
		return nil
	}
	v := float64(*n)
	return &v
}
