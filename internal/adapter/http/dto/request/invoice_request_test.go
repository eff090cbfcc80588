package request

import (
	"encoding/json"
	"testing"
)

func TestCoercedNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "json number", raw: `7`, want: 7},
		{name: "decimal number", raw: `12.5`, want: 12.5},
		{name: "numeric string", raw: `"12.5"`, want: 12.5},
		{name: "negative string", raw: `"-3"`, want: -3},
		{name: "garbage string", raw: `"abc"`, want: 0},
		{name: "empty string", raw: `""`, want: 0},
		{name: "whitespace string", raw: `"  42  "`, want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n CoercedNumber
			if err := json.Unmarshal([]byte(tt.raw), &n); err != nil {
				t.Fatalf("coercion must never error, got %v", err)
			}
			if float64(n) != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, float64(n))
			}
		})
	}
}

func TestItemUpdateRequest_ToPatch(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		var r ItemUpdateRequest
		if err := json.Unmarshal([]byte(`{"name":"Design"}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		patch := r.ToPatch()
		if patch.Name == nil || *patch.Name != "Design" {
			t.Fatalf("unexpected name: %+v", patch.Name)
		}
		if patch.Quantity != nil || patch.Price != nil {
			t.Fatalf("absent numeric fields must be nil: %+v", patch)
		}
	})

	t.Run("null fields stay nil", func(t *testing.T) {
		var r ItemUpdateRequest
		if err := json.Unmarshal([]byte(`{"quantity":null}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch := r.ToPatch(); patch.Quantity != nil {
			t.Fatalf("null must map to nil, got %+v", patch.Quantity)
		}
	})

	t.Run("coerced fields become zero", func(t *testing.T) {
		var r ItemUpdateRequest
		if err := json.Unmarshal([]byte(`{"quantity":"oops","price":"150"}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		patch := r.ToPatch()
		if patch.Quantity == nil || *patch.Quantity != 0 {
			t.Fatalf("expected zeroed quantity, got %+v", patch.Quantity)
		}
		if patch.Price == nil || *patch.Price != 150 {
			t.Fatalf("expected parsed price, got %+v", patch.Price)
		}
	})
}

func TestInvoiceUpdateRequest_ToPatch(t *testing.T) {
	var r InvoiceUpdateRequest
	payload := `{"invoiceNumber":"INV-900","dueDate":"whenever","discountRate":25}`
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	patch := r.ToPatch()
	if patch.InvoiceNumber == nil || *patch.InvoiceNumber != "INV-900" {
		t.Fatalf("unexpected number: %+v", patch.InvoiceNumber)
	}
	if patch.DueDate == nil || *patch.DueDate != "whenever" {
		t.Fatalf("dates are stored verbatim: %+v", patch.DueDate)
	}
	if patch.DiscountRate == nil || *patch.DiscountRate != 25 {
		t.Fatalf("unexpected rate: %+v", patch.DiscountRate)
	}
	if patch.InvoiceDate != nil || patch.Notes != nil {
		t.Fatalf("absent fields must stay nil: %+v", patch)
	}
}
