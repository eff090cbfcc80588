package response

import (
	"salesease/internal/domain/entities"
	"salesease/internal/usecase"
)

type ItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	LineTotal float64 `json:"line_total"`
}

type InvoiceResponse struct {
	InvoiceNumber string         `json:"invoice_number"`
	InvoiceDate   string         `json:"invoice_date"`
	DueDate       string         `json:"due_date"`
	Items         []ItemResponse `json:"items"`
	Notes         string         `json:"notes"`
	DiscountRate  float64        `json:"discount_rate"`
}

type TotalsResponse struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	Total          float64 `json:"total"`
}

type BusinessResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type ClientResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// SnapshotResponse is the full session state handed to the form and preview
// views, with totals always freshly derived.
type SnapshotResponse struct {
	Invoice  InvoiceResponse  `json:"invoice"`
	Business BusinessResponse `json:"business"`
	Client   ClientResponse   `json:"client"`
	Totals   TotalsResponse   `json:"totals"`
}

// ShareResponse carries the compose handoff link plus the formatted text for
// preview.
type ShareResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

func FromItem(item entities.InvoiceItem) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Price:     item.Price,
		LineTotal: item.LineTotal(),
	}
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]ItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, FromItem(item))
	}
	return InvoiceResponse{
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		Items:         items,
		Notes:         inv.Notes,
		DiscountRate:  inv.DiscountRate,
	}
}

func FromBusinessInfo(b entities.BusinessInfo) BusinessResponse {
	return BusinessResponse{Name: b.Name, Address: b.Address, Email: b.Email, Phone: b.Phone}
}

func FromClientInfo(c entities.ClientInfo) ClientResponse {
	return ClientResponse{Name: c.Name, Address: c.Address, Email: c.Email}
}

func FromSnapshot(s usecase.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		Invoice:  FromInvoice(s.Invoice),
		Business: FromBusinessInfo(s.Business),
		Client:   FromClientInfo(s.Client),
		Totals: TotalsResponse{
			Subtotal:       s.Totals.Subtotal,
			DiscountAmount: s.Totals.DiscountAmount,
			Total:          s.Totals.Total,
		},
	}
}
