package export

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"salesease/internal/domain/entities"
	"salesease/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

// Page configuration is fixed and not user-exposed.
const (
	pageUnit   = "in"
	pageFormat = "Letter"
	pageMargin = 0.5

	// fontScale is the fixed upscaling factor applied to every font size so
	// the rendered document stays legible.
	fontScale = 1.5

	currency = "EGP"
)

// PDFExporter renders the invoice preview into a paginated Letter PDF.
type PDFExporter struct{}

var _ interfaces.IDocumentExporter = (*PDFExporter)(nil)

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

func (e *PDFExporter) Export(ctx context.Context, invoice entities.Invoice, business entities.BusinessInfo, client entities.ClientInfo, totals entities.Totals) (string, []byte, error) {
	pdf := gofpdf.New("P", pageUnit, pageFormat, "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	setFont := func(style string, size float64) {
		pdf.SetFont("Arial", style, size*fontScale)
	}

	// Issuer header.
	setFont("B", 14)
	pdf.CellFormat(0, 0.35, business.Name, "", 1, "L", false, 0, "")
	setFont("", 8)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 0.18, business.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 0.18, business.Email, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 0.18, business.Phone, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(0.2)

	// Invoice header fields.
	setFont("B", 16)
	pdf.CellFormat(0, 0.4, "INVOICE", "", 1, "R", false, 0, "")
	setFont("", 9)
	pdf.CellFormat(0, 0.2, "Invoice No: "+invoice.InvoiceNumber, "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 0.2, "Date: "+invoice.InvoiceDate, "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 0.2, "Due Date: "+invoice.DueDate, "", 1, "R", false, 0, "")
	pdf.Ln(0.2)

	// Recipient block.
	setFont("B", 9)
	pdf.CellFormat(0, 0.2, "Bill To:", "", 1, "L", false, 0, "")
	setFont("", 9)
	pdf.CellFormat(0, 0.2, client.Name, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 0.2, client.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 0.2, client.Email, "", 1, "L", false, 0, "")
	pdf.Ln(0.25)

	// Line item table.
	const (
		colName  = 3.9
		colQty   = 0.9
		colPrice = 1.3
		colTotal = 1.4
		rowH     = 0.28
	)
	setFont("B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(colName, rowH, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colQty, rowH, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colPrice, rowH, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, rowH, "Amount", "1", 1, "R", true, 0, "")

	setFont("", 9)
	for _, item := range invoice.Items {
		name := item.Name
		if name == "" {
			name = "Item"
		}
		pdf.CellFormat(colName, rowH, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, rowH, fmt.Sprintf("%g", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colPrice, rowH, fmt.Sprintf("%s %.2f", currency, item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, rowH, fmt.Sprintf("%s %.2f", currency, item.LineTotal()), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(0.15)

	// Totals block, right-aligned.
	labelW := colName + colQty
	setFont("", 9)
	pdf.CellFormat(labelW, rowH, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(colPrice, rowH, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, rowH, fmt.Sprintf("%s %.2f", currency, totals.Subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, rowH, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(colPrice, rowH, fmt.Sprintf("Discount (%g%%):", invoice.DiscountRate), "", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, rowH, fmt.Sprintf("-%s %.2f", currency, totals.DiscountAmount), "", 1, "R", false, 0, "")
	setFont("B", 10)
	pdf.CellFormat(labelW, rowH, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(colPrice, rowH, "Total:", "T", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, rowH, fmt.Sprintf("%s %.2f", currency, totals.Total), "T", 1, "R", false, 0, "")
	pdf.Ln(0.25)

	// Notes.
	if invoice.Notes != "" {
		setFont("B", 9)
		pdf.CellFormat(0, 0.2, "Notes:", "", 1, "L", false, 0, "")
		setFont("", 9)
		pdf.MultiCell(0, 0.2, invoice.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("[export][pdf] render failed invoice_number=%s err=%v", invoice.InvoiceNumber, err)
		return "", nil, fmt.Errorf("render pdf: %w", err)
	}

	filename := fmt.Sprintf("invoice-%s.pdf", invoice.InvoiceNumber)
	return filename, buf.Bytes(), nil
}
