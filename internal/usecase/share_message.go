package usecase

import (
	"fmt"
	"strings"

	"salesease/internal/domain/entities"
)

const shareCurrency = "EGP"

// FormatShareMessage renders the plain-text invoice summary handed to the
// share channel: header, item lines with computed line totals, totals block
// and notes. Asterisks are the channel's bold markers.
func FormatShareMessage(invoice entities.Invoice, business entities.BusinessInfo, client entities.ClientInfo, totals entities.Totals) string {
	businessName := business.Name
	if businessName == "" {
		businessName = "Your Company"
	}
	invoiceNumber := invoice.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = entities.InvoiceNumberPrefix + "001"
	}
	clientName := client.Name
	if clientName == "" {
		clientName = "Client Name"
	}
	notes := invoice.Notes
	if notes == "" {
		notes = "Thank you for your business."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Invoice from %s*\n\n", businessName)
	fmt.Fprintf(&b, "*Invoice No:* %s\n", invoiceNumber)
	fmt.Fprintf(&b, "*Date:* %s\n", invoice.InvoiceDate)
	fmt.Fprintf(&b, "*Due Date:* %s\n\n", invoice.DueDate)
	fmt.Fprintf(&b, "*To:* %s\n\n", clientName)
	b.WriteString("---\n")
	b.WriteString("*Items:*\n")
	if len(invoice.Items) == 0 {
		b.WriteString("_No items yet..._\n")
	} else {
		for _, item := range invoice.Items {
			name := item.Name
			if name == "" {
				name = "Item"
			}
			fmt.Fprintf(&b, "- %s: %g × %s %.2f = *%s %.2f*\n",
				name, item.Quantity, shareCurrency, item.Price, shareCurrency, item.LineTotal())
		}
	}
	b.WriteString("---\n")
	fmt.Fprintf(&b, "*Subtotal:* %s %.2f\n", shareCurrency, totals.Subtotal)
	fmt.Fprintf(&b, "*Discount (%g%%):* -%s %.2f\n", invoice.DiscountRate, shareCurrency, totals.DiscountAmount)
	fmt.Fprintf(&b, "*Total:* *%s %.2f*\n\n", shareCurrency, totals.Total)
	b.WriteString("---\n")
	b.WriteString("*Notes:*\n")
	b.WriteString(notes)

	return b.String()
}
