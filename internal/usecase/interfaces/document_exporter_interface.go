package interfaces

import (
	"context"

	"salesease/internal/domain/entities"
)

// IDocumentExporter renders the current invoice into a downloadable document.
//
// The exporter must report failure distinctly (renderer error, encoding
// error) and must never mutate the records it is given; the editing session
// stays usable after either outcome. The returned filename is derived from
// the invoice number.

type IDocumentExporter interface {
	Export(ctx context.Context, invoice entities.Invoice, business entities.BusinessInfo, client entities.ClientInfo, totals entities.Totals) (filename string, document []byte, err error)
}
