package usecase

import (
	"context"
	"errors"
	"log"
	"sync/atomic"

	"salesease/internal/usecase/interfaces"
)

var (
	ErrExportInFlight      = errors.New("an export is already in flight")
	ErrExporterUnavailable = errors.New("document exporter not configured")
	ErrShareUnavailable    = errors.New("share channel not configured")
)

// IDocumentUseCase covers the outward-facing actions on the current invoice:
// rendering it to a downloadable PDF and handing a text summary to a
// message-composition channel.

type IDocumentUseCase interface {
	ExportPDF(ctx context.Context) (filename string, document []byte, err error)
	Share(ctx context.Context) (url string, message string, err error)
}

// DocumentUseCase guards the export with a busy flag: a second export request
// while one is in flight is rejected without starting work, and the flag is
// cleared on success or failure so a retry is always possible. Shares are not
// guarded; each request invokes the channel handoff exactly once.
type DocumentUseCase struct {
	editor    IInvoiceEditorUseCase
	exporter  interfaces.IDocumentExporter
	channel   interfaces.IShareChannel
	exporting atomic.Bool
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(editor IInvoiceEditorUseCase, exporter interfaces.IDocumentExporter, channel interfaces.IShareChannel) *DocumentUseCase {
	return &DocumentUseCase{editor: editor, exporter: exporter, channel: channel}
}

func (u *DocumentUseCase) ExportPDF(ctx context.Context) (string, []byte, error) {
	if u.exporter == nil {
		return "", nil, ErrExporterUnavailable
	}
	if !u.exporting.CompareAndSwap(false, true) {
		log.Printf("[document][usecase] export rejected: already in flight")
		return "", nil, ErrExportInFlight
	}
	defer u.exporting.Store(false)

	snap := u.editor.Snapshot(ctx)
	log.Printf("[document][usecase] export start invoice_number=%s items=%d", snap.Invoice.InvoiceNumber, len(snap.Invoice.Items))

	filename, document, err := u.exporter.Export(ctx, snap.Invoice, snap.Business, snap.Client, snap.Totals)
	if err != nil {
		log.Printf("[document][usecase] export failed invoice_number=%s err=%v", snap.Invoice.InvoiceNumber, err)
		return "", nil, err
	}
	log.Printf("[document][usecase] export success filename=%s bytes=%d", filename, len(document))
	return filename, document, nil
}

func (u *DocumentUseCase) Share(ctx context.Context) (string, string, error) {
	if u.channel == nil {
		return "", "", ErrShareUnavailable
	}

	snap := u.editor.Snapshot(ctx)
	message := FormatShareMessage(snap.Invoice, snap.Business, snap.Client, snap.Totals)

	url, err := u.channel.Open(ctx, message)
	if err != nil {
		log.Printf("[document][usecase] share handoff failed invoice_number=%s err=%v", snap.Invoice.InvoiceNumber, err)
		return "", "", err
	}
	log.Printf("[document][usecase] share handoff ready invoice_number=%s message_len=%d", snap.Invoice.InvoiceNumber, len(message))
	return url, message, nil
}
