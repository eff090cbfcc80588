package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"salesease/internal/domain/entities"
	mock_interfaces "salesease/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// editorForDocs builds a session backed by an empty store so the document
// layer always sees the template records.
func editorForDocs(ctrl *gomock.Controller) *InvoiceEditorUseCase {
	store := mock_interfaces.NewMockIRecordStore(ctrl)
	store.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)
	store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return NewInvoiceEditorUseCase(context.Background(), store)
}

func TestDocumentUseCase_ExportPDF(t *testing.T) {
	t.Run("delegates to exporter with current snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		editor := editorForDocs(ctrl)
		exporter := mock_interfaces.NewMockIDocumentExporter(ctrl)

		exporter.EXPECT().
			Export(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv entities.Invoice, _ entities.BusinessInfo, _ entities.ClientInfo, totals entities.Totals) (string, []byte, error) {
				if inv.InvoiceNumber != "INV-001" {
					t.Fatalf("unexpected invoice in export: %+v", inv)
				}
				want := entities.ComputeTotals(inv.Items, inv.DiscountRate)
				if totals != want {
					t.Fatalf("totals passed to exporter do not match invoice: %+v vs %+v", totals, want)
				}
				return "invoice-INV-001.pdf", []byte("%PDF-1.4 stub"), nil
			})

		uc := NewDocumentUseCase(editor, exporter, nil)
		filename, document, err := uc.ExportPDF(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filename != "invoice-INV-001.pdf" {
			t.Fatalf("unexpected filename: %q", filename)
		}
		if !strings.HasPrefix(string(document), "%PDF") {
			t.Fatalf("unexpected document bytes: %q", document)
		}
	})

	t.Run("rejects a second export while one is in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		editor := editorForDocs(ctrl)
		exporter := mock_interfaces.NewMockIDocumentExporter(ctrl)

		uc := NewDocumentUseCase(editor, exporter, nil)
		exporter.EXPECT().
			Export(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ entities.Invoice, _ entities.BusinessInfo, _ entities.ClientInfo, _ entities.Totals) (string, []byte, error) {
				// Re-enter while the first export is still running.
				if _, _, err := uc.ExportPDF(ctx); !errors.Is(err, ErrExportInFlight) {
					t.Fatalf("expected ErrExportInFlight, got %v", err)
				}
				return "invoice-INV-001.pdf", []byte("%PDF"), nil
			})

		if _, _, err := uc.ExportPDF(context.Background()); err != nil {
			t.Fatalf("outer export must succeed, got %v", err)
		}
	})

	t.Run("busy flag is cleared after failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		editor := editorForDocs(ctrl)
		exporter := mock_interfaces.NewMockIDocumentExporter(ctrl)

		boom := errors.New("render failed")
		gomock.InOrder(
			exporter.EXPECT().
				Export(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return("", nil, boom),
			exporter.EXPECT().
				Export(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return("invoice-INV-001.pdf", []byte("%PDF"), nil),
		)

		uc := NewDocumentUseCase(editor, exporter, nil)
		if _, _, err := uc.ExportPDF(context.Background()); !errors.Is(err, boom) {
			t.Fatalf("expected exporter error, got %v", err)
		}
		if _, _, err := uc.ExportPDF(context.Background()); err != nil {
			t.Fatalf("retry after failure must succeed, got %v", err)
		}
	})

	t.Run("missing exporter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewDocumentUseCase(editorForDocs(ctrl), nil, nil)
		if _, _, err := uc.ExportPDF(context.Background()); !errors.Is(err, ErrExporterUnavailable) {
			t.Fatalf("expected ErrExporterUnavailable, got %v", err)
		}
	})
}

func TestDocumentUseCase_Share(t *testing.T) {
	t.Run("hands formatted message to channel once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		editor := editorForDocs(ctrl)
		channel := mock_interfaces.NewMockIShareChannel(ctrl)

		var received string
		channel.EXPECT().
			Open(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message string) (string, error) {
				received = message
				return "https://wa.me/?text=stub", nil
			}).
			Times(1)

		uc := NewDocumentUseCase(editor, nil, channel)
		url, message, err := uc.Share(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://wa.me/?text=stub" {
			t.Fatalf("unexpected url: %q", url)
		}
		if message != received {
			t.Fatalf("returned message differs from handed-off message")
		}
		if !strings.HasPrefix(message, "*Invoice from Your Company LLC*") {
			t.Fatalf("unexpected message header: %q", message)
		}
	})

	t.Run("channel failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		editor := editorForDocs(ctrl)
		channel := mock_interfaces.NewMockIShareChannel(ctrl)

		boom := errors.New("compose rejected")
		channel.EXPECT().Open(gomock.Any(), gomock.Any()).Return("", boom)

		uc := NewDocumentUseCase(editor, nil, channel)
		if _, _, err := uc.Share(context.Background()); !errors.Is(err, boom) {
			t.Fatalf("expected channel error, got %v", err)
		}
	})

	t.Run("missing channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewDocumentUseCase(editorForDocs(ctrl), nil, nil)
		if _, _, err := uc.Share(context.Background()); !errors.Is(err, ErrShareUnavailable) {
			t.Fatalf("expected ErrShareUnavailable, got %v", err)
		}
	})
}
