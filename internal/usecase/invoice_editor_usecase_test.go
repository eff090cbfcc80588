package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"testing"

	"salesease/internal/domain/entities"
	"salesease/internal/usecase/interfaces"
	mock_interfaces "salesease/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// emptyStore expects the three startup loads and finds nothing persisted.
func emptyStore(ctrl *gomock.Controller) *mock_interfaces.MockIRecordStore {
	store := mock_interfaces.NewMockIRecordStore(ctrl)
	store.EXPECT().Load(gomock.Any(), interfaces.RecordKeyInvoice).Return(nil, nil)
	store.EXPECT().Load(gomock.Any(), interfaces.RecordKeyBusiness).Return(nil, nil)
	store.EXPECT().Load(gomock.Any(), interfaces.RecordKeyClient).Return(nil, nil)
	return store
}

func TestInvoiceEditorUseCase_Rehydration(t *testing.T) {
	t.Run("empty store falls back to templates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewInvoiceEditorUseCase(context.Background(), emptyStore(ctrl))

		snap := uc.Snapshot(context.Background())
		if snap.Invoice.InvoiceNumber != "INV-001" {
			t.Fatalf("expected template invoice, got %+v", snap.Invoice)
		}
		if snap.Business != entities.DefaultBusinessInfo() {
			t.Fatalf("expected template business info, got %+v", snap.Business)
		}
		if snap.Client != entities.DefaultClientInfo() {
			t.Fatalf("expected template client info, got %+v", snap.Client)
		}
		if snap.Totals.Subtotal != 1500 || snap.Totals.Total != 1500 {
			t.Fatalf("expected seed item totals, got %+v", snap.Totals)
		}
	})

	t.Run("malformed stored invoice falls back without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		store.EXPECT().Load(gomock.Any(), interfaces.RecordKeyInvoice).Return(json.RawMessage(`{not valid json`), nil)
		store.EXPECT().Load(gomock.Any(), interfaces.RecordKeyBusiness).Return(nil, nil)
		store.EXPECT().Load(gomock.Any(), interfaces.RecordKeyClient).Return(nil, nil)

		uc := NewInvoiceEditorUseCase(context.Background(), store)
		snap := uc.Snapshot(context.Background())
		if snap.Invoice.InvoiceNumber != "INV-001" || len(snap.Invoice.Items) != 1 {
			t.Fatalf("expected template fallback, got %+v", snap.Invoice)
		}
	})

	t.Run("store read failure falls back without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		store.EXPECT().Load(gomock.Any(), interfaces.RecordKeyInvoice).Return(nil, errors.New("db"))
		store.EXPECT().Load(gomock.Any(), interfaces.RecordKeyBusiness).Return(nil, errors.New("db"))
		store.EXPECT().Load(gomock.Any(), interfaces.RecordKeyClient).Return(nil, errors.New("db"))

		uc := NewInvoiceEditorUseCase(context.Background(), store)
		snap := uc.Snapshot(context.Background())
		if snap.Invoice.InvoiceNumber != "INV-001" {
			t.Fatalf("expected template fallback, got %+v", snap.Invoice)
		}
	})

	t.Run("persisted records rehydrate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stored := entities.Invoice{
			InvoiceNumber: "INV-777",
			InvoiceDate:   "2026-08-01",
			DueDate:       "2026-09-01",
			Items:         []entities.InvoiceItem{{ID: "it-1", Name: "Consulting", Quantity: 4, Price: 250}},
			Notes:         "net 30",
			DiscountRate:  5,
		}
		raw, _ := json.Marshal(stored)

		store := mock_interfaces.NewMockIRecordStore(ctrl)
		store.EXPECT().Load(gomock.Any(), interfaces.RecordKeyInvoice).Return(json.RawMessage(raw), nil)
		store.EXPECT().Load(gomock.Any(), interfaces.RecordKeyBusiness).Return(nil, nil)
		store.EXPECT().Load(gomock.Any(), interfaces.RecordKeyClient).Return(nil, nil)

		uc := NewInvoiceEditorUseCase(context.Background(), store)
		snap := uc.Snapshot(context.Background())
		if !reflect.DeepEqual(snap.Invoice, stored) {
			t.Fatalf("expected stored invoice, got %+v", snap.Invoice)
		}
		if snap.Totals.Subtotal != 1000 || snap.Totals.DiscountAmount != 50 || snap.Totals.Total != 950 {
			t.Fatalf("unexpected totals: %+v", snap.Totals)
		}
	})
}

func TestInvoiceEditorUseCase_Items(t *testing.T) {
	t.Run("add appends and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := emptyStore(ctrl)
		uc := NewInvoiceEditorUseCase(context.Background(), store)

		store.EXPECT().Save(gomock.Any(), interfaces.RecordKeyInvoice, gomock.Any()).Return(nil)

		item := uc.AddItem(context.Background())
		if item.ID == "" || item.Name != "" || item.Quantity != 1 || item.Price != 0 {
			t.Fatalf("unexpected new item: %+v", item)
		}

		snap := uc.Snapshot(context.Background())
		if len(snap.Invoice.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(snap.Invoice.Items))
		}
		if snap.Invoice.Items[1].ID != item.ID {
			t.Fatalf("expected append at end")
		}
		if snap.Invoice.Items[0].ID == item.ID {
			t.Fatalf("expected a fresh unique id")
		}
	})

	t.Run("add then remove round-trips", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := emptyStore(ctrl)
		uc := NewInvoiceEditorUseCase(context.Background(), store)
		store.EXPECT().Save(gomock.Any(), interfaces.RecordKeyInvoice, gomock.Any()).Return(nil).Times(2)

		before := uc.Snapshot(context.Background()).Invoice.Items
		item := uc.AddItem(context.Background())
		after := uc.RemoveItem(context.Background(), item.ID)

		if !reflect.DeepEqual(after.Items, before) {
			t.Fatalf("expected pre-add list, got %+v", after.Items)
		}
	})

	t.Run("update patches matching item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := emptyStore(ctrl)
		uc := NewInvoiceEditorUseCase(context.Background(), store)
		store.EXPECT().Save(gomock.Any(), interfaces.RecordKeyInvoice, gomock.Any()).Return(nil)

		id := uc.Snapshot(context.Background()).Invoice.Items[0].ID
		name := "Hosting"
		qty := 3.0
		inv := uc.UpdateItem(context.Background(), id, ItemPatch{Name: &name, Quantity: &qty})

		if inv.Items[0].Name != "Hosting" || inv.Items[0].Quantity != 3 {
			t.Fatalf("unexpected item after patch: %+v", inv.Items[0])
		}
		if inv.Items[0].Price != 1500 {
			t.Fatalf("price should be untouched, got %v", inv.Items[0].Price)
		}
	})

	t.Run("update with unknown id is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := emptyStore(ctrl)
		uc := NewInvoiceEditorUseCase(context.Background(), store)

		before := uc.Snapshot(context.Background()).Invoice.Items
		name := "ghost"
		qty := 99.0
		price := -5.0
		after := uc.UpdateItem(context.Background(), "no-such-id", ItemPatch{Name: &name, Quantity: &qty, Price: &price})

		if !reflect.DeepEqual(after.Items, before) {
			t.Fatalf("expected unchanged list, got %+v", after.Items)
		}
	})

	t.Run("remove with unknown id is a no-op and does not persist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := emptyStore(ctrl)
		uc := NewInvoiceEditorUseCase(context.Background(), store)

		before := uc.Snapshot(context.Background()).Invoice.Items
		after := uc.RemoveItem(context.Background(), "no-such-id")
		if !reflect.DeepEqual(after.Items, before) {
			t.Fatalf("expected unchanged list, got %+v", after.Items)
		}
	})

	t.Run("remove preserves relative order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := emptyStore(ctrl)
		uc := NewInvoiceEditorUseCase(context.Background(), store)
		store.EXPECT().Save(gomock.Any(), interfaces.RecordKeyInvoice, gomock.Any()).Return(nil).Times(3)

		a := uc.AddItem(context.Background())
		b := uc.AddItem(context.Background())
		inv := uc.RemoveItem(context.Background(), a.ID)

		last := inv.Items[len(inv.Items)-1]
		if last.ID != b.ID {
			t.Fatalf("expected %s last, got %+v", b.ID, inv.Items)
		}
		for _, item := range inv.Items {
			if item.ID == a.ID {
				t.Fatalf("removed item still present")
			}
		}
	})
}

func TestInvoiceEditorUseCase_ClearInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := emptyStore(ctrl)
	uc := NewInvoiceEditorUseCase(context.Background(), store)

	name := "Megacorp"
	store.EXPECT().Save(gomock.Any(), interfaces.RecordKeyClient, gomock.Any()).Return(nil)
	uc.UpdateClientInfo(context.Background(), ClientPatch{Name: &name})

	store.EXPECT().Save(gomock.Any(), interfaces.RecordKeyInvoice, gomock.Any()).Return(nil)
	store.EXPECT().Save(gomock.Any(), interfaces.RecordKeyClient, gomock.Any()).Return(nil)
	snap := uc.ClearInvoice(context.Background())

	if len(snap.Invoice.Items) != 0 {
		t.Fatalf("expected empty item list, got %+v", snap.Invoice.Items)
	}
	if !regexp.MustCompile(`^INV-\d{3}$`).MatchString(snap.Invoice.InvoiceNumber) {
		t.Fatalf("expected randomized number, got %q", snap.Invoice.InvoiceNumber)
	}
	if snap.Client != entities.DefaultClientInfo() {
		t.Fatalf("expected client reset, got %+v", snap.Client)
	}
	if snap.Business != entities.DefaultBusinessInfo() {
		t.Fatalf("business info must be untouched, got %+v", snap.Business)
	}
	if snap.Totals.Subtotal != 0 || snap.Totals.Total != 0 {
		t.Fatalf("expected zero totals, got %+v", snap.Totals)
	}
}

func TestInvoiceEditorUseCase_UpdateInvoice(t *testing.T) {
	t.Run("scalars stored verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := emptyStore(ctrl)
		uc := NewInvoiceEditorUseCase(context.Background(), store)
		store.EXPECT().Save(gomock.Any(), interfaces.RecordKeyInvoice, gomock.Any()).Return(nil)

		number := "INV-2026-A"
		date := "not-even-a-date"
		notes := "wire transfer only"
		rate := 12.5
		inv := uc.UpdateInvoice(context.Background(), InvoicePatch{
			InvoiceNumber: &number,
			InvoiceDate:   &date,
			Notes:         &notes,
			DiscountRate:  &rate,
		})

		if inv.InvoiceNumber != number || inv.InvoiceDate != date || inv.Notes != notes || inv.DiscountRate != rate {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
		if inv.DueDate != entities.TodayDate() {
			t.Fatalf("nil patch field must be untouched, got %q", inv.DueDate)
		}
	})

	t.Run("save failure is swallowed and state kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := emptyStore(ctrl)
		uc := NewInvoiceEditorUseCase(context.Background(), store)
		store.EXPECT().Save(gomock.Any(), interfaces.RecordKeyInvoice, gomock.Any()).Return(errors.New("quota exceeded"))

		notes := "kept in memory"
		uc.UpdateInvoice(context.Background(), InvoicePatch{Notes: &notes})

		if got := uc.Snapshot(context.Background()).Invoice.Notes; got != notes {
			t.Fatalf("expected in-memory state to survive save failure, got %q", got)
		}
	})

	t.Run("saved payload reflects latest state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := emptyStore(ctrl)
		uc := NewInvoiceEditorUseCase(context.Background(), store)

		notes := "check the payload"
		store.EXPECT().Save(gomock.Any(), interfaces.RecordKeyInvoice, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) error {
				var inv entities.Invoice
				if err := json.Unmarshal(payload, &inv); err != nil {
					t.Fatalf("payload not valid json: %v", err)
				}
				if inv.Notes != notes {
					t.Fatalf("payload lags state: %+v", inv)
				}
				return nil
			},
		)
		uc.UpdateInvoice(context.Background(), InvoicePatch{Notes: &notes})
	})
}

func TestInvoiceEditorUseCase_Parties(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := emptyStore(ctrl)
	uc := NewInvoiceEditorUseCase(context.Background(), store)

	store.EXPECT().Save(gomock.Any(), interfaces.RecordKeyBusiness, gomock.Any()).Return(nil)
	phone := "+20 100 000 0000"
	business := uc.UpdateBusinessInfo(context.Background(), BusinessPatch{Phone: &phone})
	if business.Phone != phone {
		t.Fatalf("expected phone update, got %+v", business)
	}
	if business.Name != entities.DefaultBusinessInfo().Name {
		t.Fatalf("nil fields must be untouched, got %+v", business)
	}

	store.EXPECT().Save(gomock.Any(), interfaces.RecordKeyClient, gomock.Any()).Return(nil)
	email := "billing@client.example"
	client := uc.UpdateClientInfo(context.Background(), ClientPatch{Email: &email})
	if client.Email != email {
		t.Fatalf("expected email update, got %+v", client)
	}
}

func TestInvoiceEditorUseCase_SnapshotIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := emptyStore(ctrl)
	uc := NewInvoiceEditorUseCase(context.Background(), store)

	snap := uc.Snapshot(context.Background())
	snap.Invoice.Items[0].Price = 999999

	if got := uc.Snapshot(context.Background()).Invoice.Items[0].Price; got != 1500 {
		t.Fatalf("snapshot must not alias session state, got %v", got)
	}
}
