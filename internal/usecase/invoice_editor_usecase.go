package usecase

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"salesease/internal/domain/entities"
	"salesease/internal/usecase/interfaces"
)

// Patch types carry one optional field per editable attribute, so every edit
// is an explicit typed command instead of a field-name-keyed update. A nil
// field leaves the attribute untouched.

type ItemPatch struct {
	Name     *string
	Quantity *float64
	Price    *float64
}

type InvoicePatch struct {
	InvoiceNumber *string
	InvoiceDate   *string
	DueDate       *string
	Notes         *string
	DiscountRate  *float64
}

type BusinessPatch struct {
	Name    *string
	Address *string
	Email   *string
	Phone   *string
}

type ClientPatch struct {
	Name    *string
	Address *string
	Email   *string
}

// Snapshot is the full session state handed to views: the three records plus
// totals freshly derived from the invoice.
type Snapshot struct {
	Invoice  entities.Invoice
	Business entities.BusinessInfo
	Client   entities.ClientInfo
	Totals   entities.Totals
}

// IInvoiceEditorUseCase exposes the invoice editing session operations.
//
// Mutations never fail: unknown-id updates and removals are silent no-ops
// (defensive against stale references), and persistence problems are logged
// and swallowed so the session keeps operating in-memory.

type IInvoiceEditorUseCase interface {
	Snapshot(ctx context.Context) Snapshot
	AddItem(ctx context.Context) entities.InvoiceItem
	UpdateItem(ctx context.Context, id string, patch ItemPatch) entities.Invoice
	RemoveItem(ctx context.Context, id string) entities.Invoice
	ClearInvoice(ctx context.Context) Snapshot
	UpdateInvoice(ctx context.Context, patch InvoicePatch) entities.Invoice
	UpdateBusinessInfo(ctx context.Context, patch BusinessPatch) entities.BusinessInfo
	UpdateClientInfo(ctx context.Context, patch ClientPatch) entities.ClientInfo
}

// InvoiceEditorUseCase owns the session records. State is loaded from the
// record store once at construction and written back synchronously after
// every mutation; the mutex keeps last-write-wins ordering between rapid
// successive edits.
type InvoiceEditorUseCase struct {
	store interfaces.IRecordStore

	mu       sync.Mutex
	invoice  entities.Invoice
	business entities.BusinessInfo
	client   entities.ClientInfo
}

var _ IInvoiceEditorUseCase = (*InvoiceEditorUseCase)(nil)

// NewInvoiceEditorUseCase rehydrates the session from the store. Each record
// independently falls back to its template default when absent or malformed.
func NewInvoiceEditorUseCase(ctx context.Context, store interfaces.IRecordStore) *InvoiceEditorUseCase {
	u := &InvoiceEditorUseCase{store: store}

	u.invoice = entities.DefaultInvoice()
	u.loadRecord(ctx, interfaces.RecordKeyInvoice, &u.invoice)

	u.business = entities.DefaultBusinessInfo()
	u.loadRecord(ctx, interfaces.RecordKeyBusiness, &u.business)

	u.client = entities.DefaultClientInfo()
	u.loadRecord(ctx, interfaces.RecordKeyClient, &u.client)

	return u
}

// loadRecord overwrites *v with the stored record, keeping the preset default
// on a missing key, a store error or a parse failure. Failures are diagnostic
// only and never escape.
func (u *InvoiceEditorUseCase) loadRecord(ctx context.Context, key string, v any) {
	raw, err := u.store.Load(ctx, key)
	if err != nil {
		log.Printf("[editor][usecase] load failed key=%s err=%v; using default", key, err)
		return
	}
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("[editor][usecase] stored record unparsable key=%s err=%v; using default", key, err)
	}
}

// persistRecord mirrors the in-memory record to the store. Write failures are
// logged and the session continues in-memory only.
func (u *InvoiceEditorUseCase) persistRecord(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[editor][usecase] marshal failed key=%s err=%v", key, err)
		return
	}
	if err := u.store.Save(ctx, key, b); err != nil {
		log.Printf("[editor][usecase] save failed key=%s err=%v; continuing in-memory", key, err)
	}
}

func (u *InvoiceEditorUseCase) Snapshot(ctx context.Context) Snapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked()
}

func (u *InvoiceEditorUseCase) snapshotLocked() Snapshot {
	return Snapshot{
		Invoice:  copyInvoice(u.invoice),
		Business: u.business,
		Client:   u.client,
		Totals:   entities.ComputeTotals(u.invoice.Items, u.invoice.DiscountRate),
	}
}

func (u *InvoiceEditorUseCase) AddItem(ctx context.Context) entities.InvoiceItem {
	u.mu.Lock()
	defer u.mu.Unlock()

	item := entities.NewInvoiceItem()
	u.invoice.Items = append(u.invoice.Items, item)
	log.Printf("[editor][usecase] item added id=%s", item.ID)
	u.persistRecord(ctx, interfaces.RecordKeyInvoice, u.invoice)
	return item
}

func (u *InvoiceEditorUseCase) UpdateItem(ctx context.Context, id string, patch ItemPatch) entities.Invoice {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.invoice.Items {
		if u.invoice.Items[i].ID != id {
			continue
		}
		if patch.Name != nil {
			u.invoice.Items[i].Name = *patch.Name
		}
		if patch.Quantity != nil {
			u.invoice.Items[i].Quantity = *patch.Quantity
		}
		if patch.Price != nil {
			u.invoice.Items[i].Price = *patch.Price
		}
		u.persistRecord(ctx, interfaces.RecordKeyInvoice, u.invoice)
		return copyInvoice(u.invoice)
	}

	// Unknown id: stale reference, leave the list unchanged.
	return copyInvoice(u.invoice)
}

func (u *InvoiceEditorUseCase) RemoveItem(ctx context.Context, id string) entities.Invoice {
	u.mu.Lock()
	defer u.mu.Unlock()

	kept := u.invoice.Items[:0]
	removed := false
	for _, item := range u.invoice.Items {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	u.invoice.Items = kept
	if removed {
		log.Printf("[editor][usecase] item removed id=%s", id)
		u.persistRecord(ctx, interfaces.RecordKeyInvoice, u.invoice)
	}
	return copyInvoice(u.invoice)
}

func (u *InvoiceEditorUseCase) ClearInvoice(ctx context.Context) Snapshot {
	u.mu.Lock()
	defer u.mu.Unlock()

	cleared := entities.DefaultInvoice()
	cleared.Items = []entities.InvoiceItem{}
	cleared.InvoiceNumber = entities.RandomInvoiceNumber()
	u.invoice = cleared
	u.client = entities.DefaultClientInfo()

	log.Printf("[editor][usecase] invoice cleared new_number=%s", cleared.InvoiceNumber)
	u.persistRecord(ctx, interfaces.RecordKeyInvoice, u.invoice)
	u.persistRecord(ctx, interfaces.RecordKeyClient, u.client)
	return u.snapshotLocked()
}

func (u *InvoiceEditorUseCase) UpdateInvoice(ctx context.Context, patch InvoicePatch) entities.Invoice {
	u.mu.Lock()
	defer u.mu.Unlock()

	if patch.InvoiceNumber != nil {
		u.invoice.InvoiceNumber = *patch.InvoiceNumber
	}
	if patch.InvoiceDate != nil {
		u.invoice.InvoiceDate = *patch.InvoiceDate
	}
	if patch.DueDate != nil {
		u.invoice.DueDate = *patch.DueDate
	}
	if patch.Notes != nil {
		u.invoice.Notes = *patch.Notes
	}
	if patch.DiscountRate != nil {
		u.invoice.DiscountRate = *patch.DiscountRate
	}
	u.persistRecord(ctx, interfaces.RecordKeyInvoice, u.invoice)
	return copyInvoice(u.invoice)
}

func (u *InvoiceEditorUseCase) UpdateBusinessInfo(ctx context.Context, patch BusinessPatch) entities.BusinessInfo {
	u.mu.Lock()
	defer u.mu.Unlock()

	if patch.Name != nil {
		u.business.Name = *patch.Name
	}
	if patch.Address != nil {
		u.business.Address = *patch.Address
	}
	if patch.Email != nil {
		u.business.Email = *patch.Email
	}
	if patch.Phone != nil {
		u.business.Phone = *patch.Phone
	}
	u.persistRecord(ctx, interfaces.RecordKeyBusiness, u.business)
	return u.business
}

func (u *InvoiceEditorUseCase) UpdateClientInfo(ctx context.Context, patch ClientPatch) entities.ClientInfo {
	u.mu.Lock()
	defer u.mu.Unlock()

	if patch.Name != nil {
		u.client.Name = *patch.Name
	}
	if patch.Address != nil {
		u.client.Address = *patch.Address
	}
	if patch.Email != nil {
		u.client.Email = *patch.Email
	}
	u.persistRecord(ctx, interfaces.RecordKeyClient, u.client)
	return u.client
}

// copyInvoice returns a value with its own item slice so callers can never
// alias the session's backing array.
func copyInvoice(inv entities.Invoice) entities.Invoice {
	out := inv
	out.Items = make([]entities.InvoiceItem, len(inv.Items))
	copy(out.Items, inv.Items)
	return out
}
