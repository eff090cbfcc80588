package interfaces

import (
	"context"
	"encoding/json"
)

// Record keys for the independently persisted session records.
const (
	RecordKeyInvoice  = "invoice-data"
	RecordKeyBusiness = "business-info"
	RecordKeyClient   = "client-info"
)

// IRecordStore abstracts the durable key-value store backing the editing
// session. Values are the JSON encodings of the session records; no schema
// version field exists and shape mismatches are not validated.
//
// Load returns an empty payload (nil, nil) when the key has never been
// written. Callers own the fallback-to-default policy: a Load error or a
// malformed payload must never abort the session.

type IRecordStore interface {
	Load(ctx context.Context, key string) (json.RawMessage, error)
	Save(ctx context.Context, key string, payload json.RawMessage) error
}
