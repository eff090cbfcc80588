package interfaces

import "context"

// IShareChannel hands a formatted plain-text summary to an external
// message-composition channel. No network call is made: Open only builds the
// pre-filled compose handoff and returns it. The use case invokes Open
// exactly once per user-initiated share action.

type IShareChannel interface {
	Open(ctx context.Context, message string) (url string, err error)
}
