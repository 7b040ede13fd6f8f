package datasync

import "context"

// Trigger starts a backend-side sync.
type Trigger interface {
	SyncAll(ctx context.Context, req Request) (Result, error)
}
