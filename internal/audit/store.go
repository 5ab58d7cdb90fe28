package audit

import "context"

// Store persists audit records. Append-only; swap with concrete storage
// without touching the publisher.
type Store interface {
	Append(ctx context.Context, rec Record) error
	ListByFile(ctx context.Context, filePath string) ([]Record, error)
}
