package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching generated results
type CacheRepository interface {
	Get(ctx context.Context, key string) (*ShoppingListResult, error)
	Set(ctx context.Context, key string, result *ShoppingListResult, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NoteStore defines the interface for persisting exported shopping lists.
// Export is the only I/O boundary of the subsystem; the core pipeline
// itself never touches it.
type NoteStore interface {
	Save(ctx context.Context, note *ExportedNote) (string, error)
	Get(ctx context.Context, id string) (*ExportedNote, error)
}
