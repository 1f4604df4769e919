package usecase

import (
	"context"
	"time"
)

// SearchCache is the slice of the Redis wrapper ranked search depends
// on. A nil-safe implementation may turn every call into a no-op.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
