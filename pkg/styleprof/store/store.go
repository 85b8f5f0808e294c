package store

import (
	"context"

	"github.com/cognicore/styleprof/pkg/styleprof/pattern"
)

// Store persists learned pattern records. Implementations must make
// UpsertPattern atomic per record so concurrent learning passes cannot lose
// usage-count updates.
type Store interface {
	Close() error

	// GetPatterns returns records matching the selectors. An empty typ
	// matches every pattern type; platform is matched exactly, so the empty
	// string selects the venue-independent records.
	GetPatterns(ctx context.Context, typ pattern.Type, platform string) ([]pattern.Record, error)

	// ListPatterns returns every stored record.
	ListPatterns(ctx context.Context) ([]pattern.Record, error)

	// UpsertPattern inserts a new record, or, when the ID already exists,
	// atomically increments the stored usage count and refreshes the payload.
	// It returns the record as persisted.
	UpsertPattern(ctx context.Context, rec pattern.Record) (pattern.Record, error)
}
