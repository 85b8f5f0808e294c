// Package memstore is an in-memory store.Store used by tests and short-lived
// runs.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cognicore/styleprof/pkg/styleprof/internalerr"
	"github.com/cognicore/styleprof/pkg/styleprof/pattern"
)

// Store keeps pattern records in a mutex-guarded map.
type Store struct {
	mu      sync.RWMutex
	records map[string]pattern.Record
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{records: make(map[string]pattern.Record)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// GetPatterns returns records matching the selectors. Results are sorted by
// creation time, then ID, for deterministic iteration.
func (s *Store) GetPatterns(ctx context.Context, typ pattern.Type, platform string) ([]pattern.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []pattern.Record
	for _, rec := range s.records {
		if typ != "" && rec.Type != typ {
			continue
		}
		if rec.Platform != platform {
			continue
		}
		out = append(out, copyRecord(rec))
	}
	sortRecords(out)
	return out, nil
}

// ListPatterns returns every stored record.
func (s *Store) ListPatterns(ctx context.Context) ([]pattern.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]pattern.Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, copyRecord(rec))
	}
	sortRecords(out)
	return out, nil
}

// UpsertPattern inserts a record or increments an existing one's usage count.
// The whole operation runs under the write lock, so it is atomic.
func (s *Store) UpsertPattern(ctx context.Context, rec pattern.Record) (pattern.Record, error) {
	if rec.ID == "" {
		return pattern.Record{}, fmt.Errorf("memstore: %w: record ID required", internalerr.ErrInvalidInput)
	}
	if rec.Data == nil {
		return pattern.Record{}, fmt.Errorf("memstore: %w: record data required", internalerr.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.records[rec.ID]; ok {
		existing.UsageCount++
		existing.Data = rec.Data
		s.records[rec.ID] = existing
		return copyRecord(existing), nil
	}

	if rec.UsageCount < 1 {
		rec.UsageCount = 1
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	s.records[rec.ID] = rec
	return copyRecord(rec), nil
}

func sortRecords(recs []pattern.Record) {
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].CreatedAt.Before(recs[j].CreatedAt)
		}
		return recs[i].ID < recs[j].ID
	})
}

// copyRecord round-trips the payload through its codec so callers cannot
// mutate stored slices.
func copyRecord(rec pattern.Record) pattern.Record {
	raw, err := pattern.MarshalData(rec.Data)
	if err != nil {
		return rec
	}
	data, err := pattern.UnmarshalData(rec.Type, raw)
	if err != nil {
		return rec
	}
	rec.Data = data
	return rec
}
