// Package record holds the ordered content catalog and its loaders.
package record

import (
	"context"
	"sync/atomic"

	"github.com/kailas-cloud/folio/internal/domain"
	domrec "github.com/kailas-cloud/folio/internal/domain/record"
)

// Store is an in-memory ordered catalog. Readers get an immutable snapshot;
// Replace swaps the whole catalog atomically.
type Store struct {
	snap atomic.Pointer[[]domrec.Record]
}

// NewStore creates a store seeded with records.
func NewStore(records []domrec.Record) *Store {
	s := &Store{}
	s.Replace(records)
	return s
}

// Replace swaps the catalog. The slice is copied.
func (s *Store) Replace(records []domrec.Record) {
	cp := make([]domrec.Record, len(records))
	copy(cp, records)
	s.snap.Store(&cp)
}

// All returns the current snapshot in catalog order. Callers must not modify it.
func (s *Store) All(_ context.Context) []domrec.Record {
	p := s.snap.Load()
	if p == nil {
		return nil
	}
	return *p
}

// ByKind returns the records of one kind, preserving order.
func (s *Store) ByKind(ctx context.Context, kind domrec.Kind) []domrec.Record {
	all := s.All(ctx)
	out := make([]domrec.Record, 0, len(all))
	for i := range all {
		if all[i].Kind() == kind {
			out = append(out, all[i])
		}
	}
	return out
}

// Categories returns distinct non-empty categories of kind in first-seen order.
func (s *Store) Categories(ctx context.Context, kind domrec.Kind) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.ByKind(ctx, kind) {
		c := r.Category()
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Get finds a record by id.
func (s *Store) Get(ctx context.Context, id string) (domrec.Record, error) {
	all := s.All(ctx)
	for i := range all {
		if all[i].ID() == id {
			return all[i], nil
		}
	}
	return domrec.Record{}, domain.ErrRecordNotFound
}

// Len returns the number of records in the snapshot.
func (s *Store) Len() int {
	p := s.snap.Load()
	if p == nil {
		return 0
	}
	return len(*p)
}
