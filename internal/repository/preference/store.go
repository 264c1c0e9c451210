package preference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/folio/internal/db"
	dompref "github.com/kailas-cloud/folio/internal/domain/preference"
)

// store is the consumer interface for preference operations (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Store implements usecase/preference.DurableStore on top of a KV store.
type Store struct {
	store  store
	prefix string
	ttl    time.Duration
}

// New creates a preference store.
// prefix namespaces keys (e.g. "folio:"); ttl of 0 keeps values forever.
func New(s store, prefix string, ttl time.Duration) *Store {
	return &Store{store: s, prefix: prefix, ttl: ttl}
}

// Get returns the remembered value. A missing key is Absent, not an error.
func (s *Store) Get(ctx context.Context, visitor, setting string) (dompref.Value, error) {
	key := s.key(visitor, setting)
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return dompref.Absent(), nil
		}
		return dompref.Absent(), fmt.Errorf("preference GET %s: %w", key, err)
	}
	return dompref.Of(string(data)), nil
}

// Set remembers value for the visitor.
func (s *Store) Set(ctx context.Context, visitor, setting, value string) error {
	key := s.key(visitor, setting)
	var err error
	if s.ttl > 0 {
		err = s.store.SetWithTTL(ctx, key, []byte(value), s.ttl)
	} else {
		err = s.store.Set(ctx, key, []byte(value))
	}
	if err != nil {
		return fmt.Errorf("preference SET %s: %w", key, err)
	}
	return nil
}

// key follows the pattern {prefix}pref:{visitor}:{setting}.
func (s *Store) key(visitor, setting string) string {
	return s.prefix + "pref:" + visitor + ":" + setting
}
