package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/folio/internal/db"
)

func TestSetGet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	value := []byte("grid")
	if err := s.Set(ctx, "k", value); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value[0] = 'X'

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "grid" {
		t.Errorf("Get = %q, want grid (caller mutation must not leak)", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := NewStore()
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestSetWithTTL_Expires(t *testing.T) {
	s := NewStore()
	now := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.SetWithTTL(ctx, "k", []byte("list"), time.Minute)
	if _, err := s.Get(ctx, "k"); err != nil {
		t.Fatalf("Get before expiry: %v", err)
	}

	now = now.Add(time.Minute)
	if _, err := s.Get(ctx, "k"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound at expiry, got %v", err)
	}
}

func TestDel(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_ = s.Set(ctx, "k", []byte("v"))
	_ = s.Del(ctx, "k")
	if _, err := s.Get(ctx, "k"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestClose(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	s.Close()
	if err := s.Ping(ctx); !errors.Is(err, db.ErrClosed) {
		t.Errorf("Ping after Close = %v, want ErrClosed", err)
	}
	if err := s.Set(ctx, "k", nil); !errors.Is(err, db.ErrClosed) {
		t.Errorf("Set after Close = %v, want ErrClosed", err)
	}
}
