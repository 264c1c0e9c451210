package record

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/folio/internal/metrics"
)

// Loader reloads a Store from a catalog file.
type Loader struct {
	path  string
	store *Store
}

// NewLoader binds a catalog path to a store.
func NewLoader(path string, store *Store) *Loader {
	return &Loader{path: path, store: store}
}

// Path returns the catalog file path.
func (l *Loader) Path() string { return l.path }

// Reload parses the catalog and swaps it in. On error the current snapshot is kept.
func (l *Loader) Reload(_ context.Context) error {
	records, err := LoadYAML(l.path)
	if err != nil {
		metrics.CatalogReloadsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("reload %s: %w", l.path, err)
	}
	l.store.Replace(records)
	metrics.CatalogReloadsTotal.WithLabelValues("ok").Inc()
	metrics.CatalogRecords.Set(float64(len(records)))
	return nil
}
