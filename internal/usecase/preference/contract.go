package preference

import (
	"context"

	dompref "github.com/kailas-cloud/folio/internal/domain/preference"
)

// DurableStore remembers preferences per visitor across sessions.
type DurableStore interface {
	Get(ctx context.Context, visitor, setting string) (dompref.Value, error)
	Set(ctx context.Context, visitor, setting, value string) error
}

// URLStore is the transient store: the current page's query string.
type URLStore interface {
	Get(param string) (string, bool)
	Set(param, value string)
	Clear(param string)
}

// Notifier receives every resolved preference for presentation.
type Notifier interface {
	OnPreferenceResolved(ctx context.Context, setting string, value dompref.Value)
}
