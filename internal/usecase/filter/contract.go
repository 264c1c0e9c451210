package filter

import (
	"context"

	domrec "github.com/kailas-cloud/folio/internal/domain/record"
)

// RecordReader reads the current catalog snapshot.
type RecordReader interface {
	ByKind(ctx context.Context, kind domrec.Kind) []domrec.Record
}

// Notifier receives every filter result for presentation.
type Notifier interface {
	OnFilterResult(ctx context.Context, matched []domrec.Record)
}
