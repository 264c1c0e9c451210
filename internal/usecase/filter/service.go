package filter

import (
	"context"

	"github.com/kailas-cloud/folio/internal/domain/query"
	domrec "github.com/kailas-cloud/folio/internal/domain/record"
	"github.com/kailas-cloud/folio/internal/metrics"
)

// Service narrows the catalog for the landing page and the blog.
type Service struct {
	records  RecordReader
	notifier Notifier
}

// New creates a filter service. A nil notifier is replaced by NopNotifier.
func New(records RecordReader, notifier Notifier) *Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Service{records: records, notifier: notifier}
}

// Cards filters content cards by free text.
func (s *Service) Cards(ctx context.Context, raw string) []domrec.Record {
	matched := MatchFreeText(s.records.ByKind(ctx, domrec.KindCard), query.NewFreeText(raw))
	s.observe(ctx, domrec.KindCard, matched)
	return matched
}

// Posts filters blog posts by category.
func (s *Service) Posts(ctx context.Context, category string) []domrec.Record {
	matched := MatchCategory(s.records.ByKind(ctx, domrec.KindPost), query.NewCategory(category))
	s.observe(ctx, domrec.KindPost, matched)
	return matched
}

func (s *Service) observe(ctx context.Context, kind domrec.Kind, matched []domrec.Record) {
	metrics.FilterQueriesTotal.WithLabelValues(string(kind)).Inc()
	metrics.FilterMatches.WithLabelValues(string(kind)).Observe(float64(len(matched)))
	s.notifier.OnFilterResult(ctx, matched)
}
