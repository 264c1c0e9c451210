package filter

import (
	"context"

	"go.uber.org/zap"

	domrec "github.com/kailas-cloud/folio/internal/domain/record"
	"github.com/kailas-cloud/folio/internal/logger"
)

// NopNotifier discards results.
type NopNotifier struct{}

// OnFilterResult does nothing.
func (NopNotifier) OnFilterResult(context.Context, []domrec.Record) {}

// LogNotifier writes a debug line per filter result to the request logger.
type LogNotifier struct{}

// OnFilterResult logs the number and ids of matched records.
func (LogNotifier) OnFilterResult(ctx context.Context, matched []domrec.Record) {
	log := logger.FromContext(ctx)
	if ce := log.Check(zap.DebugLevel, "filter result"); ce != nil {
		ids := make([]string, len(matched))
		for i := range matched {
			ids[i] = matched[i].ID()
		}
		ce.Write(zap.Int("matched", len(matched)), zap.Strings("ids", ids))
	}
}

// Notifiers fans a result out to several notifiers in order.
type Notifiers []Notifier

// OnFilterResult calls every notifier.
func (ns Notifiers) OnFilterResult(ctx context.Context, matched []domrec.Record) {
	for _, n := range ns {
		n.OnFilterResult(ctx, matched)
	}
}
