package preference

import (
	"context"

	"go.uber.org/zap"

	dompref "github.com/kailas-cloud/folio/internal/domain/preference"
	"github.com/kailas-cloud/folio/internal/logger"
)

// NopNotifier discards resolutions.
type NopNotifier struct{}

// OnPreferenceResolved does nothing.
func (NopNotifier) OnPreferenceResolved(context.Context, string, dompref.Value) {}

// LogNotifier writes a debug line per resolution to the request logger.
type LogNotifier struct{}

// OnPreferenceResolved logs the setting and its effective value.
func (LogNotifier) OnPreferenceResolved(ctx context.Context, setting string, value dompref.Value) {
	v, ok := value.Get()
	logger.FromContext(ctx).Debug("preference resolved",
		zap.String("setting", setting), zap.String("value", v), zap.Bool("present", ok))
}

// Notifiers fans a resolution out to several notifiers in order.
type Notifiers []Notifier

// OnPreferenceResolved calls every notifier.
func (ns Notifiers) OnPreferenceResolved(ctx context.Context, setting string, value dompref.Value) {
	for _, n := range ns {
		n.OnPreferenceResolved(ctx, setting, value)
	}
}
