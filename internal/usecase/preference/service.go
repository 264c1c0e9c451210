package preference

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/folio/internal/domain"
	dompref "github.com/kailas-cloud/folio/internal/domain/preference"
	"github.com/kailas-cloud/folio/internal/logger"
	"github.com/kailas-cloud/folio/internal/metrics"
)

// Service restores and commits view preferences across the durable and
// transient stores.
type Service struct {
	durable  DurableStore
	notifier Notifier
}

// New creates a preference service. A nil notifier is replaced by NopNotifier.
func New(durable DurableStore, notifier Notifier) *Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Service{durable: durable, notifier: notifier}
}

// Resolve returns the effective value of setting for visitor.
// A valid URL value wins over a valid remembered value; anything else is Absent.
// A failing durable store is logged and treated as absent.
func (s *Service) Resolve(ctx context.Context, visitor string, setting dompref.Setting, url URLStore) dompref.Value {
	durable := dompref.Absent()
	if visitor != "" {
		v, err := s.durable.Get(ctx, visitor, setting.Name)
		if err != nil {
			logger.FromContext(ctx).Warn("durable preference unavailable",
				zap.String("setting", setting.Name), zap.Error(err))
		} else {
			durable = v
		}
	}

	transient := dompref.Absent()
	if url != nil {
		if v, ok := url.Get(setting.URLParam); ok {
			transient = dompref.Of(v)
		}
	}

	res := dompref.Resolve(durable, transient, setting.Domain)
	metrics.PreferenceResolvedTotal.WithLabelValues(setting.Name, string(res.Source)).Inc()
	s.notifier.OnPreferenceResolved(ctx, setting.Name, res.Value)
	return res.Value
}

// Commit records an explicit user choice in both stores.
// Values outside the setting's domain are rejected with domain.ErrInvalidPreference.
// For a setting with ClearOn, committing that value removes the URL parameter.
func (s *Service) Commit(
	ctx context.Context, visitor string, setting dompref.Setting, value string, url URLStore,
) error {
	if !setting.Allows(value) {
		metrics.PreferenceCommitsTotal.WithLabelValues(setting.Name, "invalid").Inc()
		return domain.NewInvalidPreference(setting.Name, value)
	}

	if visitor != "" {
		if err := s.durable.Set(ctx, visitor, setting.Name, value); err != nil {
			metrics.PreferenceCommitsTotal.WithLabelValues(setting.Name, "error").Inc()
			return fmt.Errorf("commit %s: %w", setting.Name, err)
		}
	}

	if url != nil {
		if setting.ClearOn != "" && value == setting.ClearOn {
			url.Clear(setting.URLParam)
		} else {
			url.Set(setting.URLParam, value)
		}
	}

	metrics.PreferenceCommitsTotal.WithLabelValues(setting.Name, "ok").Inc()
	return nil
}
