package preference

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/folio/internal/domain"
	dompref "github.com/kailas-cloud/folio/internal/domain/preference"
	"github.com/kailas-cloud/folio/internal/logger"
	"github.com/kailas-cloud/folio/internal/metrics"
	"github.com/kailas-cloud/folio/internal/urlstate"
)

// --- Mocks ---

type mockDurable struct {
	values map[string]string
	getErr error
	setErr error
}

func newMockDurable() *mockDurable {
	return &mockDurable{values: map[string]string{}}
}

func (m *mockDurable) Get(_ context.Context, visitor, setting string) (dompref.Value, error) {
	if m.getErr != nil {
		return dompref.Absent(), m.getErr
	}
	v, ok := m.values[visitor+"/"+setting]
	if !ok {
		return dompref.Absent(), nil
	}
	return dompref.Of(v), nil
}

func (m *mockDurable) Set(_ context.Context, visitor, setting, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[visitor+"/"+setting] = value
	return nil
}

type recordingNotifier struct {
	values []dompref.Value
}

func (n *recordingNotifier) OnPreferenceResolved(_ context.Context, _ string, v dompref.Value) {
	n.values = append(n.values, v)
}

func mustURL(t *testing.T, raw string) *urlstate.Query {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return urlstate.New(u)
}

var category = dompref.CategorySetting([]string{"tech", "travel"})

// --- Resolve ---

func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		rawURL  string
		setting dompref.Setting
		want    string
		present bool
	}{
		{"url wins", "grid", "/blog?layout=list", dompref.Layout, "list", true},
		{"stored fallback", "list", "/blog", dompref.Layout, "list", true},
		{"invalid url falls back", "grid", "/blog?layout=masonry", dompref.Layout, "grid", true},
		{"invalid stored is absent", "masonry", "/blog", dompref.Layout, "", false},
		{"nothing is absent", "", "/blog", dompref.Layout, "", false},
		{"category from url", "travel", "/blog?category=tech", category, "tech", true},
		{"category from store", "travel", "/blog", category, "travel", true},
		{"unknown category", "", "/blog?category=food", category, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			durable := newMockDurable()
			if tt.stored != "" {
				durable.values["v1/"+tt.setting.Name] = tt.stored
			}
			notifier := &recordingNotifier{}
			svc := New(durable, notifier)

			got := svc.Resolve(context.Background(), "v1", tt.setting, mustURL(t, tt.rawURL))

			v, ok := got.Get()
			if v != tt.want || ok != tt.present {
				t.Errorf("Resolve = %q, %v; want %q, %v", v, ok, tt.want, tt.present)
			}
			if len(notifier.values) != 1 || notifier.values[0] != got {
				t.Errorf("notifier got %v", notifier.values)
			}
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	durable := newMockDurable()
	durable.values["v1/blogLayout"] = "grid"
	svc := New(durable, nil)
	q := mustURL(t, "/blog?layout=list")

	first := svc.Resolve(context.Background(), "v1", dompref.Layout, q)
	second := svc.Resolve(context.Background(), "v1", dompref.Layout, q)
	if first != second {
		t.Errorf("Resolve not idempotent: %v vs %v", first, second)
	}
}

func TestResolve_StoreUnavailable(t *testing.T) {
	durable := newMockDurable()
	durable.getErr = errors.New("connection refused")
	core, logs := observer.New(zap.WarnLevel)
	ctx := logger.ContextWithLogger(context.Background(), zap.New(core))

	svc := New(durable, nil)
	got := svc.Resolve(ctx, "v1", dompref.Layout, mustURL(t, "/blog?layout=list"))

	if got.String() != "list" {
		t.Errorf("Resolve = %q, want list", got.String())
	}
	if logs.FilterMessage("durable preference unavailable").Len() != 1 {
		t.Error("expected a warning log")
	}

	if got := svc.Resolve(ctx, "v1", dompref.Layout, mustURL(t, "/blog")); !got.IsAbsent() {
		t.Errorf("expected absent, got %q", got.String())
	}
}

func TestResolve_NoVisitorSkipsDurable(t *testing.T) {
	durable := newMockDurable()
	durable.getErr = errors.New("must not be called")
	svc := New(durable, nil)

	got := svc.Resolve(context.Background(), "", dompref.Layout, nil)
	if !got.IsAbsent() {
		t.Errorf("expected absent, got %q", got.String())
	}
}

func TestResolve_SourceMetric(t *testing.T) {
	durable := newMockDurable()
	durable.values["v1/blogLayout"] = "grid"
	svc := New(durable, nil)

	counter := metrics.PreferenceResolvedTotal.WithLabelValues("blogLayout", "stored")
	before := testutil.ToFloat64(counter)
	svc.Resolve(context.Background(), "v1", dompref.Layout, mustURL(t, "/blog"))
	if after := testutil.ToFloat64(counter); after != before+1 {
		t.Errorf("resolved_total{stored} = %f, want %f", after, before+1)
	}
}

// --- Commit ---

func TestCommit_ThenResolve(t *testing.T) {
	ctx := context.Background()
	durable := newMockDurable()
	svc := New(durable, nil)
	q := mustURL(t, "/blog")

	if err := svc.Commit(ctx, "v1", dompref.Layout, "list", q); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if q.URL() != "/blog?layout=list" {
		t.Errorf("URL = %q", q.URL())
	}
	if durable.values["v1/blogLayout"] != "list" {
		t.Errorf("durable = %q", durable.values["v1/blogLayout"])
	}

	// Same page, and a fresh page without the parameter.
	if got := svc.Resolve(ctx, "v1", dompref.Layout, q); got.String() != "list" {
		t.Errorf("Resolve(same url) = %q", got.String())
	}
	if got := svc.Resolve(ctx, "v1", dompref.Layout, mustURL(t, "/blog")); got.String() != "list" {
		t.Errorf("Resolve(fresh url) = %q", got.String())
	}
}

func TestCommit_CategoryAllClearsURL(t *testing.T) {
	ctx := context.Background()
	durable := newMockDurable()
	svc := New(durable, nil)
	q := mustURL(t, "/blog?category=tech&layout=list")

	if err := svc.Commit(ctx, "v1", category, "all", q); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if _, ok := q.Get("category"); ok {
		t.Error("category param must be cleared")
	}
	if q.URL() != "/blog?layout=list" {
		t.Errorf("URL = %q", q.URL())
	}
	if durable.values["v1/blogCategory"] != "all" {
		t.Errorf("durable = %q, want all", durable.values["v1/blogCategory"])
	}
	if got := svc.Resolve(ctx, "v1", category, q); got.String() != "all" {
		t.Errorf("Resolve = %q, want all", got.String())
	}
}

func TestCommit_Invalid(t *testing.T) {
	durable := newMockDurable()
	svc := New(durable, nil)
	q := mustURL(t, "/blog")

	err := svc.Commit(context.Background(), "v1", dompref.Layout, "masonry", q)
	if !errors.Is(err, domain.ErrInvalidPreference) {
		t.Fatalf("expected ErrInvalidPreference, got %v", err)
	}
	var ipe *domain.InvalidPreferenceError
	if !errors.As(err, &ipe) || ipe.Value != "masonry" {
		t.Errorf("expected InvalidPreferenceError for masonry, got %v", err)
	}
	if len(durable.values) != 0 || q.URL() != "/blog" {
		t.Error("invalid commit must not write either store")
	}
}

func TestCommit_DurableError(t *testing.T) {
	boom := errors.New("readonly replica")
	durable := newMockDurable()
	durable.setErr = boom
	svc := New(durable, nil)
	q := mustURL(t, "/blog")

	if err := svc.Commit(context.Background(), "v1", dompref.Layout, "grid", q); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if q.URL() != "/blog" {
		t.Errorf("URL must be untouched on failure, got %q", q.URL())
	}
}

func TestNotifiers_FanOut(t *testing.T) {
	a, b := &recordingNotifier{}, &recordingNotifier{}
	svc := New(newMockDurable(), Notifiers{a, LogNotifier{}, b})

	svc.Resolve(context.Background(), "", dompref.Layout, mustURL(t, "/blog?layout=list"))

	for i, n := range []*recordingNotifier{a, b} {
		if len(n.values) != 1 || n.values[0].String() != "list" {
			t.Errorf("notifier %d got %v", i, n.values)
		}
	}
}
