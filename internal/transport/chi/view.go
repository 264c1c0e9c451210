package chi

import (
	"context"
	"sync"

	dompref "github.com/kailas-cloud/folio/internal/domain/preference"
	domrec "github.com/kailas-cloud/folio/internal/domain/record"
)

// viewState collects what the usecases report during one request; the page
// renderer reads it after the calls return.
type viewState struct {
	mu          sync.Mutex
	matched     []domrec.Record
	preferences map[string]dompref.Value
}

type viewKey struct{}

func withViewState(ctx context.Context) (context.Context, *viewState) {
	vs := &viewState{preferences: make(map[string]dompref.Value)}
	return context.WithValue(ctx, viewKey{}, vs), vs
}

func viewFromContext(ctx context.Context) *viewState {
	vs, _ := ctx.Value(viewKey{}).(*viewState)
	return vs
}

// Matched returns the last reported filter result.
func (vs *viewState) Matched() []domrec.Record {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.matched
}

// Preference returns the resolved value of a setting, Absent if none was reported.
func (vs *viewState) Preference(setting string) dompref.Value {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.preferences[setting]
}

// ViewNotifier forwards usecase results to the request's view state.
// Requests without a view state (JSON API) are ignored.
type ViewNotifier struct{}

// OnFilterResult stores the matched records.
func (ViewNotifier) OnFilterResult(ctx context.Context, matched []domrec.Record) {
	if vs := viewFromContext(ctx); vs != nil {
		vs.mu.Lock()
		vs.matched = matched
		vs.mu.Unlock()
	}
}

// OnPreferenceResolved stores the effective setting value.
func (ViewNotifier) OnPreferenceResolved(ctx context.Context, setting string, value dompref.Value) {
	if vs := viewFromContext(ctx); vs != nil {
		vs.mu.Lock()
		vs.preferences[setting] = value
		vs.mu.Unlock()
	}
}
