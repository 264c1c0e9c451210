package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/posts/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("post"))
	})

	for _, id := range []string{"tech-trends", "travel-notes"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/posts/"+id, http.NoBody))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
	}

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(SurfacePage, "GET", "/posts/{id}", "200"))
	if got < 2 {
		t.Errorf("expected both requests under one route label, got %f", got)
	}
	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Error("expected http_request_duration_seconds observations")
	}
}

func TestMiddleware_StatusAndMethod(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Put("/api/preferences/{setting}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	r.Get("/api/cards", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	tests := []struct {
		method string
		path   string
		route  string
		status string
	}{
		{http.MethodPut, "/api/preferences/blogLayout", "/api/preferences/{setting}", "400"},
		{http.MethodGet, "/api/cards?q=ml", "/api/cards", "200"},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.route, func(t *testing.T) {
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tc.method, tc.path, http.NoBody))
			if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(SurfaceAPI, tc.method, tc.route, tc.status)); got < 1 {
				t.Errorf("expected requests_total >= 1, got %f", got)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath(""); got != "unknown" {
		t.Errorf("normalizePath(\"\") = %q, want unknown", got)
	}
	if got := normalizePath("/blog"); got != "/blog" {
		t.Errorf("normalizePath(/blog) = %q", got)
	}
}

func TestSurfaceOf(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"/", SurfacePage},
		{"/blog", SurfacePage},
		{"/posts/{id}", SurfacePage},
		{"/api/preferences/{setting}", SurfaceAPI},
		{"/admin/reload", SurfaceAdmin},
		{"/health", SurfaceOps},
		{"/metrics", SurfaceOps},
		{"", "unknown"},
	}
	for _, tt := range tests {
		if got := surfaceOf(tt.pattern); got != tt.want {
			t.Errorf("surfaceOf(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestMiddleware_AdminSurface(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Route("/admin", func(r chi.Router) {
		r.Post("/reload", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/reload", http.NoBody))

	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(SurfaceAdmin, "POST", "/admin/reload", "401")); got < 1 {
		t.Errorf("expected admin request counted, got %f", got)
	}
}

func TestRegisterContentMetrics_Idempotent(t *testing.T) {
	RegisterContentMetrics()
	RegisterContentMetrics()

	var already prometheus.AlreadyRegisteredError
	if err := prometheus.Register(FilterQueriesTotal); !errors.As(err, &already) {
		t.Errorf("expected AlreadyRegisteredError, got %v", err)
	}
}
