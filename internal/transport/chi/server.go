package chi

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/folio/internal/domain"
	"github.com/kailas-cloud/folio/internal/domain/nav"
	"github.com/kailas-cloud/folio/internal/domain/playlist"
	dompref "github.com/kailas-cloud/folio/internal/domain/preference"
	domrec "github.com/kailas-cloud/folio/internal/domain/record"
	"github.com/kailas-cloud/folio/internal/metrics"
	feeduc "github.com/kailas-cloud/folio/internal/usecase/feed"
	filteruc "github.com/kailas-cloud/folio/internal/usecase/filter"
	healthuc "github.com/kailas-cloud/folio/internal/usecase/health"
	prefuc "github.com/kailas-cloud/folio/internal/usecase/preference"
)

// Catalog reads the content catalog.
type Catalog interface {
	Get(ctx context.Context, id string) (domrec.Record, error)
	Categories(ctx context.Context, kind domrec.Kind) []string
	Len() int
}

// Reloader re-reads the catalog from its source.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Services bundles the usecases the server dispatches to.
type Services struct {
	Filter      *filteruc.Service
	Preferences *prefuc.Service
	Feed        *feeduc.Service
	Health      *healthuc.Service
	Catalog     Catalog
	Reloader    Reloader // optional; nil disables POST /admin/reload
	Playlist    playlist.Playlist
	Menu        nav.Menu
}

// Server serves the HTML pages and the JSON API.
type Server struct {
	Services
	pages         *template.Template
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP server. A zero Menu is replaced by nav.DefaultMenu.
func NewServer(svc Services, logger *zap.Logger) *Server {
	if len(svc.Menu) == 0 {
		svc.Menu = nav.DefaultMenu()
	}
	return &Server{
		Services:      svc,
		pages:         parsePages(),
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// RouterOptions configures middleware around the routes.
type RouterOptions struct {
	APIKeys      []string
	CookieName   string
	CookieMaxAge time.Duration
}

// NewRouter mounts every route with the standard middleware chain.
func NewRouter(s *Server, opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(JSONRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(WideEventMiddleware(s.logger))
	r.Use(metrics.Middleware())

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Group(func(r chi.Router) {
		r.Use(VisitorMiddleware(opts.CookieName, opts.CookieMaxAge))

		r.Get("/", s.HomePage)
		r.Get("/blog", s.BlogPage)
		r.Post("/blog", s.CommitBlogPreference)
		r.Get("/about", s.AboutPage)
		r.Get("/posts/{id}", s.PostPage)

		r.Route("/api", func(r chi.Router) {
			r.Get("/cards", s.ListCards)
			r.Get("/posts", s.ListPosts)
			r.Get("/preferences/{setting}", s.GetPreference)
			r.Put("/preferences/{setting}", s.PutPreference)
			r.Get("/player", s.Player)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(opts.APIKeys))
		r.Post("/reload", s.ReloadCatalog)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeBadRequest, "route not found")
	})
	return r
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.Health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// ReloadCatalog handles POST /admin/reload.
func (s *Server) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if s.Reloader == nil {
		writeError(w, http.StatusNotFound, codeBadRequest, "catalog reload is not configured")
		return
	}
	if err := s.Reloader.Reload(r.Context()); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reloadResponse{Records: s.Catalog.Len()})
}

// setting looks up a preference by its durable name. The category domain
// follows the current catalog.
func (s *Server) setting(ctx context.Context, name string) (dompref.Setting, error) {
	switch name {
	case dompref.Layout.Name:
		return dompref.Layout, nil
	case dompref.Category.Name:
		return dompref.CategorySetting(s.Catalog.Categories(ctx, domrec.KindPost)), nil
	default:
		return dompref.Setting{}, fmt.Errorf("%w: %q", domain.ErrUnknownSetting, name)
	}
}
