package chi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/folio/internal/domain/nav"
	"github.com/kailas-cloud/folio/internal/domain/playlist"
	dompref "github.com/kailas-cloud/folio/internal/domain/preference"
	domrec "github.com/kailas-cloud/folio/internal/domain/record"
	"github.com/kailas-cloud/folio/internal/logger"
	"github.com/kailas-cloud/folio/internal/urlstate"
)

//go:embed templates/*.html
var templateFS embed.FS

func parsePages() *template.Template {
	return template.Must(template.New("pages").ParseFS(templateFS, "templates/*.html"))
}

type pageData struct {
	Title string
	Menu  nav.Menu
}

type homeData struct {
	pageData
	Query string
	Cards []domrec.Record
}

type blogOption struct {
	Value  string
	Active bool
}

type blogData struct {
	pageData
	Action      string
	Layout      string
	Layouts     []blogOption
	Category    string
	Categories  []blogOption
	Posts       []domrec.Record
	Total       int
	LoadMoreURL string
}

type aboutData struct {
	pageData
	Current int
	Track   playlist.Track
	Tracks  []playlist.Track
	NextURL string
	PrevURL string
}

type postData struct {
	pageData
	Post domrec.Record
}

type errorData struct {
	pageData
	Status  int
	Message string
}

func (s *Server) base(title, path string) pageData {
	return pageData{Title: title, Menu: s.Menu.Activate(path)}
}

// HomePage handles GET /?q=.
func (s *Server) HomePage(w http.ResponseWriter, r *http.Request) {
	ctx, view := withViewState(r.Context())
	q := r.URL.Query().Get("q")
	s.Filter.Cards(ctx, q)

	s.render(w, r, http.StatusOK, "home", &homeData{
		pageData: s.base("Home", r.URL.Path),
		Query:    q,
		Cards:    view.Matched(),
	})
}

// BlogPage handles GET /blog?category=&layout=&offset=.
// Layout and category are restored from the URL first, then the visitor's
// remembered choice.
func (s *Server) BlogPage(w http.ResponseWriter, r *http.Request) {
	ctx, view := withViewState(r.Context())
	visitor := VisitorFromContext(ctx)
	current := urlstate.New(r.URL)

	category, err := s.setting(ctx, dompref.Category.Name)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.Preferences.Resolve(ctx, visitor, dompref.Layout, current)
	s.Preferences.Resolve(ctx, visitor, category, current)

	layout := orDefault(view.Preference(dompref.Layout.Name).String(), dompref.LayoutGrid)
	selected := orDefault(view.Preference(category.Name).String(), dompref.CategoryAll)

	offset, err := intParam(r.URL.Query().Get("offset"))
	if err != nil {
		offset = 0
	}
	page := s.Feed.Loaded(ctx, selected, offset)

	data := blogData{
		pageData:   s.base("Blog", r.URL.Path),
		Action:     current.URL(),
		Layout:     layout,
		Layouts:    options(dompref.Layout.Domain, layout),
		Category:   selected,
		Categories: options(category.Domain, selected),
		Posts:      page.Records,
		Total:      page.Total,
	}
	if !page.Exhausted {
		more := urlstate.New(r.URL)
		more.Set(dompref.Category.URLParam, selected)
		if selected == dompref.CategoryAll {
			more.Clear(dompref.Category.URLParam)
		}
		more.Set("offset", strconv.Itoa(page.NextOffset))
		data.LoadMoreURL = more.URL()
	}

	s.render(w, r, http.StatusOK, "blog", &data)
}

// CommitBlogPreference handles POST /blog (form fields setting, value).
// It commits the choice and redirects to the updated page URL.
func (s *Server) CommitBlogPreference(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, err)
		return
	}
	setting, err := s.setting(r.Context(), r.PostForm.Get("setting"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	page := urlstate.New(r.URL)
	page.Clear("offset")
	visitor := VisitorFromContext(r.Context())
	if err := s.Preferences.Commit(r.Context(), visitor, setting, r.PostForm.Get("value"), page); err != nil {
		s.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, page.URL(), http.StatusSeeOther)
}

// AboutPage handles GET /about?track=.
func (s *Server) AboutPage(w http.ResponseWriter, r *http.Request) {
	index, err := intParam(r.URL.Query().Get("track"))
	if err != nil {
		index = -1
	}
	track, err := s.Playlist.Select(index)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	next, _ := s.Playlist.Next(index)
	prev, _ := s.Playlist.Prev(index)

	s.render(w, r, http.StatusOK, "about", &aboutData{
		pageData: s.base("About", r.URL.Path),
		Current:  index,
		Track:    track,
		Tracks:   s.Playlist.Tracks(),
		NextURL:  trackURL(r, next),
		PrevURL:  trackURL(r, prev),
	})
}

// PostPage handles GET /posts/{id}.
func (s *Server) PostPage(w http.ResponseWriter, r *http.Request) {
	post, err := s.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "post", &postData{
		pageData: s.base(post.Title(), "/blog"),
		Post:     post,
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromContext(r.Context()).Error("render page", zap.String("page", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	log := logger.FromContext(r.Context())
	if status == http.StatusInternalServerError {
		log.Error("page error", zap.Error(err))
	} else {
		log.Warn("page error", zap.Error(err))
	}
	s.render(w, r, status, "error", &errorData{
		pageData: s.base(http.StatusText(status), r.URL.Path),
		Status:   status,
		Message:  safeDomainMessage(err),
	})
}

func options(values []string, active string) []blogOption {
	out := make([]blogOption, len(values))
	for i, v := range values {
		out[i] = blogOption{Value: v, Active: v == active}
	}
	return out
}

func trackURL(r *http.Request, index int) string {
	q := urlstate.New(r.URL)
	q.Set("track", strconv.Itoa(index))
	return q.URL()
}
