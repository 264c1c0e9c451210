package chi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kailas-cloud/folio/internal/urlstate"
)

// defaultPageURL is the page a preference write applies to when the client sends none.
const defaultPageURL = "/blog"

// ListCards handles GET /api/cards?q=.
func (s *Server) ListCards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	cards := s.Filter.Cards(r.Context(), q)
	writeJSON(w, http.StatusOK, cardsResponse{
		Query: q,
		Items: recordsToResponse(cards),
		Total: len(cards),
	})
}

// ListPosts handles GET /api/posts?category=&offset=&limit=.
func (s *Server) ListPosts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	offset, err := intParam(params.Get("offset"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "offset must be a non-negative integer")
		return
	}
	limit, err := intParam(params.Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "limit must be a non-negative integer")
		return
	}

	category := params.Get("category")
	page := s.Feed.Page(r.Context(), category, offset, limit)
	writeJSON(w, http.StatusOK, pageToResponse(category, page))
}

// GetPreference handles GET /api/preferences/{setting}?url=.
// url is the page whose query string acts as the transient store.
func (s *Server) GetPreference(w http.ResponseWriter, r *http.Request) {
	setting, err := s.setting(r.Context(), chi.URLParam(r, "setting"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	page, err := urlstate.Parse(orDefault(r.URL.Query().Get("url"), defaultPageURL))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "url is not a valid URL")
		return
	}

	v, ok := s.Preferences.Resolve(r.Context(), VisitorFromContext(r.Context()), setting, page).Get()
	writeJSON(w, http.StatusOK, preferenceResponse{Setting: setting.Name, Value: v, Present: ok})
}

// PutPreference handles PUT /api/preferences/{setting}.
// The replacement page URL is returned in X-Replace-URL and the body.
func (s *Server) PutPreference(w http.ResponseWriter, r *http.Request) {
	setting, err := s.setting(r.Context(), chi.URLParam(r, "setting"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	page, err := urlstate.Parse(orDefault(req.URL, defaultPageURL))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "url is not a valid URL")
		return
	}

	visitor := VisitorFromContext(r.Context())
	if err := s.Preferences.Commit(r.Context(), visitor, setting, req.Value, page); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.Header().Set("X-Replace-URL", page.URL())
	writeJSON(w, http.StatusOK, commitResponse{Setting: setting.Name, Value: req.Value, URL: page.URL()})
}

// Player handles GET /api/player?track=&step=next|prev.
func (s *Server) Player(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	index, err := intParam(params.Get("track"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "track must be a non-negative integer")
		return
	}

	switch params.Get("step") {
	case "":
	case "next":
		index, err = s.Playlist.Next(index)
	case "prev":
		index, err = s.Playlist.Prev(index)
	default:
		writeError(w, http.StatusBadRequest, codeBadRequest, "step must be next or prev")
		return
	}
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp, err := s.playerState(index)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) playerState(index int) (playerResponse, error) {
	track, err := s.Playlist.Select(index)
	if err != nil {
		return playerResponse{}, err
	}
	next, _ := s.Playlist.Next(index)
	prev, _ := s.Playlist.Prev(index)

	tracks := s.Playlist.Tracks()
	queue := make([]trackResponse, len(tracks))
	for i, t := range tracks {
		queue[i] = trackToResponse(t)
	}
	return playerResponse{
		Index: index,
		Track: trackToResponse(track),
		Next:  next,
		Prev:  prev,
		Total: len(tracks),
		Queue: queue,
	}, nil
}

// intParam parses an optional non-negative integer; empty means 0.
func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
