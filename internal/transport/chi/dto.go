package chi

import (
	"github.com/kailas-cloud/folio/internal/domain/playlist"
	domrec "github.com/kailas-cloud/folio/internal/domain/record"
	feeduc "github.com/kailas-cloud/folio/internal/usecase/feed"
	healthuc "github.com/kailas-cloud/folio/internal/usecase/health"
)

type recordResponse struct {
	ID          string   `json:"id,omitempty"`
	Kind        string   `json:"kind"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Category    string   `json:"category,omitempty"`
	Date        string   `json:"date,omitempty"`
	Views       int      `json:"views,omitempty"`
	Href        string   `json:"href,omitempty"`
}

type cardsResponse struct {
	Query string           `json:"query"`
	Items []recordResponse `json:"items"`
	Total int              `json:"total"`
}

type postsResponse struct {
	Category   string           `json:"category"`
	Items      []recordResponse `json:"items"`
	Offset     int              `json:"offset"`
	NextOffset int              `json:"next_offset"`
	Total      int              `json:"total"`
	Exhausted  bool             `json:"exhausted"`
}

type preferenceResponse struct {
	Setting string `json:"setting"`
	Value   string `json:"value"`
	Present bool   `json:"present"`
}

type commitRequest struct {
	Value string `json:"value"`
	URL   string `json:"url"`
}

type commitResponse struct {
	Setting string `json:"setting"`
	Value   string `json:"value"`
	URL     string `json:"url"`
}

type trackResponse struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Featured string `json:"featured,omitempty"`
}

type playerResponse struct {
	Index int             `json:"index"`
	Track trackResponse   `json:"track"`
	Next  int             `json:"next"`
	Prev  int             `json:"prev"`
	Total int             `json:"total"`
	Queue []trackResponse `json:"queue"`
}

type healthResponse struct {
	Status string                          `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

type reloadResponse struct {
	Records int `json:"records"`
}

func recordToResponse(r *domrec.Record) recordResponse {
	return recordResponse{
		ID:          r.ID(),
		Kind:        string(r.Kind()),
		Title:       r.Title(),
		Description: r.Description(),
		Tags:        r.Tags(),
		Category:    r.Category(),
		Date:        r.Date(),
		Views:       r.Views(),
		Href:        r.Href(),
	}
}

func recordsToResponse(rs []domrec.Record) []recordResponse {
	out := make([]recordResponse, len(rs))
	for i := range rs {
		out[i] = recordToResponse(&rs[i])
	}
	return out
}

func pageToResponse(category string, p feeduc.Page) postsResponse {
	return postsResponse{
		Category:   category,
		Items:      recordsToResponse(p.Records),
		Offset:     p.Offset,
		NextOffset: p.NextOffset,
		Total:      p.Total,
		Exhausted:  p.Exhausted,
	}
}

func trackToResponse(t playlist.Track) trackResponse {
	return trackResponse{Title: t.Title, Artist: t.Artist, Featured: t.Featured}
}
