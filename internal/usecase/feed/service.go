// Package feed pages through category-filtered blog posts ("load more").
package feed

import (
	"context"

	domrec "github.com/kailas-cloud/folio/internal/domain/record"
)

// PostFilter narrows blog posts by category.
type PostFilter interface {
	Posts(ctx context.Context, category string) []domrec.Record
}

// Page is one batch of posts.
type Page struct {
	Records    []domrec.Record
	Offset     int
	NextOffset int
	Total      int
	// Exhausted is true once no posts remain after this page.
	Exhausted bool
}

// Service serves load-more batches.
type Service struct {
	posts       PostFilter
	pageSize    int
	maxPageSize int
}

// New creates a feed service. pageSize is used when a request gives no limit;
// larger limits are capped at maxPageSize.
func New(posts PostFilter, pageSize, maxPageSize int) *Service {
	if pageSize <= 0 {
		pageSize = 2
	}
	if maxPageSize < pageSize {
		maxPageSize = pageSize
	}
	return &Service{posts: posts, pageSize: pageSize, maxPageSize: maxPageSize}
}

// Page returns up to limit posts of category starting at offset.
// Offsets past the end yield an empty, exhausted page.
func (s *Service) Page(ctx context.Context, category string, offset, limit int) Page {
	if offset < 0 {
		offset = 0
	}
	switch {
	case limit <= 0:
		limit = s.pageSize
	case limit > s.maxPageSize:
		limit = s.maxPageSize
	}

	return window(s.posts.Posts(ctx, category), offset, offset+limit)
}

// Loaded returns every post a reader has on screen after loading up to
// offset: the first offset posts plus one more batch. maxPageSize does not
// apply; the result grows with each "load more".
func (s *Service) Loaded(ctx context.Context, category string, offset int) Page {
	if offset < 0 {
		offset = 0
	}
	return window(s.posts.Posts(ctx, category), 0, offset+s.pageSize)
}

func window(all []domrec.Record, offset, end int) Page {
	total := len(all)
	offset = min(offset, total)
	end = min(end, total)

	return Page{
		Records:    all[offset:end],
		Offset:     offset,
		NextOffset: end,
		Total:      total,
		Exhausted:  end >= total,
	}
}
