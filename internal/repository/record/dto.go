package record

import (
	"fmt"

	"github.com/kailas-cloud/folio/internal/domain"
	domrec "github.com/kailas-cloud/folio/internal/domain/record"
)

// Catalog is the on-disk YAML layout.
type Catalog struct {
	Cards []Entry `yaml:"cards"`
	Posts []Entry `yaml:"posts"`
}

// Entry is one catalog item.
type Entry struct {
	ID          string   `yaml:"id,omitempty"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Category    string   `yaml:"category,omitempty"`
	Date        string   `yaml:"date,omitempty"`
	Views       int      `yaml:"views,omitempty"`
	Href        string   `yaml:"href,omitempty"`
}

func (e Entry) toDomain(kind domrec.Kind) (domrec.Record, error) {
	r, err := domrec.New(domrec.Fields{
		ID:          e.ID,
		Kind:        kind,
		Title:       e.Title,
		Description: e.Description,
		Tags:        e.Tags,
		Category:    e.Category,
		Date:        e.Date,
		Views:       e.Views,
		Href:        e.Href,
	})
	if err != nil {
		return domrec.Record{}, fmt.Errorf("%w: %s %q: %w", domain.ErrInvalidRecord, kind, e.Title, err)
	}
	return r, nil
}

func entryFromDomain(r domrec.Record) Entry {
	f := r.Fields()
	return Entry{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Tags:        f.Tags,
		Category:    f.Category,
		Date:        f.Date,
		Views:       f.Views,
		Href:        f.Href,
	}
}

// Records converts the catalog to domain records: cards first, then posts.
func (c Catalog) Records() ([]domrec.Record, error) {
	out := make([]domrec.Record, 0, len(c.Cards)+len(c.Posts))
	for _, e := range c.Cards {
		r, err := e.toDomain(domrec.KindCard)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	for _, e := range c.Posts {
		r, err := e.toDomain(domrec.KindPost)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// CatalogFrom groups records back into the on-disk layout.
func CatalogFrom(records []domrec.Record) Catalog {
	var c Catalog
	for _, r := range records {
		if r.Kind() == domrec.KindPost {
			c.Posts = append(c.Posts, entryFromDomain(r))
			continue
		}
		c.Cards = append(c.Cards, entryFromDomain(r))
	}
	return c
}
