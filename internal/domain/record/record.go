package record

import (
	"fmt"
	"regexp"
	"strings"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Kind distinguishes landing-page cards from blog posts.
type Kind string

const (
	// KindCard is a content card on the landing page.
	KindCard Kind = "card"
	// KindPost is a blog post card.
	KindPost Kind = "post"
)

// IsValid checks if the kind is supported.
func (k Kind) IsValid() bool {
	return k == KindCard || k == KindPost
}

// Record is one filterable unit of content (immutable value object).
// Only title, description, tags and category take part in filtering;
// the remaining fields are carried for rendering.
type Record struct {
	id          string
	kind        Kind
	title       string
	description string
	tags        []string
	category    string
	date        string
	views       int
	href        string
}

// Fields holds the raw values a Record is built from.
type Fields struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	Tags        []string
	Category    string
	Date        string
	Views       int
	Href        string
}

// New validates and creates a Record.
// ID is optional; when set it must match ^[a-zA-Z0-9_-]+$. Kind defaults to card.
// Missing text fields are kept as empty values.
func New(f Fields) (Record, error) {
	if f.Kind == "" {
		f.Kind = KindCard
	}
	if !f.Kind.IsValid() {
		return Record{}, fmt.Errorf("invalid record kind: %q", f.Kind)
	}
	if f.ID != "" && !idRegex.MatchString(f.ID) {
		return Record{}, fmt.Errorf("record ID must be alphanumeric with underscores and hyphens")
	}
	if f.Views < 0 {
		return Record{}, fmt.Errorf("views must not be negative")
	}
	return Reconstruct(f), nil
}

// Reconstruct creates a Record without validation (storage hydration).
func Reconstruct(f Fields) Record {
	return Record{
		id:          f.ID,
		kind:        f.Kind,
		title:       f.Title,
		description: f.Description,
		tags:        cloneStrings(f.Tags),
		category:    f.Category,
		date:        f.Date,
		views:       f.Views,
		href:        f.Href,
	}
}

// ID returns the record slug.
func (r *Record) ID() string { return r.id }

// Kind returns the record kind.
func (r *Record) Kind() Kind { return r.kind }

// Title returns the record title.
func (r *Record) Title() string { return r.title }

// Description returns the record description.
func (r *Record) Description() string { return r.description }

// Tags returns a copy of the ordered tag list.
func (r *Record) Tags() []string { return cloneStrings(r.tags) }

// Category returns the single category token.
func (r *Record) Category() string { return r.category }

// Date returns the display date.
func (r *Record) Date() string { return r.date }

// Views returns the view counter.
func (r *Record) Views() int { return r.views }

// Href returns the link target, if any.
func (r *Record) Href() string { return r.href }

// Fields returns the raw values of the record.
func (r *Record) Fields() Fields {
	return Fields{
		ID: r.id, Kind: r.kind, Title: r.title, Description: r.description,
		Tags: cloneStrings(r.tags), Category: r.category, Date: r.date, Views: r.views, Href: r.href,
	}
}

// Contains reports whether the lowercase needle occurs in the lowercase
// title, description, category or any tag.
func (r *Record) Contains(needle string) bool {
	if strings.Contains(strings.ToLower(r.title), needle) ||
		strings.Contains(strings.ToLower(r.description), needle) ||
		strings.Contains(strings.ToLower(r.category), needle) {
		return true
	}
	for _, t := range r.tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}
