package query

import "strings"

// AllCategories is the reserved category token meaning "no filter".
const AllCategories = "all"

// FreeText is a lowercase, whitespace-trimmed search term.
type FreeText struct {
	term string
}

// NewFreeText normalizes raw user input into a FreeText query.
// Whitespace-only input yields the empty (match everything) query.
func NewFreeText(raw string) FreeText {
	return FreeText{term: strings.ToLower(strings.TrimSpace(raw))}
}

// Term returns the normalized term.
func (q FreeText) Term() string { return q.term }

// IsEmpty reports whether the query filters nothing.
func (q FreeText) IsEmpty() bool { return q.term == "" }

// Category is an exact-match category token.
type Category struct {
	token string
}

// NewCategory creates a Category query. The token is matched case-sensitively,
// surrounding whitespace is dropped.
func NewCategory(token string) Category {
	return Category{token: strings.TrimSpace(token)}
}

// Token returns the category token; empty and "all" both mean no filter.
func (c Category) Token() string { return c.token }

// IsAll reports whether the query filters nothing.
func (c Category) IsAll() bool { return c.token == "" || c.token == AllCategories }
