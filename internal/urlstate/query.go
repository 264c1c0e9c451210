// Package urlstate is the transient preference store: the query string of the
// page the visitor is on. Writes produce a replacement URL for in-place
// history updates, never a new navigation entry.
package urlstate

import (
	"net/url"
)

// Query is a mutable copy of a request URL.
type Query struct {
	path   string
	values url.Values
}

// New copies u so writes never touch the caller's URL.
func New(u *url.URL) *Query {
	q := &Query{values: url.Values{}}
	if u == nil {
		return q
	}
	q.path = u.Path
	for k, vs := range u.Query() {
		q.values[k] = append([]string(nil), vs...)
	}
	return q
}

// Parse builds a Query from a raw URL string.
func Parse(raw string) (*Query, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return New(u), nil
}

// Get returns the first value of param. An empty value counts as absent.
func (q *Query) Get(param string) (string, bool) {
	v := q.values.Get(param)
	return v, v != ""
}

// Set replaces param with a single value.
func (q *Query) Set(param, value string) {
	q.values.Set(param, value)
}

// Clear removes param.
func (q *Query) Clear(param string) {
	q.values.Del(param)
}

// URL returns the path plus encoded query, suitable for history.replaceState.
func (q *Query) URL() string {
	if len(q.values) == 0 {
		return q.path
	}
	return q.path + "?" + q.values.Encode()
}
