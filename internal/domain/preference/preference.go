// Package preference models named view settings and the precedence rule that
// merges a remembered value with a URL-derived one.
package preference

import "slices"

// Source tells which store an effective value came from.
type Source string

const (
	// SourceURL means the transient (URL) value won.
	SourceURL Source = "url"
	// SourceStored means the durable value won.
	SourceStored Source = "stored"
	// SourceNone means neither store held a valid value.
	SourceNone Source = "none"
)

// Value is an optional setting value. The zero Value is absent.
type Value struct {
	value string
	ok    bool
}

// Of returns a present Value.
func Of(v string) Value { return Value{value: v, ok: true} }

// Absent returns the "no preference" Value.
func Absent() Value { return Value{} }

// Get returns the value and whether it is present.
func (v Value) Get() (string, bool) { return v.value, v.ok }

// IsAbsent reports whether no value is held.
func (v Value) IsAbsent() bool { return !v.ok }

// String returns the value or an empty string when absent.
func (v Value) String() string { return v.value }

// Setting describes one named preference and how it is carried in the URL.
type Setting struct {
	// Name keys the durable store.
	Name string
	// URLParam is the query parameter of the transient store.
	URLParam string
	// Domain is the closed set of valid values.
	Domain []string
	// ClearOn, when set, is the domain member written as "no parameter" in the URL.
	ClearOn string
}

// Allows reports whether v belongs to the setting's domain.
func (s Setting) Allows(v string) bool {
	return slices.Contains(s.Domain, v)
}

// WithDomain returns a copy of the setting with a replaced domain.
func (s Setting) WithDomain(values []string) Setting {
	s.Domain = slices.Clone(values)
	return s
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	Value  Value
	Source Source
}

// Resolve applies the precedence rule: a transient value in the domain wins,
// then a durable value in the domain, else Absent. Out-of-domain values are
// treated as absent.
func Resolve(durable, transient Value, domain []string) Resolution {
	if v, ok := transient.Get(); ok && slices.Contains(domain, v) {
		return Resolution{Value: transient, Source: SourceURL}
	}
	if v, ok := durable.Get(); ok && slices.Contains(domain, v) {
		return Resolution{Value: durable, Source: SourceStored}
	}
	return Resolution{Value: Absent(), Source: SourceNone}
}
