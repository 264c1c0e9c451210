package filter

import (
	"github.com/kailas-cloud/folio/internal/domain/query"
	domrec "github.com/kailas-cloud/folio/internal/domain/record"
)

// MatchFreeText keeps records whose title, description, category or any tag
// contains the query term. An empty query returns the input unchanged.
// The result preserves input order.
func MatchFreeText(records []domrec.Record, q query.FreeText) []domrec.Record {
	if q.IsEmpty() {
		return records
	}
	out := make([]domrec.Record, 0, len(records))
	for i := range records {
		if records[i].Contains(q.Term()) {
			out = append(out, records[i])
		}
	}
	return out
}

// MatchCategory keeps records whose category equals the token exactly.
// "all" and the empty token return the input unchanged.
func MatchCategory(records []domrec.Record, c query.Category) []domrec.Record {
	if c.IsAll() {
		return records
	}
	out := make([]domrec.Record, 0, len(records))
	for i := range records {
		if records[i].Category() == c.Token() {
			out = append(out, records[i])
		}
	}
	return out
}
