// Package esquery builds Elasticsearch query-DSL request bodies from typed
// clause values, so query construction can be unit-tested without a live
// engine.
package esquery

import "encoding/json"

// Query is one node of the query DSL tree.
type Query interface {
	// Map renders the node as the JSON object Elasticsearch expects.
	Map() map[string]any
}

// MatchAll matches every document.
type MatchAll struct{}

func (MatchAll) Map() map[string]any {
	return map[string]any{"match_all": map[string]any{}}
}

// Match is a single-field analyzed match clause.
type Match struct {
	Field    string
	Query    string
	Operator string // "and" or "or"; empty leaves the engine default
	Boost    float64
	Analyzer string
}

func (m Match) Map() map[string]any {
	params := map[string]any{"query": m.Query}
	if m.Operator != "" {
		params["operator"] = m.Operator
	}
	if m.Boost != 0 {
		params["boost"] = m.Boost
	}
	if m.Analyzer != "" {
		params["analyzer"] = m.Analyzer
	}
	return map[string]any{"match": map[string]any{m.Field: params}}
}

// MatchPhrase requires the query terms to appear contiguously in the field.
type MatchPhrase struct {
	Field string
	Query string
	Boost float64
}

func (m MatchPhrase) Map() map[string]any {
	params := map[string]any{"query": m.Query}
	if m.Boost != 0 {
		params["boost"] = m.Boost
	}
	return map[string]any{"match_phrase": map[string]any{m.Field: params}}
}

// MultiMatch matches across several fields; per-field boosts are carried
// in the field names ("book_title^1.5").
type MultiMatch struct {
	Query     string
	Fields    []string
	Type      string // e.g. "best_fields"
	Fuzziness string // e.g. "AUTO"
	Operator  string
	Analyzer  string
}

func (m MultiMatch) Map() map[string]any {
	params := map[string]any{
		"query":  m.Query,
		"fields": m.Fields,
	}
	if m.Type != "" {
		params["type"] = m.Type
	}
	if m.Fuzziness != "" {
		params["fuzziness"] = m.Fuzziness
	}
	if m.Operator != "" {
		params["operator"] = m.Operator
	}
	if m.Analyzer != "" {
		params["analyzer"] = m.Analyzer
	}
	return map[string]any{"multi_match": params}
}

// Term matches an exact, unanalyzed value.
type Term struct {
	Field string
	Value any
}

func (t Term) Map() map[string]any {
	return map[string]any{"term": map[string]any{t.Field: t.Value}}
}

// Range matches values strictly greater or strictly less than a bound.
type Range struct {
	Field string
	GT    any
	LT    any
}

func (r Range) Map() map[string]any {
	bounds := map[string]any{}
	if r.GT != nil {
		bounds["gt"] = r.GT
	}
	if r.LT != nil {
		bounds["lt"] = r.LT
	}
	return map[string]any{"range": map[string]any{r.Field: bounds}}
}

// Bool combines clauses: must (all match, scored), should (at least
// MinimumShouldMatch match), filter (all match, unscored).
type Bool struct {
	Must               []Query
	Should             []Query
	Filter             []Query
	MinimumShouldMatch int
}

func (b Bool) Map() map[string]any {
	inner := map[string]any{}
	if len(b.Must) > 0 {
		inner["must"] = mapAll(b.Must)
	}
	if len(b.Should) > 0 {
		inner["should"] = mapAll(b.Should)
	}
	if len(b.Filter) > 0 {
		inner["filter"] = mapAll(b.Filter)
	}
	if b.MinimumShouldMatch > 0 {
		inner["minimum_should_match"] = b.MinimumShouldMatch
	}
	return map[string]any{"bool": inner}
}

func mapAll(qs []Query) []map[string]any {
	out := make([]map[string]any, len(qs))
	for i, q := range qs {
		out[i] = q.Map()
	}
	return out
}

// Sort is one sort criterion of a request body.
type Sort struct {
	Field string
	Order string // "asc" or "desc"
}

// ByScoreDesc sorts by relevance score, best first.
func ByScoreDesc() Sort {
	return Sort{Field: "_score", Order: "desc"}
}

// Body is a complete search request body.
type Body struct {
	Query    Query
	From     *int
	Size     *int
	Sort     []Sort
	Source   []string
	MinScore float64
}

// Int is a convenience for the optional From/Size fields.
func Int(n int) *int { return &n }

func (b Body) Map() map[string]any {
	out := map[string]any{"query": b.Query.Map()}
	if b.From != nil {
		out["from"] = *b.From
	}
	if b.Size != nil {
		out["size"] = *b.Size
	}
	if len(b.Sort) > 0 {
		sorts := make([]map[string]any, len(b.Sort))
		for i, s := range b.Sort {
			sorts[i] = map[string]any{s.Field: map[string]any{"order": s.Order}}
		}
		out["sort"] = sorts
	}
	if len(b.Source) > 0 {
		out["_source"] = b.Source
	}
	if b.MinScore != 0 {
		out["min_score"] = b.MinScore
	}
	return out
}

// MarshalJSON renders the body as the engine's wire format.
func (b Body) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Map())
}
