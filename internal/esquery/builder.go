package esquery

import (
	"fmt"

	"github.com/turath-search-api/internal/config"
)

// Tier is one precision level of the fallback sequence.
type Tier string

const (
	// TierStrict weights an exact phrase match above everything else
	TierStrict Tier = "strict"
	// TierBroad drops the phrase clause, keeping term and fuzzy matches
	TierBroad Tier = "broad"
)

// TierQuery pairs a tier with its constructed query.
type TierQuery struct {
	Tier  Tier
	Query Query
}

// Builder composes layered boosted queries over the corpus fields.
type Builder struct {
	boosts config.Boosts
}

// NewBuilder creates a builder with the given boost weights.
func NewBuilder(boosts config.Boosts) *Builder {
	return &Builder{boosts: boosts}
}

// Tiers returns the candidate queries ordered from most to least precise.
// The executor tries them in order and stops at the first non-empty
// result set.
func (b *Builder) Tiers(query, author string) []TierQuery {
	return []TierQuery{
		{Tier: TierStrict, Query: b.Build(query, author, TierStrict)},
		{Tier: TierBroad, Query: b.Build(query, author, TierBroad)},
	}
}

// Build composes the query for one tier. The query side and the author
// side are each grouped under should with minimum_should_match 1, then
// combined under must so both sides independently constrain the result.
// With neither side present the query degrades to match_all.
func (b *Builder) Build(query, author string, tier Tier) Query {
	var must []Query

	if query != "" {
		var should []Query
		if tier == TierStrict {
			should = append(should, MatchPhrase{
				Field: "text_content",
				Query: query,
				Boost: b.boosts.TextPhrase,
			})
		}
		for _, term := range Tokenize(query) {
			should = append(should, Match{
				Field:    "text_content",
				Query:    term,
				Operator: "and",
				Boost:    b.boosts.TextTerm,
			})
		}
		should = append(should, MultiMatch{
			Query: query,
			Fields: []string{
				boostedField("text_content.partial", b.boosts.PartialField),
				boostedField("book_title", b.boosts.TitleField),
				boostedField("author_name", b.boosts.AuthorField),
			},
			Type:      "best_fields",
			Fuzziness: "AUTO",
			Operator:  "or",
		})
		must = append(must, Bool{Should: should, MinimumShouldMatch: 1})
	}

	if author != "" {
		should := []Query{
			MultiMatch{
				Query: author,
				Fields: []string{
					boostedField("author_name", b.boosts.AuthorExact),
					boostedField("author_name.ngram", b.boosts.AuthorNgram),
				},
				Type:      "best_fields",
				Fuzziness: "AUTO",
			},
			MatchPhrase{
				Field: "author_name",
				Query: author,
				Boost: b.boosts.AuthorPhrase,
			},
		}
		must = append(must, Bool{Should: should, MinimumShouldMatch: 1})
	}

	if len(must) == 0 {
		return MatchAll{}
	}
	return Bool{Must: must}
}

func boostedField(field string, boost float64) string {
	return fmt.Sprintf("%s^%g", field, boost)
}
