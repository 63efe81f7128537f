package esquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turath-search-api/internal/config"
)

func testBoosts() config.Boosts {
	return config.Boosts{
		TextPhrase:   200,
		AuthorPhrase: 150,
		TextTerm:     0.5,
		PartialField: 1,
		TitleField:   1.5,
		AuthorField:  1.2,
		AuthorExact:  5,
		AuthorNgram:  3,
	}
}

func TestBuildStrictTier(t *testing.T) {
	b := NewBuilder(testBoosts())

	q := b.Build("حديث الرحمة", "", TierStrict)

	root, ok := q.(Bool)
	require.True(t, ok)
	require.Len(t, root.Must, 1)

	group, ok := root.Must[0].(Bool)
	require.True(t, ok)
	assert.Equal(t, 1, group.MinimumShouldMatch)

	// phrase first, one AND-term per token, fuzzy multi_match last
	require.Len(t, group.Should, 4)

	phrase, ok := group.Should[0].(MatchPhrase)
	require.True(t, ok)
	assert.Equal(t, "text_content", phrase.Field)
	assert.Equal(t, "حديث الرحمة", phrase.Query)
	assert.Equal(t, 200.0, phrase.Boost)

	for _, clause := range group.Should[1:3] {
		term, ok := clause.(Match)
		require.True(t, ok)
		assert.Equal(t, "text_content", term.Field)
		assert.Equal(t, "and", term.Operator)
		assert.Equal(t, 0.5, term.Boost)
	}

	fuzzy, ok := group.Should[3].(MultiMatch)
	require.True(t, ok)
	assert.Equal(t, "AUTO", fuzzy.Fuzziness)
	assert.Equal(t, "or", fuzzy.Operator)
	assert.Equal(t, []string{"text_content.partial^1", "book_title^1.5", "author_name^1.2"}, fuzzy.Fields)
}

func TestBuildBroadTierDropsPhrase(t *testing.T) {
	b := NewBuilder(testBoosts())

	q := b.Build("حديث الرحمة", "", TierBroad)

	group := q.(Bool).Must[0].(Bool)
	require.Len(t, group.Should, 3)
	_, isPhrase := group.Should[0].(MatchPhrase)
	assert.False(t, isPhrase, "broad tier must not carry a phrase clause")
}

func TestBuildAuthorSide(t *testing.T) {
	b := NewBuilder(testBoosts())

	q := b.Build("", "القاضي عياض", TierStrict)

	root := q.(Bool)
	require.Len(t, root.Must, 1)

	group := root.Must[0].(Bool)
	require.Len(t, group.Should, 2)

	fuzzy, ok := group.Should[0].(MultiMatch)
	require.True(t, ok)
	assert.Equal(t, []string{"author_name^5", "author_name.ngram^3"}, fuzzy.Fields)
	assert.Equal(t, "AUTO", fuzzy.Fuzziness)

	phrase, ok := group.Should[1].(MatchPhrase)
	require.True(t, ok)
	assert.Equal(t, "author_name", phrase.Field)
	assert.Equal(t, 150.0, phrase.Boost)
}

func TestBuildBothSidesCombinedUnderMust(t *testing.T) {
	b := NewBuilder(testBoosts())

	q := b.Build("الرحمة", "القاضي عياض", TierStrict)

	root := q.(Bool)
	// both sides must independently match
	assert.Len(t, root.Must, 2)
}

func TestBuildEmptyDegradesToMatchAll(t *testing.T) {
	b := NewBuilder(testBoosts())

	assert.Equal(t, MatchAll{}, b.Build("", "", TierStrict))
	assert.Equal(t, MatchAll{}, b.Build("", "", TierBroad))
}

// The ranking contract: an exact textual phrase match outranks an author
// phrase match, which outranks every fuzzy multi-field weight, which in
// turn outranks the per-term AND match. Magnitudes are tunable, the
// ordering is not.
func TestBoostOrderingInvariant(t *testing.T) {
	boosts := testBoosts()
	assert.Greater(t, boosts.TextPhrase, boosts.AuthorPhrase)
	assert.Greater(t, boosts.AuthorPhrase, boosts.AuthorExact)
	assert.Greater(t, boosts.AuthorExact, boosts.AuthorNgram)
	assert.Greater(t, boosts.AuthorNgram, boosts.TitleField)
	assert.Greater(t, boosts.TitleField, boosts.AuthorField)
	assert.Greater(t, boosts.AuthorField, boosts.PartialField)
	assert.Greater(t, boosts.PartialField, boosts.TextTerm)
}

func TestTiersOrderedStrictFirst(t *testing.T) {
	b := NewBuilder(testBoosts())

	tiers := b.Tiers("الرحمة", "")
	require.Len(t, tiers, 2)
	assert.Equal(t, TierStrict, tiers[0].Tier)
	assert.Equal(t, TierBroad, tiers[1].Tier)
}
