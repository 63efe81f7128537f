package repository

import (
	"context"
	"encoding/json"

	"github.com/turath-search-api/internal/esquery"
)

// Hit is one ranked document returned by the search engine.
type Hit struct {
	Score  float64
	Source json.RawMessage
}

// SearchResult is the ranked hit list for one query.
type SearchResult struct {
	Total int64
	Hits  []Hit
}

// PassageSearchRepository defines operations against the full-text index.
type PassageSearchRepository interface {
	// Search executes a query-DSL request body and returns the ranked hits
	Search(ctx context.Context, body esquery.Body) (*SearchResult, error)

	// Ping verifies the index is reachable
	Ping(ctx context.Context) error
}
