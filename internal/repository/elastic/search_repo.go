// Package elastic implements the passage search repository against an
// Elasticsearch index.
package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/turath-search-api/internal/apperr"
	"github.com/turath-search-api/internal/esquery"
	"github.com/turath-search-api/internal/repository"
)

// Ensure SearchRepository implements repository.PassageSearchRepository
var _ repository.PassageSearchRepository = (*SearchRepository)(nil)

// Config holds the Elasticsearch connection settings.
type Config struct {
	CloudID   string
	Addresses []string
	Username  string
	Password  string
	Index     string
	Timeout   time.Duration
}

// SearchRepository talks to one Elasticsearch index. The client is
// long-lived and safe for concurrent use.
type SearchRepository struct {
	client  *elasticsearch.Client
	index   string
	timeout time.Duration
}

// NewSearchRepository creates the repository. It does not contact the
// engine; call Ping before serving.
func NewSearchRepository(cfg Config) (*SearchRepository, error) {
	if cfg.CloudID == "" && len(cfg.Addresses) == 0 {
		return nil, fmt.Errorf("elasticsearch configuration missing: set CLOUD_ID or ELASTIC_ADDRESSES")
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		CloudID:   cfg.CloudID,
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SearchRepository{client: client, index: cfg.Index, timeout: timeout}, nil
}

// Ping verifies connectivity and credentials.
func (r *SearchRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.client.Ping(r.client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("ping elasticsearch: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("ping elasticsearch: %s", res.Status())
	}
	return nil
}

// esEnvelope is the slice of the search response this system reads.
type esEnvelope struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			Score  float64         `json:"_score"`
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search executes the body against the index. Transport failures, error
// statuses and malformed responses all surface as SearchUnavailable;
// they are never retried here.
func (r *SearchRepository) Search(ctx context.Context, body esquery.Body) (*repository.SearchResult, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return nil, apperr.SearchUnavailable(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, apperr.SearchUnavailable(fmt.Errorf("search returned %s", res.Status()))
	}

	var env esEnvelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, apperr.SearchUnavailable(fmt.Errorf("decode search response: %w", err))
	}

	result := &repository.SearchResult{
		Total: env.Hits.Total.Value,
		Hits:  make([]repository.Hit, len(env.Hits.Hits)),
	}
	for i, h := range env.Hits.Hits {
		result.Hits[i] = repository.Hit{Score: h.Score, Source: h.Source}
	}
	return result, nil
}
