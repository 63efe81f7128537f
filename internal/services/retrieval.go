package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/turath-search-api/internal/apperr"
	"github.com/turath-search-api/internal/esquery"
	"github.com/turath-search-api/internal/models"
	"github.com/turath-search-api/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// RetrievalResult is the tagged outcome of the tiered search: the tier
// that matched with its passages, or the empty terminal state (Tier ""
// and no passages). Empty is not an error.
type RetrievalResult struct {
	Tier     esquery.Tier
	Passages []models.Passage
	Total    int64
}

// RetrievalService executes candidate queries against the index, falling
// back to looser tiers only when a stricter one matches nothing.
type RetrievalService struct {
	repo    repository.PassageSearchRepository
	builder *esquery.Builder
}

// NewRetrievalService creates the service with its injected dependencies.
func NewRetrievalService(repo repository.PassageSearchRepository, builder *esquery.Builder) *RetrievalService {
	return &RetrievalService{repo: repo, builder: builder}
}

// Retrieve runs the fallback sequence. Tiers are tried strictly in
// order; the first tier with at least one hit is returned and later
// tiers are never consulted. Pagination applies identically at every
// tier. Engine failures surface immediately; the fallback loosens query
// shape, it does not retry transport errors.
func (s *RetrievalService) Retrieve(ctx context.Context, req models.SearchRequest) (*RetrievalResult, error) {
	if req.Query == "" && req.Author == "" {
		return nil, apperr.Validation("يرجى إدخال استعلام أو اسم مؤلف.")
	}

	from := req.From
	if from < 0 {
		from = 0
	}
	size := req.Size
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	for _, tier := range s.builder.Tiers(req.Query, req.Author) {
		body := esquery.Body{
			Query: tier.Query,
			From:  esquery.Int(from),
			Size:  esquery.Int(size),
			Sort:  []esquery.Sort{esquery.ByScoreDesc()},
		}

		res, err := s.repo.Search(ctx, body)
		if err != nil {
			return nil, err
		}

		if len(res.Hits) > 0 {
			passages, err := normalizeHits(res.Hits)
			if err != nil {
				return nil, err
			}
			log.Debug().
				Str("tier", string(tier.Tier)).
				Int("hits", len(passages)).
				Int64("total", res.Total).
				Msg("retrieval matched")
			return &RetrievalResult{Tier: tier.Tier, Passages: passages, Total: res.Total}, nil
		}

		log.Debug().Str("tier", string(tier.Tier)).Msg("no results at tier")
	}

	return &RetrievalResult{Passages: []models.Passage{}}, nil
}
