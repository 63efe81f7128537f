package services

import (
	"encoding/json"
	"fmt"

	"github.com/turath-search-api/internal/apperr"
	"github.com/turath-search-api/internal/models"
	"github.com/turath-search-api/internal/repository"
)

// passageSource is the _source shape of an index hit. Pointers
// distinguish absent fields so placeholders can be substituted.
type passageSource struct {
	BookTitle   *string        `json:"book_title"`
	AuthorName  *string        `json:"author_name"`
	PartNumber  models.Ordinal `json:"part_number"`
	PageNumber  models.Ordinal `json:"page_number"`
	TextContent *string        `json:"text_content"`
}

// normalizeHit maps a raw hit into the caller-facing Passage shape.
// Absent fields become fixed localized placeholders, never null.
func normalizeHit(hit repository.Hit) (models.Passage, error) {
	var src passageSource
	if err := json.Unmarshal(hit.Source, &src); err != nil {
		return models.Passage{}, apperr.SearchUnavailable(fmt.Errorf("decode hit source: %w", err))
	}

	p := models.Passage{
		BookTitle:  models.PlaceholderUnknown,
		AuthorName: models.PlaceholderUnknown,
		PartNumber: src.PartNumber,
		PageNumber: src.PageNumber,
	}
	if src.BookTitle != nil {
		p.BookTitle = *src.BookTitle
	}
	if src.AuthorName != nil {
		p.AuthorName = *src.AuthorName
	}
	if src.TextContent != nil {
		p.TextContent = *src.TextContent
	}
	return p, nil
}

// normalizeHits maps all hits, preserving the engine's ranking order.
func normalizeHits(hits []repository.Hit) ([]models.Passage, error) {
	passages := make([]models.Passage, len(hits))
	for i, hit := range hits {
		p, err := normalizeHit(hit)
		if err != nil {
			return nil, err
		}
		passages[i] = p
	}
	return passages, nil
}
