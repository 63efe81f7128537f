package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/turath-search-api/internal/apperr"
	"github.com/turath-search-api/internal/esquery"
	"github.com/turath-search-api/internal/models"
	"github.com/turath-search-api/internal/repository"
)

// navMinScore filters out accidental weak matches of the analyzed
// book/author clauses.
const navMinScore = 0.1

// fullBookMaxPassages bounds how many passages one book fetch returns.
const fullBookMaxPassages = 10000

var passageSourceFields = []string{
	"book_title", "author_name", "part_number", "page_number", "text_content",
}

// NavigationService resolves positions within a book's paginated text.
type NavigationService struct {
	repo repository.PassageSearchRepository
}

// NewNavigationService creates the service.
func NewNavigationService(repo repository.PassageSearchRepository) *NavigationService {
	return &NavigationService{repo: repo}
}

// bookAuthorClauses matches a book tolerantly but exactly: each value
// must match across both the analyzed field and its keyword twin, so
// formatting differences do not break the lookup.
func bookAuthorClauses(bookTitle, authorName string) []esquery.Query {
	return []esquery.Query{
		esquery.MultiMatch{
			Query:    bookTitle,
			Fields:   []string{"book_title", "book_title.keyword"},
			Type:     "best_fields",
			Operator: "and",
			Analyzer: "arabic",
		},
		esquery.MultiMatch{
			Query:    authorName,
			Fields:   []string{"author_name", "author_name.keyword"},
			Type:     "best_fields",
			Operator: "and",
			Analyzer: "arabic",
		},
	}
}

// adjacencyFilter selects passages strictly after (or before) the cursor
// position under (part, page) lexicographic order: a later part, or the
// same part with a later page.
func adjacencyFilter(part, page int, next bool) esquery.Query {
	partRange := esquery.Range{Field: "part_number"}
	pageRange := esquery.Range{Field: "page_number"}
	if next {
		partRange.GT = part
		pageRange.GT = page
	} else {
		partRange.LT = part
		pageRange.LT = page
	}
	return esquery.Bool{
		Should: []esquery.Query{
			partRange,
			esquery.Bool{
				Must: []esquery.Query{
					esquery.Term{Field: "part_number", Value: part},
					pageRange,
				},
			},
		},
	}
}

// ResolveAdjacent finds the nearest passage in the cursor's direction.
// Sorting by (part, page) in the direction of travel with size 1 makes
// the engine return the immediate neighbor, never a later one.
func (s *NavigationService) ResolveAdjacent(ctx context.Context, cursor models.NavigationCursor) (*models.Passage, error) {
	var next bool
	var order string
	switch cursor.Direction {
	case models.DirectionNext:
		next, order = true, "asc"
	case models.DirectionPrev:
		next, order = false, "desc"
	default:
		return nil, apperr.Validation("الاتجاه غير صالح. يجب أن يكون 'next' أو 'prev'.")
	}

	body := esquery.Body{
		Query: esquery.Bool{
			Must:   bookAuthorClauses(cursor.BookTitle, cursor.AuthorName),
			Filter: []esquery.Query{adjacencyFilter(cursor.PartNumber, cursor.PageNumber, next)},
		},
		Source: passageSourceFields,
		Sort: []esquery.Sort{
			{Field: "part_number", Order: order},
			{Field: "page_number", Order: order},
		},
		Size:     esquery.Int(1),
		MinScore: navMinScore,
	}

	res, err := s.repo.Search(ctx, body)
	if err != nil {
		return nil, err
	}
	if len(res.Hits) == 0 {
		log.Debug().
			Str("book", cursor.BookTitle).
			Str("direction", string(cursor.Direction)).
			Msg("no passage in this direction")
		return nil, apperr.NotFound("لم يتم العثور على نص في هذا الاتجاه.")
	}

	passage, err := normalizeHit(res.Hits[0])
	if err != nil {
		return nil, err
	}
	return &passage, nil
}

// FullBook fetches every passage of a book in (part, page) ascending
// order and concatenates them, each prefixed with its part/page label.
func (s *NavigationService) FullBook(ctx context.Context, bookTitle, authorName string) (*models.FullBook, error) {
	body := esquery.Body{
		Query: esquery.Bool{Must: bookAuthorClauses(bookTitle, authorName)},
		Source: []string{
			"text_content", "part_number", "page_number",
		},
		Sort: []esquery.Sort{
			{Field: "part_number", Order: "asc"},
			{Field: "page_number", Order: "asc"},
		},
		Size: esquery.Int(fullBookMaxPassages),
	}

	res, err := s.repo.Search(ctx, body)
	if err != nil {
		return nil, err
	}
	if len(res.Hits) == 0 {
		return nil, apperr.NotFound("لم يتم العثور على محتوى لهذا الكتاب.")
	}

	passages, err := normalizeHits(res.Hits)
	if err != nil {
		return nil, err
	}

	blocks := make([]string, len(passages))
	for i, p := range passages {
		blocks[i] = fmt.Sprintf("الجزء: %s، الصفحة: %s\n%s\n", p.PartNumber, p.PageNumber, p.TextContent)
	}

	log.Debug().Str("book", bookTitle).Int("passages", len(blocks)).Msg("assembled full book")

	return &models.FullBook{
		BookTitle:  bookTitle,
		AuthorName: authorName,
		FullText:   strings.Join(blocks, "\n\n"),
	}, nil
}
