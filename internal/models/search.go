package models

// Mode selects what an /ask request returns
type Mode string

const (
	// ModeDefault returns retrieved sources and AI answers
	ModeDefault Mode = "default"
	// ModeAIOnly returns AI answers without the retrieved sources
	ModeAIOnly Mode = "ai_only"
	// ModeFull returns retrieved sources only, no AI answers
	ModeFull Mode = "full"
)

// ParseMode maps the query parameter to a Mode, defaulting to ModeDefault
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeAIOnly:
		return ModeAIOnly
	case ModeFull:
		return ModeFull
	default:
		return ModeDefault
	}
}

// SearchRequest is the parsed input of an /ask request
type SearchRequest struct {
	Query  string `json:"query"`
	Author string `json:"author"`
	From   int    `json:"from"`
	Size   int    `json:"size"`
	Mode   Mode   `json:"mode"`
}

// Placeholder strings substituted for fields absent from the index,
// so consumers never see null
const (
	PlaceholderUnknown     = "غير معروف"
	PlaceholderUnavailable = "غير متوفر"
)

// Passage is one retrievable unit of text, addressed by book, author,
// part and page. Read-only: sourced from the index, never persisted here.
type Passage struct {
	BookTitle   string  `json:"book_title"`
	AuthorName  string  `json:"author_name"`
	PartNumber  Ordinal `json:"part_number"`
	PageNumber  Ordinal `json:"page_number"`
	TextContent string  `json:"text_content"`
}

// AskResponse is the response for /ask. Optional fields are pointers so
// that mode isolation holds: ai_only never carries sources, full never
// carries answer fields.
type AskResponse struct {
	SourcesRetrieved *[]Passage `json:"sources_retrieved,omitempty"`
	TotalResults     *int64     `json:"total_results,omitempty"`
	MatchedTier      string     `json:"matched_tier,omitempty"`
	ClaudeAnswer     *string    `json:"claude_answer,omitempty"`
	GeminiAnswer     *string    `json:"gemini_answer,omitempty"`
}

// Direction of contextual navigation within a book
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// NavigationCursor addresses a position inside a book and the direction
// to move from it
type NavigationCursor struct {
	BookTitle  string    `json:"book_title"`
	AuthorName string    `json:"author_name"`
	PartNumber int       `json:"current_part_number"`
	PageNumber int       `json:"current_page_number"`
	Direction  Direction `json:"direction"`
}

// FullBook is the response for /get_full_book
type FullBook struct {
	BookTitle  string `json:"book_title"`
	AuthorName string `json:"author_name"`
	FullText   string `json:"full_text"`
}
