package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/turath-search-api/internal/llm"
	"github.com/turath-search-api/internal/models"
)

// NoSourcesSentinel replaces the context block when retrieval produced
// no passages.
const NoSourcesSentinel = "لا توجد مصادر متاحة."

// answerFailureFormat fills an answer field when its backend errors or
// times out; the request itself still succeeds.
const answerFailureFormat = "تعذر توليد الإجابة من %s."

// FormatContext serializes passages into a single text block for LLM
// consumption: one labeled block per passage, blank-line separated.
// Pure and deterministic given its input order.
func FormatContext(passages []models.Passage) string {
	if len(passages) == 0 {
		return NoSourcesSentinel
	}
	blocks := make([]string, len(passages))
	for i, p := range passages {
		blocks[i] = fmt.Sprintf("الكتاب: %s، المؤلف: %s، الجزء: %s، الصفحة: %s\nالنص: %s",
			p.BookTitle, p.AuthorName, p.PartNumber, p.PageNumber, p.TextContent)
	}
	return strings.Join(blocks, "\n\n")
}

func buildPrompt(query, contextBlock string) string {
	return fmt.Sprintf(
		"أجب عن السؤال التالي بالاعتماد على المصادر المرفقة فقط، واذكر الكتاب والصفحة عند الاستشهاد.\n\nالسؤال: %s\n\nالمصادر:\n%s",
		query, contextBlock)
}

// Answers holds the per-backend answer fields. A nil field means that
// backend is disabled; a non-nil field is either the answer or the
// failure placeholder.
type Answers struct {
	Claude *string
	Gemini *string
}

// AnswerService fans a prompt out to the configured answer backends.
type AnswerService struct {
	claude  llm.Answerer // nil when disabled
	gemini  llm.Answerer // nil when disabled
	timeout time.Duration
}

// NewAnswerService creates the service; either answerer may be nil.
func NewAnswerService(claude, gemini llm.Answerer, timeout time.Duration) *AnswerService {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &AnswerService{claude: claude, gemini: gemini, timeout: timeout}
}

// Enabled reports whether at least one backend is configured.
func (s *AnswerService) Enabled() bool {
	return s.claude != nil || s.gemini != nil
}

// Generate calls the enabled backends concurrently, each bounded by its
// own timeout, and joins the results. A failure of one backend never
// blocks or discards the other's answer.
func (s *AnswerService) Generate(ctx context.Context, query string, passages []models.Passage) Answers {
	prompt := buildPrompt(query, FormatContext(passages))

	var answers Answers
	var wg sync.WaitGroup

	run := func(a llm.Answerer, dst **string) {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		start := time.Now()
		text, err := a.Answer(cctx, prompt)
		if err != nil {
			log.Warn().Err(err).Str("backend", a.Name()).Msg("answer generation failed")
			placeholder := fmt.Sprintf(answerFailureFormat, a.Name())
			*dst = &placeholder
			return
		}
		log.Debug().Str("backend", a.Name()).Dur("took", time.Since(start)).Msg("answer generated")
		*dst = &text
	}

	if s.claude != nil {
		wg.Add(1)
		go run(s.claude, &answers.Claude)
	}
	if s.gemini != nil {
		wg.Add(1)
		go run(s.gemini, &answers.Gemini)
	}
	wg.Wait()

	return answers
}
