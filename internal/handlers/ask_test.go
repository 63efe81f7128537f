package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turath-search-api/internal/apperr"
	"github.com/turath-search-api/internal/config"
	"github.com/turath-search-api/internal/esquery"
	"github.com/turath-search-api/internal/llm"
	"github.com/turath-search-api/internal/repository"
	"github.com/turath-search-api/internal/services"
)

type fakeRepo struct {
	bodies    []esquery.Body
	responses []*repository.SearchResult
	errs      []error
}

func (f *fakeRepo) Search(_ context.Context, body esquery.Body) (*repository.SearchResult, error) {
	i := len(f.bodies)
	f.bodies = append(f.bodies, body)
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.responses) && f.responses[i] != nil {
		return f.responses[i], nil
	}
	return &repository.SearchResult{}, nil
}

func (f *fakeRepo) Ping(context.Context) error { return nil }

type fakeAnswerer struct {
	name string
	text string
}

func (f *fakeAnswerer) Name() string { return f.name }

func (f *fakeAnswerer) Answer(context.Context, string) (string, error) {
	return f.text, nil
}

func oneHit() *repository.SearchResult {
	return &repository.SearchResult{
		Total: 1,
		Hits: []repository.Hit{{
			Score:  1,
			Source: json.RawMessage(`{"book_title":"الشفا","author_name":"القاضي عياض","part_number":1,"page_number":5,"text_content":"نص"}`),
		}},
	}
}

func newAskServer(repo repository.PassageSearchRepository, claude, gemini llm.Answerer) *echo.Echo {
	e := echo.New()
	builder := esquery.NewBuilder(config.Boosts{
		TextPhrase: 200, AuthorPhrase: 150, TextTerm: 0.5,
		PartialField: 1, TitleField: 1.5, AuthorField: 1.2,
		AuthorExact: 5, AuthorNgram: 3,
	})
	retrieval := services.NewRetrievalService(repo, builder)
	answers := services.NewAnswerService(claude, gemini, time.Second)
	NewAskHandler(retrieval, answers).RegisterRoutes(e)
	return e
}

func doGet(e *echo.Echo, target string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestAskRequiresQueryOrAuthor(t *testing.T) {
	e := newAskServer(&fakeRepo{}, nil, nil)

	rec, _ := doGet(e, "/ask")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskRejectsNonIntegerPagination(t *testing.T) {
	e := newAskServer(&fakeRepo{}, nil, nil)

	rec, _ := doGet(e, "/ask?q=الرحمة&from=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doGet(e, "/ask?q=الرحمة&size=xyz")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskDefaultModeReturnsSourcesAndAnswers(t *testing.T) {
	repo := &fakeRepo{responses: []*repository.SearchResult{oneHit()}}
	e := newAskServer(repo,
		&fakeAnswerer{name: "claude", text: "إجابة كلود"},
		&fakeAnswerer{name: "gemini", text: "إجابة جيميني"},
	)

	rec, body := doGet(e, "/ask?q=حديث%20الرحمة")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, body, "sources_retrieved")
	assert.Contains(t, body, "total_results")
	assert.Equal(t, "strict", body["matched_tier"])
	assert.Equal(t, "إجابة كلود", body["claude_answer"])
	assert.Equal(t, "إجابة جيميني", body["gemini_answer"])
}

func TestAskAIOnlyModeOmitsSources(t *testing.T) {
	repo := &fakeRepo{responses: []*repository.SearchResult{oneHit()}}
	e := newAskServer(repo, &fakeAnswerer{name: "claude", text: "إجابة"}, nil)

	rec, body := doGet(e, "/ask?q=الرحمة&mode=ai_only")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.NotContains(t, body, "sources_retrieved")
	assert.NotContains(t, body, "total_results")
	assert.NotContains(t, body, "matched_tier")
	assert.Contains(t, body, "claude_answer")
}

func TestAskFullModeOmitsAnswers(t *testing.T) {
	repo := &fakeRepo{responses: []*repository.SearchResult{oneHit()}}
	e := newAskServer(repo,
		&fakeAnswerer{name: "claude", text: "إجابة"},
		&fakeAnswerer{name: "gemini", text: "إجابة"},
	)

	rec, body := doGet(e, "/ask?q=الرحمة&mode=full")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, body, "sources_retrieved")
	assert.NotContains(t, body, "claude_answer")
	assert.NotContains(t, body, "gemini_answer")
}

func TestAskDisabledBackendsOmitAnswerFields(t *testing.T) {
	repo := &fakeRepo{responses: []*repository.SearchResult{oneHit()}}
	e := newAskServer(repo, nil, nil)

	rec, body := doGet(e, "/ask?q=الرحمة")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, body, "sources_retrieved")
	assert.NotContains(t, body, "claude_answer")
	assert.NotContains(t, body, "gemini_answer")
}

func TestAskSearchUnavailableIs500(t *testing.T) {
	repo := &fakeRepo{errs: []error{apperr.SearchUnavailable(errors.New("no route to host"))}}
	e := newAskServer(repo, nil, nil)

	rec, _ := doGet(e, "/ask?q=الرحمة")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAskUnclassifiedErrorHidesCause(t *testing.T) {
	repo := &fakeRepo{errs: []error{errors.New("dial tcp 10.0.0.1:9200: connection refused")}}
	e := newAskServer(repo, nil, nil)

	rec, body := doGet(e, "/ask?q=الرحمة")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "dial tcp")
	assert.Equal(t, internalErrorMessage, body["message"])
}

func TestAskEmptyResultStillOK(t *testing.T) {
	e := newAskServer(&fakeRepo{}, nil, nil)

	rec, body := doGet(e, "/ask?q=الرحمة")
	require.Equal(t, http.StatusOK, rec.Code)

	sources, ok := body["sources_retrieved"].([]any)
	require.True(t, ok)
	assert.Empty(t, sources)
}
