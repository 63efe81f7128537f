package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/turath-search-api/internal/models"
	"github.com/turath-search-api/internal/services"
)

// AskHandler handles the /ask retrieval endpoint.
type AskHandler struct {
	retrieval *services.RetrievalService
	answers   *services.AnswerService
}

// NewAskHandler creates the handler.
func NewAskHandler(retrieval *services.RetrievalService, answers *services.AnswerService) *AskHandler {
	return &AskHandler{retrieval: retrieval, answers: answers}
}

// Ask handles GET /ask?q=&author=&from=&size=&mode=
func (h *AskHandler) Ask(c echo.Context) error {
	ctx := c.Request().Context()

	req := models.SearchRequest{
		Query:  strings.TrimSpace(c.QueryParam("q")),
		Author: strings.TrimSpace(c.QueryParam("author")),
		Mode:   models.ParseMode(c.QueryParam("mode")),
	}

	var err error
	if req.From, err = intParam(c, "from", 0); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "يجب أن تكون قيمة 'from' عددًا صحيحًا.")
	}
	if req.Size, err = intParam(c, "size", 20); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "يجب أن تكون قيمة 'size' عددًا صحيحًا.")
	}

	result, err := h.retrieval.Retrieve(ctx, req)
	if err != nil {
		return httpError(err)
	}

	resp := models.AskResponse{}
	if req.Mode != models.ModeAIOnly {
		resp.SourcesRetrieved = &result.Passages
		resp.TotalResults = &result.Total
		resp.MatchedTier = string(result.Tier)
	}
	if req.Mode != models.ModeFull && h.answers.Enabled() {
		answers := h.answers.Generate(ctx, req.Query, result.Passages)
		resp.ClaudeAnswer = answers.Claude
		resp.GeminiAnswer = answers.Gemini
	}

	return c.JSON(http.StatusOK, resp)
}

func intParam(c echo.Context, name string, defaultValue int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}

// RegisterRoutes registers the ask route.
func (h *AskHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ask", h.Ask)
}
