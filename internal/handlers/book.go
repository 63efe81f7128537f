package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/turath-search-api/internal/models"
	"github.com/turath-search-api/internal/services"
)

// BookHandler handles book navigation endpoints.
type BookHandler struct {
	navigation *services.NavigationService
}

// NewBookHandler creates the handler.
func NewBookHandler(navigation *services.NavigationService) *BookHandler {
	return &BookHandler{navigation: navigation}
}

// ContextualText handles GET /get_contextual_text: the passage adjacent
// to (current_part_number, current_page_number) in the given direction.
func (h *BookHandler) ContextualText(c echo.Context) error {
	bookTitle := strings.TrimSpace(c.QueryParam("book_title"))
	authorName := strings.TrimSpace(c.QueryParam("author_name"))
	direction := c.QueryParam("direction")

	if bookTitle == "" || authorName == "" || direction == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "يرجى توفير عنوان الكتاب، اسم المؤلف، والاتجاه.")
	}

	part, errPart := intParam(c, "current_part_number", 1)
	page, errPage := intParam(c, "current_page_number", 1)
	if errPart != nil || errPage != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "أرقام الجزء أو الصفحة يجب أن تكون أعدادًا صحيحة.")
	}

	passage, err := h.navigation.ResolveAdjacent(c.Request().Context(), models.NavigationCursor{
		BookTitle:  bookTitle,
		AuthorName: authorName,
		PartNumber: part,
		PageNumber: page,
		Direction:  models.Direction(direction),
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, passage)
}

// FullBook handles GET /get_full_book: the whole book concatenated in
// (part, page) ascending order.
func (h *BookHandler) FullBook(c echo.Context) error {
	bookTitle := strings.TrimSpace(c.QueryParam("book_title"))
	authorName := strings.TrimSpace(c.QueryParam("author_name"))

	if bookTitle == "" || authorName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "يرجى توفير عنوان الكتاب واسم المؤلف.")
	}

	book, err := h.navigation.FullBook(c.Request().Context(), bookTitle, authorName)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, book)
}

// RegisterRoutes registers navigation routes.
func (h *BookHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/get_contextual_text", h.ContextualText)
	e.GET("/get_full_book", h.FullBook)
}
