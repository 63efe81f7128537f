package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/turath-search-api/internal/apperr"
)

// internalErrorMessage is returned for failures outside the taxonomy;
// the cause stays in the log, never in the response.
const internalErrorMessage = "حدث خطأ داخلي غير متوقع."

// httpError maps the service error taxonomy onto HTTP responses.
// Validation → 400, boundary not-found → 404, engine failure and
// anything unclassified → 500.
func httpError(err error) error {
	if e, ok := apperr.As(err); ok {
		switch e.Kind {
		case apperr.KindValidation:
			return echo.NewHTTPError(http.StatusBadRequest, e.Message)
		case apperr.KindNotFound:
			return echo.NewHTTPError(http.StatusNotFound, e.Message)
		case apperr.KindSearchUnavailable:
			return echo.NewHTTPError(http.StatusInternalServerError, e.Message)
		}
	}
	log.Error().Err(err).Msg("unclassified error")
	return echo.NewHTTPError(http.StatusInternalServerError, internalErrorMessage)
}
