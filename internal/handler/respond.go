package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rota-reader/internal/logger"
	"rota-reader/internal/roster"
	"rota-reader/internal/service"
)

// respondError maps the client-input error taxonomy to 400 responses
// with diagnostic context. Anything unrecognized is logged and answered
// with a generic 500.
func respondError(c *gin.Context, op string, err error) {
	var notFound *roster.SheetNotFoundError
	var rangeErr *roster.RangeError
	var dateErr *roster.InvalidDateError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           notFound.Error(),
			"receivedLink":    notFound.Link,
			"availableSheets": notFound.Available,
		})
	case errors.As(err, &rangeErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           rangeErr.Error(),
			"rosterStartDate": rangeErr.RosterStart.Format("2006-01-02"),
		})
	case errors.As(err, &dateErr),
		errors.Is(err, roster.ErrNoWeekRows),
		errors.Is(err, roster.ErrNoWeekCommencing),
		errors.Is(err, roster.ErrDirectoryMissing),
		errors.Is(err, service.ErrMissingShift):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(op+".failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
