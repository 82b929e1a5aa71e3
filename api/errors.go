package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peacekuria/smartmove/internal/domain"
)

// respondError maps domain sentinel errors onto HTTP status codes; anything
// unrecognized is an internal error.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrPastDate):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrDateUnavailable), errors.Is(err, domain.ErrNotTerminal), errors.Is(err, domain.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
