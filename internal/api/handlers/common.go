package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "ems-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// respondError maps the domain error kinds onto HTTP status codes. All core
// errors are recoverable and reported as structured responses.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsInvalidState(err), apperrors.IsInsufficientBalance(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), apperrors.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		var exists *apperrors.AlreadyExistsError
		if errors.As(err, &exists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parsePagination reads limit/offset query parameters with sane bounds
func parsePagination(c *gin.Context) (limit, offset int) {
	limit = defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}
