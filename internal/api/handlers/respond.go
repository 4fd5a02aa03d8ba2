package handlers

import (
	"errors"
	"net/http"

	apperrors "reloading-bench-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	var inUse *apperrors.InUseError
	if errors.As(err, &inUse) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "count": inUse.Count})
		return
	}
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
	}
}
