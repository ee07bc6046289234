package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"package-tracker/internal/apperrors"
	"package-tracker/pkg/logger"
)

// respondError maps the error taxonomy to HTTP status codes once, at the facade
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var notFoundErr *apperrors.NotFoundError
	var authErr *apperrors.AuthenticationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		logger.WithError(err).Error("Internal server error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
