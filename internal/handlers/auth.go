package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"package-tracker/internal/apperrors"
	"package-tracker/internal/services"
	"package-tracker/pkg/logger"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a delivery account. The response keeps the legacy
// success/message envelope the front-ends expect.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "email and password are required",
		})
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		var validationErr *apperrors.ValidationError
		var authErr *apperrors.AuthenticationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "email and password are required",
			})
		case errors.As(err, &authErr):
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid credentials",
			})
		default:
			logger.WithError(err).Error("Login failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
