package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"package-tracker/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type createDeliveryPersonRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ListDeliveryPersons returns the delivery directory, passwords stripped
func (h *UserHandler) ListDeliveryPersons(c *gin.Context) {
	users, err := h.userService.ListDeliveryPersons()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateDeliveryPerson provisions a new delivery account
func (h *UserHandler) CreateDeliveryPerson(c *gin.Context) {
	var req createDeliveryPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.userService.CreateDeliveryPerson(req.Name, req.Phone, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
