package httpHandler

import (
	"net/http"

	"smarthome-server/usecases"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	useCase *usecases.UserUseCase
}

func NewLoginHandler(useCase *usecases.UserUseCase) *LoginHandler {
	return &LoginHandler{useCase: useCase}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserID  uint   `json:"user_id"`
	Name    string `json:"name"`
	Success bool   `json:"success"`
}

// Login authenticates a user by email and password and returns the user id.
func (h *LoginHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.useCase.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		UserID:  user.ID,
		Name:    user.Name,
		Success: true,
	})
}
