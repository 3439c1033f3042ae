package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Angelina20062025/WebMusicShop/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login.
// Failures are reported with one uniform message regardless of cause.
func (h *AuthHandler) Login(c echo.Context) error {
	login := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{}
	if err := c.Bind(&login); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	user, token, err := h.authService.Login(c.Request().Context(), login.Email, login.Password)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "success",
		"user":   user,
		"token":  token,
	})
}
