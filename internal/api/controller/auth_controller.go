package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alfredhq/alfred/internal/api/response"
	"github.com/alfredhq/alfred/internal/service"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// Register creates a user.
// @Summary Register
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "new user"
// @Success 200 {object} response.Response
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register params invalid", "err", err)
		badRequest(c, err)
		return
	}

	user, err := ctrl.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, service.ErrEmailTaken) {
		response.Error(c, http.StatusConflict, "e-mail já cadastrado")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	slog.Info("user registered", "uid", user.ID)
	response.Success(c, gin.H{"user_id": user.ID})
}

// Login checks the credentials and issues a JWT.
// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} response.Response{data=LoginResponse}
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, userID, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		slog.Warn("login failed", "err", err)
		response.Error(c, http.StatusUnauthorized, "e-mail ou senha incorretos")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, LoginResponse{Token: token, UserID: userID})
}
