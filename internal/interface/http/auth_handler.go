package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkyfahmi/todoauth/internal/application"
	"github.com/rizkyfahmi/todoauth/internal/domain/repository"
	"github.com/rizkyfahmi/todoauth/pkg/response"
	"github.com/rizkyfahmi/todoauth/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Detail(c, http.StatusConflict, "User already exists")
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Detail(c, http.StatusInternalServerError, "registration failed")
		return
	}
	c.JSON(http.StatusCreated, userResponse{ID: u.ID, Email: u.Email})
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", validation.ToDetails(err))
		return
	}

	token, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Detail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Detail(c, http.StatusInternalServerError, "login failed")
		return
	}
	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
