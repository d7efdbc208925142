package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/accadex/accadex/internal/application"
	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/interface/middleware"
	"github.com/accadex/accadex/pkg/response"
	"github.com/accadex/accadex/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
	Role     string `json:"role" binding:"omitempty,role"`
	Academy  string `json:"academy"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type meResponse struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Role    entity.Role `json:"role"`
	Academy string      `json:"academy"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		Academy:  req.Academy,
	})
	if err != nil {
		if errors.Is(err, application.ErrDuplicateEmail) {
			response.Error(c, http.StatusBadRequest, "User already exists", nil)
			return
		}
		if errors.Is(err, application.ErrPasswordTooLong) {
			response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"password": "must be at most 72 bytes long"})
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "Invalid Credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Me returns the account of the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Svc.Me(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}
		h.Logger.WithError(err).Error("load current user failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, meResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Academy: u.Academy})
}
