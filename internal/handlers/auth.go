package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rheumassoc/api/internal/middleware"
	"rheumassoc/api/internal/models"
	"rheumassoc/api/internal/service"
)

type registerRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=8"`
	LastName   string  `json:"last_name" binding:"required"`
	FirstName  string  `json:"first_name" binding:"required"`
	Patronymic *string `json:"patronymic"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// userResponse adds the computed display names to the stored fields.
type userResponse struct {
	models.User
	FullName  string `json:"full_name"`
	ShortName string `json:"short_name"`
}

func userView(u models.User) userResponse {
	return userResponse{
		User:      u,
		FullName:  u.FullName(),
		ShortName: u.ShortName(),
	}
}

func (h HandlerSet) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if len(strings.TrimSpace(req.LastName)) < 2 || len(strings.TrimSpace(req.FirstName)) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name_too_short"})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		LastName:   strings.TrimSpace(req.LastName),
		FirstName:  strings.TrimSpace(req.FirstName),
		Patronymic: req.Patronymic,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
			return
		}
		h.log.Error().Err(err).Msg("register failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	c.JSON(http.StatusOK, userView(user))
}

// Login accepts form-encoded credentials under the OAuth2 password flow
// field names the web client already sends.
func (h HandlerSet) Login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		case errors.Is(err, service.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": "user_inactive"})
		default:
			h.log.Error().Err(err).Msg("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		}
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h HandlerSet) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
		return
	}
	c.JSON(http.StatusOK, userView(user))
}
