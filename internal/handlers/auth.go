package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/contactbook/internal/apperrors"
	"github.com/thereayou/contactbook/internal/handlers/dto"
	"github.com/thereayou/contactbook/internal/services"
	"github.com/thereayou/contactbook/pkg/auth"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Signup(req.Username, req.Email, req.Password, baseURL(c))
	if err != nil {
		if apperrors.IsConflict(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, dto.SignupResponse{
		User:   dto.NewUserResponse(user),
		Detail: "User successfully created",
	})
}

// Login принимает form-данные, username несёт email
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnconfirmed):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "email not confirmed"})
		case errors.Is(err, apperrors.ErrBadCredential):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		case apperrors.IsUnauthorized(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	raw, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}

	pair, err := h.auth.Refresh(raw)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "refresh failed"})
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) ConfirmedEmail(c *gin.Context) {
	already, err := h.auth.ConfirmEmail(c.Param("token"))
	if err != nil {
		if errors.Is(err, apperrors.ErrVerificationFailed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "verification failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "confirmation failed"})
		return
	}

	if already {
		c.JSON(http.StatusOK, gin.H{"message": "Your email already confirmed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email confirmed"})
}

// RequestEmail всегда отвечает 200 и не раскрывает, есть ли такой аккаунт
func (h *AuthHandler) RequestEmail(c *gin.Context) {
	var req dto.RequestEmail
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	already, err := h.auth.RequestConfirmation(req.Email, baseURL(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed"})
		return
	}

	if already {
		c.JSON(http.StatusOK, gin.H{"message": "Your email already confirmed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Check your email for confirmation."})
}

// baseURL восстанавливает внешний адрес сервиса для ссылки в письме
func baseURL(c *gin.Context) string {
	scheme := "http"
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
