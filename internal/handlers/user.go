package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/contactbook/internal/handlers/dto"
	"github.com/thereayou/contactbook/internal/middleware"
	"github.com/thereayou/contactbook/internal/services"
)

type UserHandler struct {
	users    services.UserStore
	uploader services.AvatarUploader
}

func NewUserHandler(users services.UserStore, uploader services.AvatarUploader) *UserHandler {
	return &UserHandler{users: users, uploader: uploader}
}

// GetMe возвращает текущего пользователя
func (h *UserHandler) GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateAvatar загружает новый аватар на image-хост; при сбое загрузки
// сохранённый аватар остаётся прежним
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "avatar uploads are not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), file, user.Username)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "avatar upload failed"})
		return
	}

	updated, err := h.users.UpdateAvatar(user.Email, url)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update avatar"})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}
