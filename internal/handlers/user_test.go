package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/contactbook/internal/models"
	"github.com/thereayou/contactbook/internal/services"
)

func newUsersRouter(t *testing.T, user *models.User, uploader services.AvatarUploader) (*gin.Engine, *memUserStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemUserStore()
	require.NoError(t, store.CreateUser(user))
	h := NewUserHandler(store, uploader)

	router := gin.New()
	users := router.Group("/api/users", asUser(user))
	users.GET("/me", h.GetMe)
	users.PATCH("/avatar", h.UpdateAvatar)
	return router, store
}

func patchAvatar(t *testing.T, router *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPatch, "/api/users/avatar", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetMe(t *testing.T) {
	user := testUser()
	router, _ := newUsersRouter(t, user, &fakeUploader{url: "https://img.example"})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "a@x.com")
	require.Contains(t, w.Body.String(), "alice")
}

func TestUpdateAvatar(t *testing.T) {
	user := testUser()
	router, store := newUsersRouter(t, user, &fakeUploader{url: "https://img.example"})

	resp := patchAvatar(t, router)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "https://img.example/alice")

	stored, err := store.FindUserByEmail("a@x.com")
	require.NoError(t, err)
	require.Equal(t, "https://img.example/alice", stored.AvatarURL)
}

func TestUpdateAvatar_UploadFailure(t *testing.T) {
	user := testUser()
	user.AvatarURL = "https://old.example/avatar"
	router, store := newUsersRouter(t, user, &fakeUploader{err: errUploadFailed})

	resp := patchAvatar(t, router)
	require.Equal(t, http.StatusBadGateway, resp.Code)

	// сбой загрузки не трогает сохранённый аватар
	stored, err := store.FindUserByEmail("a@x.com")
	require.NoError(t, err)
	require.Equal(t, "https://old.example/avatar", stored.AvatarURL)
}

func TestUpdateAvatar_NotConfigured(t *testing.T) {
	user := testUser()
	router, _ := newUsersRouter(t, user, nil)

	resp := patchAvatar(t, router)
	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestUpdateAvatar_NoFile(t *testing.T) {
	user := testUser()
	router, _ := newUsersRouter(t, user, &fakeUploader{url: "https://img.example"})

	req := httptest.NewRequest(http.MethodPatch, "/api/users/avatar", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
