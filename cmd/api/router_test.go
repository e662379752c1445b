package main

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/config"
	"portfolio-backend/pkg/container"
)

const testUploadCap = 1024

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestApp(t *testing.T) (*gin.Engine, *container.Container) {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "Portfolio API Test",
			Environment: "test",
			Port:        "0",
		},
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")},
		JWT:      config.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		Upload:   config.UploadConfig{Dir: t.TempDir(), MaxBytes: testUploadCap},
		CORS:     config.CORSConfig{AllowOrigin: "*"},
	}

	app, err := container.NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { app.Cleanup() })

	return SetupRouter(app), app
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/setup", "",
		gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "",
		gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	router, _ := newTestApp(t)

	w := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestPublicProfileBundle(t *testing.T) {
	router, _ := newTestApp(t)

	w := doJSON(t, router, http.MethodGet, "/api/profile", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Profile  map[string]interface{}   `json:"profile"`
		Skills   []map[string]interface{} `json:"skills"`
		Services []map[string]interface{} `json:"services"`
		Social   []map[string]interface{} `json:"social"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Welly Chandra", resp.Profile["name"])
	assert.NotEmpty(t, resp.Skills)
	assert.NotEmpty(t, resp.Services)
	assert.NotNil(t, resp.Social)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router, _ := newTestApp(t)

	// Không có Authorization header
	w := doJSON(t, router, http.MethodPost, "/api/admin/skills", "", gin.H{"name": "Hacking"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)

	// Token rác
	w = doJSON(t, router, http.MethodPost, "/api/admin/skills", "garbage.token.here", gin.H{"name": "Hacking"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Mutation bị chặn phải không được apply
	token := loginAs(t, router, "admin", "secret123")
	listed := doJSON(t, router, http.MethodGet, "/api/admin/skills", token, nil)
	require.Equal(t, http.StatusOK, listed.Code)
	assert.NotContains(t, listed.Body.String(), "Hacking")
}

func TestSetupTwiceRejected(t *testing.T) {
	router, _ := newTestApp(t)

	loginAs(t, router, "admin", "secret123")

	w := doJSON(t, router, http.MethodPost, "/api/auth/setup", "",
		gin.H{"username": "intruder", "password": "hax"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already configured")
}

func TestSkillCRUDFlow(t *testing.T) {
	router, _ := newTestApp(t)
	token := loginAs(t, router, "admin", "secret123")

	w := doJSON(t, router, http.MethodPost, "/api/admin/skills", token,
		gin.H{"name": "Go", "percentage": 90, "sort_order": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	// Delete idempotent: cả 2 lần đều {ok:true}
	path := "/api/admin/skills/" + strconv.FormatInt(created.ID, 10)
	w = doJSON(t, router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)

	w = doJSON(t, router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestDraftBlogHiddenFromPublic(t *testing.T) {
	router, _ := newTestApp(t)
	token := loginAs(t, router, "admin", "secret123")

	w := doJSON(t, router, http.MethodPost, "/api/admin/blogs", token,
		gin.H{"title": "Secret Draft", "content": "wip", "published": false})
	require.Equal(t, http.StatusOK, w.Code)

	// Public: draft phải 404 y hệt bài không tồn tại
	w = doJSON(t, router, http.MethodGet, "/api/blogs/secret-draft", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	public := doJSON(t, router, http.MethodGet, "/api/blogs", "", nil)
	require.Equal(t, http.StatusOK, public.Code)
	assert.NotContains(t, public.Body.String(), "secret-draft")

	// Admin thấy draft
	adminList := doJSON(t, router, http.MethodGet, "/api/admin/blogs", token, nil)
	require.Equal(t, http.StatusOK, adminList.Code)
	assert.Contains(t, adminList.Body.String(), "secret-draft")
}

func TestDuplicateSlugRejected(t *testing.T) {
	router, _ := newTestApp(t)
	token := loginAs(t, router, "admin", "secret123")

	w := doJSON(t, router, http.MethodPost, "/api/admin/blogs", token,
		gin.H{"title": "Unique Title", "published": true})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/admin/blogs", token,
		gin.H{"title": "Unique! Title!", "published": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Slug already exists")
}

func doUpload(t *testing.T, router *gin.Engine, token string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = fw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpload(t *testing.T) {
	router, app := newTestApp(t)
	token := loginAs(t, router, "admin", "secret123")

	// Không có auth -> 401
	w := doUpload(t, router, "", []byte("data"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Đúng bằng cap -> OK
	w = doUpload(t, router, token, bytes.Repeat([]byte("a"), testUploadCap))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.URL, "/uploads/"))

	stored := filepath.Join(app.Storage.Dir(), strings.TrimPrefix(resp.URL, "/uploads/"))
	info, err := os.Stat(stored)
	require.NoError(t, err)
	assert.Equal(t, int64(testUploadCap), info.Size())

	// Quá cap 1 byte -> 413, không được persist
	before := countFiles(t, app.Storage.Dir())
	w = doUpload(t, router, token, bytes.Repeat([]byte("a"), testUploadCap+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, before, countFiles(t, app.Storage.Dir()))
}

func TestUpload_NoFile(t *testing.T) {
	router, _ := newTestApp(t)
	token := loginAs(t, router, "admin", "secret123")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file")
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}
