package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/projecthub-backend/internal/cache"
	"github.com/ignatzorin/projecthub-backend/internal/http/middleware"
	"github.com/ignatzorin/projecthub-backend/internal/repository"
	"github.com/ignatzorin/projecthub-backend/internal/service"
)

func newTestDiscovery(t *testing.T) *service.DiscoveryService {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	catalog, err := service.LoadCatalog(ctx, service.CatalogSourceSeed, nil)
	require.NoError(t, err)
	sessions := repository.NewMemorySessionRepository(cache.New(ctx, time.Minute), time.Hour)
	return service.NewDiscoveryService(catalog, sessions, nil, nil, service.DiscoveryOptions{FeaturedSeed: 1})
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) service.SessionView {
	t.Helper()
	var view service.SessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestDiscoveryHandler_StartSession(t *testing.T) {
	r := newTestEngine()
	handler := NewDiscoveryHandler(newTestDiscovery(t))
	r.POST("/sessions", handler.StartSession)

	w := doRequest(r, "POST", "/sessions", `{"query":"/projects?skills=React"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	view := decodeView(t, w)
	assert.Equal(t, "skills=React", view.Query)
	assert.Equal(t, 2, view.Total)

	w = doRequest(r, "POST", "/sessions?category=Finance", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "category=Finance", decodeView(t, w).Query)

	w = doRequest(r, "POST", "/sessions", `{"query":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiscoveryHandler_Mutations(t *testing.T) {
	r := newTestEngine()
	handler := NewDiscoveryHandler(newTestDiscovery(t))
	r.POST("/sessions", handler.StartSession)
	r.PUT("/sessions/:id/search", handler.SetSearch)
	r.PUT("/sessions/:id/status", handler.SetStatus)
	r.POST("/sessions/:id/skills/toggle", handler.ToggleSkill)

	view := decodeView(t, doRequest(r, "POST", "/sessions", ""))
	base := "/sessions/" + view.SessionID.String()

	w := doRequest(r, "PUT", base+"/status", `{"status":"open"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "POST", base+"/skills/toggle", `{"skill":"React"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decodeView(t, w).Total)

	w = doRequest(r, "PUT", base+"/search", `{"query":"blockchain"}`)
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	assert.Equal(t, 0, view.Total)
	assert.Equal(t, "/projects?search=blockchain&skills=React&status=open", view.Location)

	w = doRequest(r, "PUT", base+"/search", `{"query":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "skills=React&status=open", decodeView(t, w).Query)
}

func TestDiscoveryHandler_EmptySelectorsResetToAll(t *testing.T) {
	r := newTestEngine()
	handler := NewDiscoveryHandler(newTestDiscovery(t))
	r.POST("/sessions", handler.StartSession)
	r.PUT("/sessions/:id/status", handler.SetStatus)
	r.PUT("/sessions/:id/category", handler.SetCategory)

	view := decodeView(t, doRequest(r, "POST", "/sessions?status=open&category=Finance", ""))
	require.Equal(t, "category=Finance&status=open", view.Query)
	base := "/sessions/" + view.SessionID.String()

	w := doRequest(r, "PUT", base+"/status", `{"status":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "category=Finance", decodeView(t, w).Query)

	w = doRequest(r, "PUT", base+"/category", `{"category":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	assert.Empty(t, view.Query)
	assert.Equal(t, 5, view.Total)

	w = doRequest(r, "PUT", base+"/status", `{"status":"archived"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeView(t, w).Query)
}

func TestDiscoveryHandler_Validation(t *testing.T) {
	r := newTestEngine()
	handler := NewDiscoveryHandler(newTestDiscovery(t))
	r.PUT("/sessions/:id/search", handler.SetSearch)
	r.PUT("/sessions/:id/category", handler.SetCategory)
	r.GET("/sessions/:id", handler.GetSession)

	w := doRequest(r, "GET", "/sessions/invalid-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, "GET", "/sessions/6f1c1f0e-8a53-4c0c-9d3a-2f4f1a0b7c11", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, "PUT", "/sessions/6f1c1f0e-8a53-4c0c-9d3a-2f4f1a0b7c11/search", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, "PUT", "/sessions/6f1c1f0e-8a53-4c0c-9d3a-2f4f1a0b7c11/category", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, "PUT", "/sessions/6f1c1f0e-8a53-4c0c-9d3a-2f4f1a0b7c11/category", `{"category":"`+strings.Repeat("c", 101)+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, "PUT", "/sessions/6f1c1f0e-8a53-4c0c-9d3a-2f4f1a0b7c11/search", `{"query":"`+strings.Repeat("x", 201)+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler(t *testing.T) {
	r := newTestEngine()
	handler := NewProjectHandler(newTestDiscovery(t))
	r.GET("/projects", handler.ListProjects)
	r.GET("/projects/featured", handler.Featured)
	r.GET("/projects/:id", handler.GetProject)

	w := doRequest(r, "GET", "/projects?category=Web+Development&skills=React", "")
	require.Equal(t, http.StatusOK, w.Code)
	var result service.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Total)

	w = doRequest(r, "GET", "/projects/featured?count=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)

	w = doRequest(r, "GET", "/projects/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mobile App UI/UX Redesign")

	w = doRequest(r, "GET", "/projects/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler(t *testing.T) {
	r := newTestEngine()
	handler := NewCatalogHandler(newTestDiscovery(t))
	r.GET("/catalog/categories", handler.ListCategories)
	r.GET("/catalog/skills", handler.ListSkills)

	w := doRequest(r, "GET", "/catalog/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Supply Chain")

	w = doRequest(r, "GET", "/catalog/skills", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Solidity")
}

func TestHealthHandler(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()

	r := newTestEngine()
	r.GET("/health", NewHealthHandler(nil, client).Health)

	w := doRequest(r, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"healthy"`)

	mr.Close()
	w = doRequest(r, "GET", "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
