package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/projecthub-backend/internal/cache"
	"github.com/ignatzorin/projecthub-backend/internal/config"
	"github.com/ignatzorin/projecthub-backend/internal/http/handlers"
	"github.com/ignatzorin/projecthub-backend/internal/metrics"
	"github.com/ignatzorin/projecthub-backend/internal/repository"
	"github.com/ignatzorin/projecthub-backend/internal/service"
	"github.com/ignatzorin/projecthub-backend/internal/ws"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{
		Env:             "test",
		AllowedOrigins:  []string{"http://localhost:3000"},
		RateLimitLimit:  1000,
		RateLimitPeriod: time.Minute,
	}

	catalog, err := service.LoadCatalog(ctx, service.CatalogSourceSeed, nil)
	require.NoError(t, err)

	hub := ws.NewHub()
	go hub.Run(ctx)

	sessions := repository.NewMemorySessionRepository(cache.New(ctx, time.Minute), time.Hour)
	discovery := service.NewDiscoveryService(catalog, sessions, hub, metrics.NewDiscovery(), service.DiscoveryOptions{FeaturedSeed: 1})

	return SetupRouter(
		cfg,
		handlers.NewHealthHandler(nil, nil),
		handlers.NewProjectHandler(discovery),
		handlers.NewCatalogHandler(discovery),
		handlers.NewDiscoveryHandler(discovery),
		handlers.NewWSHandler(hub, discovery),
		nil,
		nil,
	)
}

func call(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
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

func TestRouter_SessionLifecycle(t *testing.T) {
	r := setupTestRouter(t)

	w := call(r, "POST", "/api/discovery/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var view service.SessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	base := "/api/discovery/sessions/" + view.SessionID.String()

	assert.Equal(t, http.StatusOK, call(r, "PUT", base+"/category", `{"category":"Finance"}`).Code)
	assert.Equal(t, http.StatusOK, call(r, "POST", base+"/skills/toggle", `{"skill":"Figma"}`).Code)

	w = call(r, "GET", base, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "category=Finance&skills=Figma", view.Query)
	assert.Equal(t, 1, view.Total)

	w = call(r, "DELETE", base+"/filters", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 5, view.Total)

	assert.Equal(t, http.StatusNoContent, call(r, "DELETE", base, "").Code)
	assert.Equal(t, http.StatusNotFound, call(r, "GET", base, "").Code)
	assert.Equal(t, http.StatusNotFound, call(r, "GET", base+"/ws", "").Code)
}

func TestRouter_PublicRoutes(t *testing.T) {
	r := setupTestRouter(t)

	assert.Equal(t, http.StatusOK, call(r, "GET", "/health", "").Code)
	assert.Equal(t, http.StatusOK, call(r, "GET", "/api/projects?status=open", "").Code)
	assert.Equal(t, http.StatusOK, call(r, "GET", "/api/projects/featured", "").Code)
	assert.Equal(t, http.StatusOK, call(r, "GET", "/api/projects/1", "").Code)
	assert.Equal(t, http.StatusOK, call(r, "GET", "/api/catalog/skills", "").Code)
	assert.Equal(t, http.StatusBadRequest, call(r, "GET", "/api/discovery/sessions/nope", "").Code)
	assert.Equal(t, http.StatusNotFound, call(r, "POST", "/api/seed", "").Code)

	w := call(r, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "discovery_searches_total")
	assert.NotContains(t, w.Body.String(), "discovery_sessions_active")
}
