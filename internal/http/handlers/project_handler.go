package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/projecthub-backend/internal/dto"
	"github.com/ignatzorin/projecthub-backend/internal/http/handlers/common"
	"github.com/ignatzorin/projecthub-backend/internal/service"
)

const defaultFeaturedCount = 3

// ProjectHandler отдаёт каталог проектов без сессии.
type ProjectHandler struct {
	discovery *service.DiscoveryService
}

// NewProjectHandler создаёт новый хэндлер проектов.
func NewProjectHandler(discovery *service.DiscoveryService) *ProjectHandler {
	return &ProjectHandler{discovery: discovery}
}

// ListProjects обслуживает GET /api/projects?search=&status=&category=&skills=
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	result := h.discovery.Search(c.Request.Context(), c.Request.URL.Query())
	common.RespondJSON(c, http.StatusOK, result)
}

// Featured обслуживает GET /api/projects/featured?count=N
func (h *ProjectHandler) Featured(c *gin.Context) {
	count := common.ParseIntQuery(c, "count", defaultFeaturedCount)
	projects := h.discovery.Featured(c.Request.Context(), count)
	common.RespondJSON(c, http.StatusOK, dto.ProjectListResponse{
		Total:    len(projects),
		Projects: projects,
	})
}

// GetProject обслуживает GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.discovery.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	common.RespondJSON(c, http.StatusOK, project)
}
