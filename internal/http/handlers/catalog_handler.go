package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/projecthub-backend/internal/dto"
	"github.com/ignatzorin/projecthub-backend/internal/http/handlers/common"
	"github.com/ignatzorin/projecthub-backend/internal/service"
)

type CatalogHandler struct {
	discovery *service.DiscoveryService
}

func NewCatalogHandler(discovery *service.DiscoveryService) *CatalogHandler {
	return &CatalogHandler{discovery: discovery}
}

// ListCategories GET /catalog/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	common.RespondJSON(c, http.StatusOK, dto.VocabularyResponse{Items: h.discovery.Categories()})
}

// ListSkills GET /catalog/skills
func (h *CatalogHandler) ListSkills(c *gin.Context) {
	common.RespondJSON(c, http.StatusOK, dto.VocabularyResponse{Items: h.discovery.Skills()})
}
