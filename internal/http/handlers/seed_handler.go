package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/projecthub-backend/internal/dto"
	"github.com/ignatzorin/projecthub-backend/internal/http/handlers/common"
	"github.com/ignatzorin/projecthub-backend/internal/service"
)

// SeedHandler заполняет таблицу проектов демонстрационными данными.
type SeedHandler struct {
	seedService *service.SeedService
}

// NewSeedHandler создаёт новый seed handler.
func NewSeedHandler(seedService *service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// Seed записывает демонстрационный каталог в PostgreSQL.
// POST /api/seed
func (h *SeedHandler) Seed(c *gin.Context) {
	n, err := h.seedService.SeedProjects(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, "не удалось записать демонстрационные проекты")
		return
	}

	// Каталог читается при старте, новые данные видны после перезапуска.
	common.RespondJSON(c, http.StatusOK, dto.SeedResponse{
		Message:  "Seed data generated successfully",
		Projects: n,
	})
}
