package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/projecthub-backend/internal/dto"
	"github.com/ignatzorin/projecthub-backend/internal/http/handlers/common"
	"github.com/ignatzorin/projecthub-backend/internal/service"
	"github.com/ignatzorin/projecthub-backend/internal/validation"
)

// DiscoveryHandler обслуживает сессии поиска проектов.
type DiscoveryHandler struct {
	discovery *service.DiscoveryService
}

// NewDiscoveryHandler создаёт новый хэндлер сессий поиска.
func NewDiscoveryHandler(discovery *service.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{discovery: discovery}
}

// StartSession обслуживает POST /api/discovery/sessions.
// Начальное состояние берётся из поля query тела либо из параметров URL.
func (h *DiscoveryHandler) StartSession(c *gin.Context) {
	var req dto.StartSessionRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			common.RespondBadRequest(c, "некорректное тело запроса")
			return
		}
	}

	raw := req.Query
	if raw == "" {
		raw = c.Request.URL.RawQuery
	}
	if err := validation.ValidateRawQuery(raw); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	view, err := h.discovery.StartSession(c.Request.Context(), raw)
	if err != nil {
		common.Fail(c, err)
		return
	}
	common.RespondJSON(c, http.StatusCreated, view)
}

// GetSession обслуживает GET /api/discovery/sessions/:id
func (h *DiscoveryHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	h.respond(c)(h.discovery.GetSession(c.Request.Context(), id))
}

// SetSearch обслуживает PUT /api/discovery/sessions/:id/search
func (h *DiscoveryHandler) SetSearch(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.SetSearchRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, "поле query обязательно")
		return
	}
	if err := validation.ValidateSearch(*req.Query); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	h.respond(c)(h.discovery.SetText(c.Request.Context(), id, *req.Query))
}

// SetStatus обслуживает PUT /api/discovery/sessions/:id/status
func (h *DiscoveryHandler) SetStatus(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.SetStatusRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, "поле status обязательно")
		return
	}
	if err := validation.ValidateSelector("status", *req.Status); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	h.respond(c)(h.discovery.SetStatus(c.Request.Context(), id, *req.Status))
}

// SetCategory обслуживает PUT /api/discovery/sessions/:id/category
func (h *DiscoveryHandler) SetCategory(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.SetCategoryRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, "поле category обязательно")
		return
	}
	if err := validation.ValidateSelector("category", *req.Category); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	h.respond(c)(h.discovery.SetCategory(c.Request.Context(), id, *req.Category))
}

// ToggleSkill обслуживает POST /api/discovery/sessions/:id/skills/toggle
func (h *DiscoveryHandler) ToggleSkill(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.ToggleSkillRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, "поле skill обязательно")
		return
	}
	if err := validation.ValidateSkill(req.Skill); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	h.respond(c)(h.discovery.ToggleSkill(c.Request.Context(), id, req.Skill))
}

// ClearFilters обслуживает DELETE /api/discovery/sessions/:id/filters
func (h *DiscoveryHandler) ClearFilters(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	h.respond(c)(h.discovery.ClearAll(c.Request.Context(), id))
}

// EndSession обслуживает DELETE /api/discovery/sessions/:id
func (h *DiscoveryHandler) EndSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.discovery.EndSession(c.Request.Context(), id); err != nil {
		common.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DiscoveryHandler) respond(c *gin.Context) func(*service.SessionView, error) {
	return func(view *service.SessionView, err error) {
		if err != nil {
			common.Fail(c, err)
			return
		}
		common.RespondJSON(c, http.StatusOK, view)
	}
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return uuid.Nil, false
	}
	return id, true
}
