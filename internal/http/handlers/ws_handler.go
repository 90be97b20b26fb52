package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ignatzorin/projecthub-backend/internal/http/handlers/common"
	"github.com/ignatzorin/projecthub-backend/internal/service"
	"github.com/ignatzorin/projecthub-backend/internal/ws"
)

// WSHandler отвечает за установку WebSocket соединений.
type WSHandler struct {
	hub       *ws.Hub
	discovery *service.DiscoveryService
	upgrader  websocket.Upgrader
}

// NewWSHandler создаёт новый хэндлер.
func NewWSHandler(hub *ws.Hub, discovery *service.DiscoveryService) *WSHandler {
	return &WSHandler{
		hub:       hub,
		discovery: discovery,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle обслуживает GET /api/discovery/sessions/:id/ws
func (h *WSHandler) Handle(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	// Подписываться можно только на существующую сессию.
	if _, err := h.discovery.GetSession(c.Request.Context(), id); err != nil {
		common.Fail(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := ws.NewClient(conn, h.hub, id)
	h.hub.Register(client)

	client.Run(c.Request.Context())
}
