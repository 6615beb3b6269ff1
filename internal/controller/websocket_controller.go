package controller

import (
	"log/slog"
	"net/http"

	ws "github.com/gorilla/websocket"

	"github.com/ricotama/LAPORin/internal/config"
	"github.com/ricotama/LAPORin/internal/helper"
	"github.com/ricotama/LAPORin/internal/middleware"
	"github.com/ricotama/LAPORin/internal/websocket"
)

type WebSocketController struct {
	hub       *websocket.Hub
	limiter   *config.RateLimiter
	rateLimit *middleware.RateLimitMiddleware
}

func NewWebSocketController(hub *websocket.Hub, limiter *config.RateLimiter, rateLimit *middleware.RateLimitMiddleware) *WebSocketController {
	return &WebSocketController{
		hub:       hub,
		limiter:   limiter,
		rateLimit: rateLimit,
	}
}

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS godoc
// @Summary      WebSocket Connection
// @Description  Upgrade to WebSocket. Every connection immediately receives the current report snapshot, then a fresh snapshot on every change.
// @Tags         websocket
// @Success      101  {string}  string  "Switching Protocols"
// @Failure      429  {object}  helper.ResponseError
// @Router       /ws [get]
func (c *WebSocketController) ServeWS(w http.ResponseWriter, r *http.Request) {
	if !c.limiter.Allow(c.rateLimit.ClientIP(r)) {
		helper.WriteError(w, helper.NewTooManyRequestsError("Too many connection attempts. Please try again later."))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade websocket", "error", err)
		return
	}

	client := &websocket.Client{
		Hub:  c.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
