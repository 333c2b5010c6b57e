package handlers

import (
	"log"
	"net/http"

	"smarthome-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// FeedHandler upgrades clients onto the live security-event feed. Every
// security log created through the HTTP API is broadcast to subscribers.
type FeedHandler struct {
	mgr *ws.Manager
}

func NewFeedHandler(mgr *ws.Manager) *FeedHandler {
	return &FeedHandler{mgr: mgr}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleSecurityFeed upgrades to websocket and streams new security events.
// GET /ws
func (h *FeedHandler) HandleSecurityFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mgr.Subscribe(conn)
	defer h.mgr.Unsubscribe(conn)

	// The feed is one-way; read until the client goes away so we notice the
	// close and can drop the subscription.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
