package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/business-launch/modules-api/utils"
)

// WSHandler pushes module change signals to a user's other open sessions so
// a second tab refreshes its dashboard. Broadcasts never cross user
// boundaries.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024 * 1024

	// Keep-alive settings for cloud hosting
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		userID, _ := s.Get("user_id")
		if id, ok := userID.(string); ok {
			utils.LogWebSocket("disconnected", id)
		}
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket Error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the connection. Browsers cannot set headers on the
// upgrade request, so the access token arrives as a query parameter.
func (h *WSHandler) HandleWS(c *gin.Context) {
	userID, _, err := utils.ParseAccessToken(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	utils.LogWebSocket("connected", userID)

	err = h.M.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

// BroadcastUpdate signals every session owned by the given user.
func (h *WSHandler) BroadcastUpdate(userID string, updateType string, moduleID string) {
	if h == nil || h.M == nil {
		return
	}

	msg := []byte(`{"type": "` + updateType + `", "module_id": "` + moduleID + `"}`)

	err := h.M.BroadcastFilter(msg, func(q *melody.Session) bool {
		id, exists := q.Get("user_id")
		return exists && id == userID
	})

	if err != nil {
		log.Printf("⚠️ Error broadcasting to user %s: %v", utils.MaskID(userID), err)
	}
}
