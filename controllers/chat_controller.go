package controllers

import (
	"log"

	"stayhub/config"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/olahol/melody"
)

// ChatWS upgrades the connection and lets melody drive the session. The
// FAQ bot answers each incoming message; logged-in users get a stable
// context key, anonymous ones a per-session id.
func ChatWS(m *melody.Melody) gin.HandlerFunc {
	return func(c *gin.Context) {
		keys := map[string]interface{}{
			"sessionID": uuid.NewString(),
		}
		if userID := c.GetUint("userID"); userID != 0 {
			keys["userID"] = int(userID)
		}
		if err := m.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
			log.Printf("chat websocket upgrade: %v", err)
		}
	}
}

// HandleChatMessage is the melody message callback registered at startup
func HandleChatMessage(s *melody.Session, msg []byte) {
	userID := 0
	if v, ok := s.Get("userID"); ok {
		if id, ok := v.(int); ok {
			userID = id
		}
	}
	sessionID := ""
	if v, ok := s.Get("sessionID"); ok {
		sessionID, _ = v.(string)
	}

	redisKey := services.GetCacheKey(userID, sessionID)
	for _, reply := range services.HandleUserMessageWS(config.Ctx, redisKey, string(msg)) {
		if err := s.Write(reply); err != nil {
			log.Printf("chat reply to %s: %v", redisKey, err)
		}
	}
}
