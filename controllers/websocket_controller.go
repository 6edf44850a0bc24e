package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"zain-site-backend/logger"
	"zain-site-backend/models"
	"zain-site-backend/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Configure properly for production
	},
}

type WebSocketController struct {
	chatbotService *services.ChatbotService
}

func NewWebSocketController(chatbotService *services.ChatbotService) *WebSocketController {
	return &WebSocketController{
		chatbotService: chatbotService,
	}
}

// HandleWebSocket runs the realtime chat loop for one widget connection.
// Each frame is one chat turn; replies are sent back on the same socket.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn(logger.Fields{"error": err.Error()}, "websocket upgrade failed")
		return
	}
	defer conn.Close()

	conversationID := c.Query("conversation_id")
	sessionID := c.Query("session_id")

	if conversationID == "" {
		conv, err := wc.chatbotService.StartConversation(c.Request.Context(), models.StartConversationRequest{
			SessionID: sessionID,
		})
		if err != nil {
			conn.WriteJSON(map[string]interface{}{"error": "Failed to start conversation"})
			return
		}
		conversationID = conv.ID
		conn.WriteJSON(map[string]interface{}{"conversation_id": conversationID})
	}

	for {
		var msg map[string]string
		if err := conn.ReadJSON(&msg); err != nil {
			logger.Debug(logger.Fields{"error": err.Error()}, "websocket read ended")
			break
		}

		req := models.ChatRequest{
			Message:        msg["message"],
			ConversationID: conversationID,
			SessionID:      sessionID,
			UserID:         msg["user_id"],
		}

		response := wc.chatbotService.ProcessMessage(c.Request.Context(), req)
		if err := conn.WriteJSON(response); err != nil {
			break
		}
	}
}
