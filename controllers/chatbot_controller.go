package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zain-site-backend/models"
	"zain-site-backend/services"
)

type ChatbotController struct {
	chatbotService *services.ChatbotService
}

func NewChatbotController(chatbotService *services.ChatbotService) *ChatbotController {
	return &ChatbotController{
		chatbotService: chatbotService,
	}
}

// HandleChat processes one chat turn.
func (cc *ChatbotController) HandleChat(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	response := cc.chatbotService.ProcessMessage(c.Request.Context(), req)
	c.JSON(http.StatusOK, response)
}

// HandleQuickAction answers one of the widget's quick-action buttons.
func (cc *ChatbotController) HandleQuickAction(c *gin.Context) {
	var req struct {
		Action         string `json:"action" binding:"required"`
		ConversationID string `json:"conversation_id" binding:"required"`
		SessionID      string `json:"session_id,omitempty"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	response := cc.chatbotService.HandleQuickAction(c.Request.Context(), req.ConversationID, req.SessionID, req.Action)
	c.JSON(http.StatusOK, response)
}

// StartConversation opens a widget session.
func (cc *ChatbotController) StartConversation(c *gin.Context) {
	var req models.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	conv, err := cc.chatbotService.StartConversation(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to start conversation",
		})
		return
	}

	c.JSON(http.StatusCreated, conv)
}

// GetChatHistory retrieves one conversation's messages in turn order.
func (cc *ChatbotController) GetChatHistory(c *gin.Context) {
	conversationID := c.Param("id")

	limit := int64(50)
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.ParseInt(limitStr, 10, 64); err == nil {
			limit = l
		}
	}

	history, err := cc.chatbotService.History(c.Request.Context(), conversationID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve chat history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"count":   len(history),
	})
}

// CloseConversation marks a conversation closed.
func (cc *ChatbotController) CloseConversation(c *gin.Context) {
	if err := cc.chatbotService.CloseConversation(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to close conversation",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": models.ConversationClosed,
	})
}

// GetSupportedIntents returns the closed intent catalogue.
func (cc *ChatbotController) GetSupportedIntents(c *gin.Context) {
	intents := []map[string]interface{}{
		{
			"intent":      "greeting",
			"description": "Salutations and session openers",
			"examples":    []string{"hello", "hi there", "good morning"},
		},
		{
			"intent":      "service",
			"description": "Questions about a service area",
			"subtopics":   []string{models.TopicDigitalProduct, models.TopicAIAnalytics, models.TopicInfrastructure, models.TopicHealthcare},
			"examples":    []string{"Do you build mobile apps?", "Tell me about ZAIN HMS"},
		},
		{
			"intent":      "faq",
			"description": "Frequently asked questions",
			"subtopics":   []string{models.TopicPricing, models.TopicTimeline, models.TopicSupport, models.TopicSecurity, models.TopicIntegration},
			"examples":    []string{"How much does a project cost?", "How long does delivery take?"},
		},
		{
			"intent":      "contact",
			"description": "Requests to reach the team",
			"examples":    []string{"How can I contact you?", "I want to talk to sales"},
		},
		{
			"intent":      "demo",
			"description": "Demo requests",
			"examples":    []string{"Can I see a demo?", "Show me a preview"},
		},
		{
			"intent":      "general",
			"description": "Everything else; answered with a handoff suggestion",
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"intents": intents,
	})
}

// GetActions returns the closed vocabulary of suggested-action identifiers
// and their button labels.
func (cc *ChatbotController) GetActions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"actions": services.ActionLabels,
	})
}
