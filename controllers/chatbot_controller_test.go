package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zain-site-backend/models"
	"zain-site-backend/services"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type memoryStore struct {
	messages []models.Message
}

func (m *memoryStore) SaveConversation(context.Context, *models.Conversation) error { return nil }

func (m *memoryStore) AppendMessage(_ context.Context, msg *models.Message) error {
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *memoryStore) History(_ context.Context, conversationID string, _ int64) ([]models.Message, error) {
	var out []models.Message
	for _, msg := range m.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *memoryStore) CloseConversation(context.Context, string) error { return nil }

type nopSink struct{}

func (nopSink) Track(context.Context, *models.AnalyticsEvent) {}

func newChatRouter() (*gin.Engine, *memoryStore) {
	store := &memoryStore{}
	controller := NewChatbotController(services.NewChatbotService(store, nopSink{}))

	router := gin.New()
	router.POST("/chat", controller.HandleChat)
	router.POST("/conversations", controller.StartConversation)
	router.GET("/conversations/:id/messages", controller.GetChatHistory)
	router.GET("/intents", controller.GetSupportedIntents)
	router.GET("/actions", controller.GetActions)
	return router, store
}

func TestHandleChat_ReturnsClassifiedReply(t *testing.T) {
	router, store := newChatRouter()

	body := `{"message": "hello", "conversation_id": "conv-1", "session_id": "sess-1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.IntentGreeting, resp.Intent)
	assert.NotEmpty(t, resp.Response)
	assert.NotEmpty(t, resp.Actions)

	assert.Len(t, store.messages, 2)
}

func TestHandleChat_RejectsMissingMessage(t *testing.T) {
	router, _ := newChatRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"conversation_id": "conv-1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChat_RejectsOversizedMessage(t *testing.T) {
	router, _ := newChatRouter()

	body, err := json.Marshal(gin.H{
		"message":         strings.Repeat("a", 501),
		"conversation_id": "conv-1",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartConversation_ReturnsCreated(t *testing.T) {
	router, _ := newChatRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/conversations", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var conv models.Conversation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conv))
	assert.NotEmpty(t, conv.ID)
	assert.Equal(t, models.ConversationActive, conv.Status)
}

func TestGetChatHistory_ReturnsTurnOrder(t *testing.T) {
	router, _ := newChatRouter()

	body := `{"message": "demo please", "conversation_id": "conv-7"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/conversations/conv-7/messages", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		History []models.Message `json:"history"`
		Count   int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, models.SenderUser, resp.History[0].Sender)
	assert.Equal(t, models.SenderBot, resp.History[1].Sender)
}

func TestGetSupportedIntents_ClosedCatalogue(t *testing.T) {
	router, _ := newChatRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/intents", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Intents []map[string]interface{} `json:"intents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Intents, 6)
}

func TestGetActions_ReturnsLabels(t *testing.T) {
	router, _ := newChatRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/actions", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Actions map[string]string `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Contact Form", resp.Actions["contact_form"])
}
