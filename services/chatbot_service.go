package services

import (
	"context"
	"math/rand"
	"time"

	"zain-site-backend/logger"
	"zain-site-backend/models"
	"zain-site-backend/observability"
	"zain-site-backend/utils"
)

// ConversationStore is the durable append-only log of chat messages keyed
// by conversation id. Implementations own the persistence format.
type ConversationStore interface {
	SaveConversation(ctx context.Context, conv *models.Conversation) error
	AppendMessage(ctx context.Context, msg *models.Message) error
	History(ctx context.Context, conversationID string, limit int64) ([]models.Message, error)
	CloseConversation(ctx context.Context, conversationID string) error
}

// EventSink receives fire-and-forget analytics events. No acknowledgment,
// no retry; a failing sink must never block a chat turn.
type EventSink interface {
	Track(ctx context.Context, event *models.AnalyticsEvent)
}

type ChatbotService struct {
	classifier *utils.IntentClassifier
	knowledge  *KnowledgeBase
	store      ConversationStore
	sink       EventSink
}

func NewChatbotService(store ConversationStore, sink EventSink) *ChatbotService {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &ChatbotService{
		classifier: utils.NewIntentClassifier(),
		knowledge:  NewKnowledgeBase(rng),
		store:      store,
		sink:       sink,
	}
}

// Classifier exposes the classifier for the intents endpoint.
func (s *ChatbotService) Classifier() *utils.IntentClassifier {
	return s.classifier
}

// Knowledge exposes the template tables for the intents/actions endpoints.
func (s *ChatbotService) Knowledge() *KnowledgeBase {
	return s.knowledge
}

// ProcessMessage runs one chat turn: classify, select a response, persist
// the user message then the bot message in that order, and emit a turn
// event. Classification and selection never fail; persistence failures are
// logged and the reply is still returned.
func (s *ChatbotService) ProcessMessage(ctx context.Context, req models.ChatRequest) *models.ChatResponse {
	result := s.classifier.Classify(req.Message)
	payload := s.knowledge.Respond(result, req.Message)

	userMsg := models.NewMessage(utils.NewMessageID(), req.ConversationID, models.SenderUser, req.Message)
	userMsg.Intent = result.Intent
	userMsg.Confidence = result.Confidence

	botMsg := models.NewMessage(utils.NewMessageID(), req.ConversationID, models.SenderBot, payload.Text)
	botMsg.Intent = result.Intent
	botMsg.Metadata = map[string]interface{}{"actions": payload.Actions}

	// User message first, bot message second: turn order is the log order.
	if err := s.store.AppendMessage(ctx, userMsg); err != nil {
		logger.Error(logger.Fields{
			"conversation_id": req.ConversationID,
			"error":           err.Error(),
		}, "failed to persist user message")
	} else if err := s.store.AppendMessage(ctx, botMsg); err != nil {
		logger.Error(logger.Fields{
			"conversation_id": req.ConversationID,
			"error":           err.Error(),
		}, "failed to persist bot message")
	}

	s.sink.Track(ctx, &models.AnalyticsEvent{
		ID:        utils.NewMessageID(),
		SessionID: req.SessionID,
		Type:      "chat_turn",
		Category:  "chatbot",
		Action:    string(result.Intent),
		Label:     result.Topic,
		Properties: map[string]interface{}{
			"conversation_id": req.ConversationID,
			"confidence":      result.Confidence,
		},
		CreatedAt: time.Now().UTC(),
	})

	observability.RecordChatTurn(string(result.Intent))

	return &models.ChatResponse{
		Response:   payload.Text,
		Intent:     result.Intent,
		Topic:      result.Topic,
		Confidence: result.Confidence,
		Actions:    payload.Actions,
		MessageID:  botMsg.ID,
	}
}

// StartConversation registers a widget session. Missing identifiers are
// minted server-side with the widget's opaque id format.
func (s *ChatbotService) StartConversation(ctx context.Context, req models.StartConversationRequest) (*models.Conversation, error) {
	conv := &models.Conversation{
		ID:        req.ConversationID,
		UserID:    req.UserID,
		SessionID: req.SessionID,
		Status:    models.ConversationActive,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if conv.ID == "" {
		conv.ID = utils.NewID()
	}
	if conv.UserID == "" {
		conv.UserID = utils.NewID()
	}
	if conv.SessionID == "" {
		conv.SessionID = utils.NewID()
	}

	if err := s.store.SaveConversation(ctx, conv); err != nil {
		return nil, err
	}

	return conv, nil
}

// History returns up to limit messages of a conversation in turn order.
func (s *ChatbotService) History(ctx context.Context, conversationID string, limit int64) ([]models.Message, error) {
	return s.store.History(ctx, conversationID, limit)
}

// CloseConversation transitions a conversation from active to closed.
func (s *ChatbotService) CloseConversation(ctx context.Context, conversationID string) error {
	return s.store.CloseConversation(ctx, conversationID)
}

// HandleQuickAction answers one of the widget's quick-action buttons. The
// synthesized user message and the bot reply are persisted like a normal
// turn.
func (s *ChatbotService) HandleQuickAction(ctx context.Context, conversationID, sessionID, action string) *models.ChatResponse {
	payload := s.knowledge.QuickAction(action)

	userMsg := models.NewMessage(utils.NewMessageID(), conversationID, models.SenderUser, "Tell me about "+action)
	botMsg := models.NewMessage(utils.NewMessageID(), conversationID, models.SenderBot, payload.Text)
	botMsg.Metadata = map[string]interface{}{"actions": payload.Actions}

	if err := s.store.AppendMessage(ctx, userMsg); err != nil {
		logger.Error(logger.Fields{
			"conversation_id": conversationID,
			"error":           err.Error(),
		}, "failed to persist quick-action message")
	} else if err := s.store.AppendMessage(ctx, botMsg); err != nil {
		logger.Error(logger.Fields{
			"conversation_id": conversationID,
			"error":           err.Error(),
		}, "failed to persist quick-action reply")
	}

	s.sink.Track(ctx, &models.AnalyticsEvent{
		ID:        utils.NewMessageID(),
		SessionID: sessionID,
		Type:      "quick_action",
		Category:  "chatbot",
		Action:    action,
		CreatedAt: time.Now().UTC(),
	})

	return &models.ChatResponse{
		Response: payload.Text,
		Actions:  payload.Actions,
	}
}
