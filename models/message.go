package models

import (
	"time"
)

type MessageIntent string

const (
	IntentGreeting MessageIntent = "greeting"
	IntentService  MessageIntent = "service"
	IntentFAQ      MessageIntent = "faq"
	IntentContact  MessageIntent = "contact"
	IntentDemo     MessageIntent = "demo"
	IntentGeneral  MessageIntent = "general"
)

// Service topics accepted by the classifier and the knowledge base.
const (
	TopicDigitalProduct = "digital-product"
	TopicAIAnalytics    = "ai-analytics"
	TopicInfrastructure = "infrastructure"
	TopicHealthcare     = "healthcare"
)

// FAQ topics accepted by the classifier and the knowledge base.
const (
	TopicPricing     = "pricing"
	TopicTimeline    = "timeline"
	TopicSupport     = "support"
	TopicSecurity    = "security"
	TopicIntegration = "integration"
)

// Classification is the result of running one utterance through the intent
// classifier. Confidence is the static value attached to the rule that
// matched; it carries no probabilistic meaning.
type Classification struct {
	Intent     MessageIntent `json:"intent"`
	Topic      string        `json:"subtopic,omitempty"`
	Confidence float64       `json:"confidence"`
}

type MessageSender string

const (
	SenderUser MessageSender = "user"
	SenderBot  MessageSender = "bot"
)

// Message is one entry in a conversation's append-only log. Created once,
// immutable thereafter.
type Message struct {
	ID             string                 `bson:"_id" json:"id"`
	ConversationID string                 `bson:"conversation_id" json:"conversation_id"`
	Sender         MessageSender          `bson:"sender" json:"sender"`
	Text           string                 `bson:"message" json:"message"`
	Intent         MessageIntent          `bson:"intent,omitempty" json:"intent,omitempty"`
	Confidence     float64                `bson:"confidence,omitempty" json:"confidence,omitempty"`
	Metadata       map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt      time.Time              `bson:"created_at" json:"created_at"`
}

// ConversationStatus tracks widget session state. Closing a conversation is
// a presentation concern and does not affect classification.
type ConversationStatus string

const (
	ConversationActive ConversationStatus = "active"
	ConversationClosed ConversationStatus = "closed"
)

type Conversation struct {
	ID        string             `bson:"_id" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	SessionID string             `bson:"session_id" json:"session_id"`
	Status    ConversationStatus `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type ChatRequest struct {
	Message        string `json:"message" binding:"required,max=500"`
	ConversationID string `json:"conversation_id" binding:"required"`
	SessionID      string `json:"session_id,omitempty"`
	UserID         string `json:"user_id,omitempty"`
}

type ChatResponse struct {
	Response   string        `json:"response"`
	Intent     MessageIntent `json:"intent"`
	Topic      string        `json:"subtopic,omitempty"`
	Confidence float64       `json:"confidence"`
	Actions    []string      `json:"actions,omitempty"`
	MessageID  string        `json:"message_id,omitempty"`
}

// ResponsePayload is what the response selector produces for a
// classification: canned text plus suggested follow-up action identifiers.
type ResponsePayload struct {
	Text    string   `json:"text"`
	Actions []string `json:"actions"`
}

// StartConversationRequest opens a widget session. IDs are opaque strings
// minted by the widget; missing ones are generated server-side.
type StartConversationRequest struct {
	ConversationID string `json:"conversation_id,omitempty"`
	UserID         string `json:"user_id,omitempty"`
	SessionID      string `json:"session_id,omitempty"`
}

func NewMessage(id, conversationID string, sender MessageSender, text string) *Message {
	return &Message{
		ID:             id,
		ConversationID: conversationID,
		Sender:         sender,
		Text:           text,
		CreatedAt:      time.Now().UTC(),
	}
}
