package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zain-site-backend/models"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

// fakeConversationStore records calls in order so tests can assert the
// user-before-bot persistence contract.
type fakeConversationStore struct {
	conversations []models.Conversation
	messages      []models.Message
	closed        []string
	appendErr     error
}

func (f *fakeConversationStore) SaveConversation(_ context.Context, conv *models.Conversation) error {
	f.conversations = append(f.conversations, *conv)
	return nil
}

func (f *fakeConversationStore) AppendMessage(_ context.Context, msg *models.Message) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeConversationStore) History(_ context.Context, conversationID string, limit int64) ([]models.Message, error) {
	var out []models.Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeConversationStore) CloseConversation(_ context.Context, conversationID string) error {
	f.closed = append(f.closed, conversationID)
	return nil
}

type fakeEventSink struct {
	events []models.AnalyticsEvent
}

func (f *fakeEventSink) Track(_ context.Context, event *models.AnalyticsEvent) {
	f.events = append(f.events, *event)
}

func TestProcessMessage_PersistsUserThenBot(t *testing.T) {
	store := &fakeConversationStore{}
	sink := &fakeEventSink{}
	svc := NewChatbotService(store, sink)

	resp := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:        "how much does a project cost",
		ConversationID: "conv-1",
		SessionID:      "sess-1",
	})

	require.NotNil(t, resp)
	assert.Equal(t, models.IntentFAQ, resp.Intent)
	assert.Equal(t, models.TopicPricing, resp.Topic)
	assert.InDelta(t, 0.8, resp.Confidence, 1e-9)
	assert.NotEmpty(t, resp.Response)
	assert.NotEmpty(t, resp.MessageID)

	require.Len(t, store.messages, 2)
	assert.Equal(t, models.SenderUser, store.messages[0].Sender)
	assert.Equal(t, "how much does a project cost", store.messages[0].Text)
	assert.Equal(t, models.SenderBot, store.messages[1].Sender)
	assert.Equal(t, resp.Response, store.messages[1].Text)
	assert.Equal(t, "conv-1", store.messages[0].ConversationID)
	assert.Equal(t, "conv-1", store.messages[1].ConversationID)
}

func TestProcessMessage_EmitsTurnEvent(t *testing.T) {
	store := &fakeConversationStore{}
	sink := &fakeEventSink{}
	svc := NewChatbotService(store, sink)

	svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:        "hello",
		ConversationID: "conv-1",
		SessionID:      "sess-1",
	})

	require.Len(t, sink.events, 1)
	event := sink.events[0]
	assert.Equal(t, "chat_turn", event.Type)
	assert.Equal(t, "chatbot", event.Category)
	assert.Equal(t, string(models.IntentGreeting), event.Action)
	assert.Equal(t, "sess-1", event.SessionID)
	assert.Equal(t, "conv-1", event.Properties["conversation_id"])
}

func TestProcessMessage_ReturnsReplyOnStoreFailure(t *testing.T) {
	store := &fakeConversationStore{appendErr: errors.New("mongo down")}
	sink := &fakeEventSink{}
	svc := NewChatbotService(store, sink)

	resp := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:        "hello",
		ConversationID: "conv-1",
	})

	// Persistence failure degrades to a stateless chat turn.
	require.NotNil(t, resp)
	assert.Equal(t, models.IntentGreeting, resp.Intent)
	assert.Empty(t, store.messages)
	assert.Len(t, sink.events, 1)
}

func TestStartConversation_MintsMissingIDs(t *testing.T) {
	store := &fakeConversationStore{}
	svc := NewChatbotService(store, &fakeEventSink{})

	conv, err := svc.StartConversation(context.Background(), models.StartConversationRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, conv.ID)
	assert.NotEmpty(t, conv.UserID)
	assert.NotEmpty(t, conv.SessionID)
	assert.Equal(t, models.ConversationActive, conv.Status)
	require.Len(t, store.conversations, 1)
	assert.Equal(t, conv.ID, store.conversations[0].ID)
}

func TestStartConversation_KeepsClientIDs(t *testing.T) {
	store := &fakeConversationStore{}
	svc := NewChatbotService(store, &fakeEventSink{})

	conv, err := svc.StartConversation(context.Background(), models.StartConversationRequest{
		ConversationID: "conv-9",
		UserID:         "user-9",
		SessionID:      "sess-9",
	})
	require.NoError(t, err)

	assert.Equal(t, "conv-9", conv.ID)
	assert.Equal(t, "user-9", conv.UserID)
	assert.Equal(t, "sess-9", conv.SessionID)
}

func TestHandleQuickAction(t *testing.T) {
	store := &fakeConversationStore{}
	sink := &fakeEventSink{}
	svc := NewChatbotService(store, sink)

	resp := svc.HandleQuickAction(context.Background(), "conv-1", "sess-1", "pricing")

	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Response)
	assert.NotEmpty(t, resp.Actions)

	require.Len(t, store.messages, 2)
	assert.Equal(t, models.SenderUser, store.messages[0].Sender)
	assert.Equal(t, "Tell me about pricing", store.messages[0].Text)
	assert.Equal(t, models.SenderBot, store.messages[1].Sender)

	require.Len(t, sink.events, 1)
	assert.Equal(t, "quick_action", sink.events[0].Type)
	assert.Equal(t, "pricing", sink.events[0].Action)
}

func TestHistoryAndClose_DelegateToStore(t *testing.T) {
	store := &fakeConversationStore{}
	svc := NewChatbotService(store, &fakeEventSink{})

	svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:        "hello",
		ConversationID: "conv-1",
	})
	svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:        "demo please",
		ConversationID: "conv-2",
	})

	history, err := svc.History(context.Background(), "conv-1", 50)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	require.NoError(t, svc.CloseConversation(context.Background(), "conv-1"))
	assert.Equal(t, []string{"conv-1"}, store.closed)
}
