package database

import (
	"context"
	"fmt"
	"time"

	"zain-site-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConversationStore implements services.ConversationStore on top of
// the conversations and messages collections. Last write wins at document
// granularity; there is no cross-document transaction discipline.
type MongoConversationStore struct {
	db *mongo.Database
}

func NewMongoConversationStore(db *mongo.Database) *MongoConversationStore {
	return &MongoConversationStore{db: db}
}

// SaveConversation upserts a conversation record by id.
func (s *MongoConversationStore) SaveConversation(ctx context.Context, conv *models.Conversation) error {
	filter := bson.M{"_id": conv.ID}
	update := bson.M{
		"$set": bson.M{
			"user_id":    conv.UserID,
			"session_id": conv.SessionID,
			"status":     conv.Status,
			"updated_at": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"created_at": conv.CreatedAt,
		},
	}

	_, err := s.db.Collection(CollConversations).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}
	return nil
}

// AppendMessage inserts one message into the append-only log.
func (s *MongoConversationStore) AppendMessage(ctx context.Context, msg *models.Message) error {
	if _, err := s.db.Collection(CollMessages).InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// History returns up to limit messages of a conversation in insertion
// order (created_at ascending).
func (s *MongoConversationStore) History(ctx context.Context, conversationID string, limit int64) ([]models.Message, error) {
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(limit)

	cursor, err := s.db.Collection(CollMessages).Find(ctx, bson.M{"conversation_id": conversationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat history: %w", err)
	}
	return messages, nil
}

// CloseConversation marks a conversation closed. Closing is idempotent.
func (s *MongoConversationStore) CloseConversation(ctx context.Context, conversationID string) error {
	update := bson.M{
		"$set": bson.M{
			"status":     models.ConversationClosed,
			"updated_at": time.Now().UTC(),
		},
	}
	_, err := s.db.Collection(CollConversations).UpdateOne(ctx, bson.M{"_id": conversationID}, update)
	if err != nil {
		return fmt.Errorf("failed to close conversation: %w", err)
	}
	return nil
}
