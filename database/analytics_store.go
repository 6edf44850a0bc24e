package database

import (
	"context"
	"fmt"
	"time"

	"zain-site-backend/logger"
	"zain-site-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAnalyticsStore implements services.AnalyticsStore. Track is
// fire-and-forget: a failed insert is logged and dropped, never surfaced
// to the caller.
type MongoAnalyticsStore struct {
	db *mongo.Database
}

func NewMongoAnalyticsStore(db *mongo.Database) *MongoAnalyticsStore {
	return &MongoAnalyticsStore{db: db}
}

func (s *MongoAnalyticsStore) Track(ctx context.Context, event *models.AnalyticsEvent) {
	if _, err := s.db.Collection(CollEvents).InsertOne(ctx, event); err != nil {
		logger.Warn(logger.Fields{
			"event_type": event.Type,
			"error":      err.Error(),
		}, "dropped analytics event")
	}
}

// Aggregate groups events by type, category and day within [from, to].
func (s *MongoAnalyticsStore) Aggregate(ctx context.Context, from, to time.Time, eventType string) ([]models.EventCount, error) {
	match := bson.D{
		{Key: "created_at", Value: bson.D{
			{Key: "$gte", Value: from},
			{Key: "$lte", Value: to},
		}},
	}
	if eventType != "" {
		match = append(match, bson.E{Key: "event_type", Value: eventType})
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "event_type", Value: "$event_type"},
				{Key: "event_category", Value: "$event_category"},
				{Key: "date", Value: bson.D{{Key: "$dateToString", Value: bson.D{
					{Key: "format", Value: "%Y-%m-%d"},
					{Key: "date", Value: "$created_at"},
				}}}},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "event_type", Value: "$_id.event_type"},
			{Key: "event_category", Value: "$_id.event_category"},
			{Key: "date", Value: "$_id.date"},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}}}},
	}

	cursor, err := s.db.Collection(CollEvents).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate events: %w", err)
	}
	defer cursor.Close(ctx)

	counts := []models.EventCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode event counts: %w", err)
	}
	return counts, nil
}

// Stats counts documents per collection.
func (s *MongoAnalyticsStore) Stats(ctx context.Context) (*models.StoreStats, error) {
	stats := &models.StoreStats{}

	var err error
	if stats.Contacts, err = s.db.Collection(CollContacts).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}
	if stats.Conversations, err = s.db.Collection(CollConversations).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("failed to count conversations: %w", err)
	}
	if stats.Messages, err = s.db.Collection(CollMessages).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}
	if stats.Events, err = s.db.Collection(CollEvents).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	return stats, nil
}

// Export bundles contacts, conversations, messages and the last 30 days
// of aggregated analytics.
func (s *MongoAnalyticsStore) Export(ctx context.Context) (*models.DataExport, error) {
	now := time.Now().UTC()

	contacts, err := NewMongoContactStore(s.db).ListContacts(ctx, 1000, 0)
	if err != nil {
		return nil, err
	}

	conversations := []models.Conversation{}
	convCursor, err := s.db.Collection(CollConversations).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(1000))
	if err != nil {
		return nil, fmt.Errorf("failed to export conversations: %w", err)
	}
	if err := convCursor.All(ctx, &conversations); err != nil {
		return nil, fmt.Errorf("failed to decode conversations: %w", err)
	}

	messages := []models.Message{}
	msgCursor, err := s.db.Collection(CollMessages).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(5000))
	if err != nil {
		return nil, fmt.Errorf("failed to export messages: %w", err)
	}
	if err := msgCursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	analytics, err := s.Aggregate(ctx, now.AddDate(0, 0, -30), now, "")
	if err != nil {
		return nil, err
	}

	return &models.DataExport{
		ExportedAt:    now,
		Version:       "1.0",
		Contacts:      contacts,
		Conversations: conversations,
		Messages:      messages,
		Analytics:     analytics,
	}, nil
}
