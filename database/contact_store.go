package database

import (
	"context"
	"fmt"

	"zain-site-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoContactStore implements services.ContactStore.
type MongoContactStore struct {
	db *mongo.Database
}

func NewMongoContactStore(db *mongo.Database) *MongoContactStore {
	return &MongoContactStore{db: db}
}

// SaveContact persists a submission and its lead score. The two inserts
// are not transactional; a contact without its score is acceptable noise
// for this system and the list pipeline tolerates it.
func (s *MongoContactStore) SaveContact(ctx context.Context, contact *models.ContactSubmission, score *models.LeadScore) error {
	if _, err := s.db.Collection(CollContacts).InsertOne(ctx, contact); err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	if _, err := s.db.Collection(CollLeadScores).InsertOne(ctx, score); err != nil {
		return fmt.Errorf("failed to insert lead score: %w", err)
	}
	return nil
}

// ListContacts returns submissions joined with their lead scores, newest
// first.
func (s *MongoContactStore) ListContacts(ctx context.Context, limit, offset int64) ([]models.ScoredContact, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$skip", Value: offset}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollLeadScores},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "contact_id"},
			{Key: "as", Value: "lead"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$lead"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "score", Value: "$lead.score"},
			{Key: "engagement_level", Value: "$lead.engagement_level"},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "lead", Value: 0}}}},
	}

	cursor, err := s.db.Collection(CollContacts).Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer cursor.Close(ctx)

	contacts := []models.ScoredContact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}
