package database

import (
	"context"
	"fmt"
	"time"

	"zain-site-backend/config"
	"zain-site-backend/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CollConversations = "conversations"
	CollMessages      = "messages"
	CollContacts      = "contacts"
	CollLeadScores    = "lead_scores"
	CollEvents        = "analytics_events"
)

var (
	mongoClient *mongo.Client
	mongoDB     *mongo.Database
)

// ConnectMongoDB establishes connection to MongoDB
func ConnectMongoDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.BuildDatabaseURI()).
		SetMaxPoolSize(uint64(cfg.Database.MaxConnections)).
		SetMinPoolSize(uint64(cfg.Database.MinConnections)).
		SetMaxConnIdleTime(cfg.Database.MaxIdleTime)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.Database.Name)

	logger.Info(logger.Fields{"database": cfg.Database.Name}, "connected to MongoDB")

	if err := createIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// GetMongoDB returns the MongoDB database instance
func GetMongoDB() *mongo.Database {
	if mongoDB == nil {
		logger.Fatal(nil, "MongoDB not initialized")
	}
	return mongoDB
}

// createIndexes creates necessary indexes
func createIndexes(ctx context.Context) error {
	messageIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "conversation_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	if _, err := mongoDB.Collection(CollMessages).Indexes().CreateMany(ctx, messageIndexes); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}

	conversationIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "session_id", Value: 1}},
		},
	}
	if _, err := mongoDB.Collection(CollConversations).Indexes().CreateMany(ctx, conversationIndexes); err != nil {
		return fmt.Errorf("failed to create conversation indexes: %w", err)
	}

	contactIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	if _, err := mongoDB.Collection(CollContacts).Indexes().CreateMany(ctx, contactIndexes); err != nil {
		return fmt.Errorf("failed to create contact indexes: %w", err)
	}

	eventIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "session_id", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "event_type", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
	}
	if _, err := mongoDB.Collection(CollEvents).Indexes().CreateMany(ctx, eventIndexes); err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}

	logger.Info(nil, "database indexes created")
	return nil
}

// DisconnectMongoDB closes the MongoDB connection
func DisconnectMongoDB() error {
	if mongoClient == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := mongoClient.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	logger.Info(nil, "disconnected from MongoDB")
	return nil
}
