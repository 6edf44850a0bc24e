package database

import (
	"context"
	"time"

	"zain-site-backend/config"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect establishes the database connection.
func Connect(cfg *config.Config) error {
	return ConnectMongoDB(cfg)
}

// Disconnect closes the database connection.
func Disconnect() error {
	return DisconnectMongoDB()
}

// HealthCheck performs a database health check
func HealthCheck() error {
	if mongoClient == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return mongoClient.Ping(ctx, readpref.Primary())
}
