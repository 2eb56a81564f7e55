package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"news-backend/internal/config"
)

// MongoDB wraps the client and the news collection handle. Single-document
// atomicity is delegated entirely to MongoDB itself.
type MongoDB struct {
	Client     *mongo.Client
	Config     *config.MongoConfig
	collection *mongo.Collection
}

// Connect establishes the client with retry. Each attempt gets its own
// timeout; delay between attempts grows linearly.
func Connect(ctx context.Context, cfg *config.MongoConfig) (*MongoDB, error) {
	var client *mongo.Client
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		log.Info().Int("attempt", attempt).Int("max", cfg.MaxRetries).Msg("Connecting to MongoDB...")

		connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		client, lastErr = mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
		if lastErr == nil {
			lastErr = client.Ping(connectCtx, readpref.Primary())
			if lastErr == nil {
				cancel()
				log.Info().Str("database", cfg.Database).Msg("Connected to MongoDB")
				return &MongoDB{
					Client:     client,
					Config:     cfg,
					collection: client.Database(cfg.Database).Collection(cfg.Collection),
				}, nil
			}
			_ = client.Disconnect(context.Background())
		}
		cancel()

		log.Warn().Err(lastErr).Int("attempt", attempt).Msg("MongoDB connection failed")
		if attempt < cfg.MaxRetries {
			time.Sleep(cfg.RetryDelay * time.Duration(attempt))
		}
	}

	return nil, fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", cfg.MaxRetries, lastErr)
}

// Collection returns the news collection handle.
func (db *MongoDB) Collection() *mongo.Collection {
	return db.collection
}

// HealthCheck pings the primary.
func (db *MongoDB) HealthCheck(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (db *MongoDB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}
