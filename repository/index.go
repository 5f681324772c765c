package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"main/utils"
)

// SetupIndexes creates the indexes the query paths rely on. Safe to call on
// every startup; CreateMany is a no-op for indexes that already exist.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	notesCollection := db.Collection("notes")
	usersCollection := db.Collection(utils.GetEnv("USERS_COLLECTION", "users"))
	sessionsCollection := db.Collection(utils.GetEnv("SESSION_COLLECTION", "sessions"))

	noteIndexes := []mongo.IndexModel{
		// Active/archived listings sort on updated_at
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_trashed", Value: 1},
				{Key: "updated_at", Value: -1},
			},
			Options: options.Index().SetName("user_active_notes"),
		},
		// Trash listing and the retention purge filter on trashed_at
		{
			Keys: bson.D{
				{Key: "is_trashed", Value: 1},
				{Key: "trashed_at", Value: 1},
			},
			Options: options.Index().SetName("trash_retention"),
		},
		// Tag membership queries
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "tags", Value: 1},
			},
			Options: options.Index().SetName("user_tags"),
		},
		// Due-date classification
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "due_date", Value: 1},
			},
			Options: options.Index().SetName("user_due_dates"),
		},
	}

	userIndexes := []mongo.IndexModel{
		// Registration conflict detection
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("unique_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_id_index").SetUnique(true),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetName("session_id_index").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().SetName("user_active_sessions"),
		},
	}

	if _, err := notesCollection.Indexes().CreateMany(ctx, noteIndexes); err != nil {
		return fmt.Errorf("failed to create notes indexes: %w", err)
	}
	if _, err := usersCollection.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}
	if _, err := sessionsCollection.Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("failed to create sessions indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
