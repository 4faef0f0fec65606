package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionIndex struct {
	collection string
	model      mongo.IndexModel
}

func indexes() []collectionIndex {
	return []collectionIndex{
		{
			collection: usersCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("uniq_email").SetUnique(true),
			},
		},
		{
			collection: roomsCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "privacy", Value: 1}},
				Options: options.Index().SetName("idx_active_privacy"),
			},
		},
		{
			collection: sessionsCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "room_id", Value: 1}},
				Options: options.Index().SetName("idx_room"),
			},
		},
		{
			collection: interactionsCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "session_id", Value: 1}, {Key: "timestamp", Value: 1}},
				Options: options.Index().SetName("idx_session_timestamp"),
			},
		},
	}
}

// EnsureIndexes is idempotent; CreateOne is a no-op for an identical index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range indexes() {
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("create index on %s: %w", idx.collection, err)
		}
	}
	return nil
}
