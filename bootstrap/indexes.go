package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// EnsureIndexes creates the secondary indexes the dashboard queries rely on.
// Registration indexes match the local fallback schema so both tiers answer
// the same lookups.
func EnsureIndexes(db *mongo.Database) error {
	regs := db.Collection("event_registrations")
	_, err := regs.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "event_id", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "registration_date", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("donations").Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}
