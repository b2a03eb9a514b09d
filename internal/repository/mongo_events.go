package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/13132klain/ufa-backend/internal/models"
)

type MongoEventRepository struct {
	col *mongo.Collection
}

func NewMongoEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{col: db.Collection("events")}
}

func (r *MongoEventRepository) List(ctx context.Context) ([]models.Event, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *MongoEventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	var ev models.Event
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&ev)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *MongoEventRepository) Insert(ctx context.Context, ev models.Event) error {
	_, err := r.col.InsertOne(ctx, ev)
	return err
}

func (r *MongoEventRepository) Replace(ctx context.Context, ev models.Event) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": ev.ID}, ev)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoEventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
