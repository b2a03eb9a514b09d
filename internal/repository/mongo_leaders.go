package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/13132klain/ufa-backend/internal/models"
)

type MongoLeaderRepository struct {
	col *mongo.Collection
}

func NewMongoLeaderRepository(db *mongo.Database) *MongoLeaderRepository {
	return &MongoLeaderRepository{col: db.Collection("leaders")}
}

func (r *MongoLeaderRepository) List(ctx context.Context) ([]models.Leader, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	leaders := []models.Leader{}
	if err := cursor.All(ctx, &leaders); err != nil {
		return nil, err
	}
	return leaders, nil
}

func (r *MongoLeaderRepository) FindByID(ctx context.Context, id string) (*models.Leader, error) {
	var l models.Leader
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *MongoLeaderRepository) Insert(ctx context.Context, l models.Leader) error {
	_, err := r.col.InsertOne(ctx, l)
	return err
}

func (r *MongoLeaderRepository) Replace(ctx context.Context, l models.Leader) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": l.ID}, l)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoLeaderRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
