package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/13132klain/ufa-backend/internal/models"
)

type MongoNewsRepository struct {
	col *mongo.Collection
}

func NewMongoNewsRepository(db *mongo.Database) *MongoNewsRepository {
	return &MongoNewsRepository{col: db.Collection("news")}
}

func (r *MongoNewsRepository) List(ctx context.Context) ([]models.NewsItem, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "publish_date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.NewsItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoNewsRepository) FindByID(ctx context.Context, id string) (*models.NewsItem, error) {
	var item models.NewsItem
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MongoNewsRepository) Insert(ctx context.Context, item models.NewsItem) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoNewsRepository) Replace(ctx context.Context, item models.NewsItem) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoNewsRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
