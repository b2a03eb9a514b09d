package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/13132klain/ufa-backend/internal/models"
)

type MongoResourceRepository struct {
	col *mongo.Collection
}

func NewMongoResourceRepository(db *mongo.Database) *MongoResourceRepository {
	return &MongoResourceRepository{col: db.Collection("resources")}
}

func (r *MongoResourceRepository) List(ctx context.Context) ([]models.Resource, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "publish_date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	resources := []models.Resource{}
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *MongoResourceRepository) FindByID(ctx context.Context, id string) (*models.Resource, error) {
	var res models.Resource
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *MongoResourceRepository) Insert(ctx context.Context, res models.Resource) error {
	_, err := r.col.InsertOne(ctx, res)
	return err
}

func (r *MongoResourceRepository) Replace(ctx context.Context, res models.Resource) error {
	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": res.ID}, res)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoResourceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoResourceRepository) IncrementDownloads(ctx context.Context, id string) (int, error) {
	var updated models.Resource
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"download_count": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return updated.DownloadCount, nil
}
