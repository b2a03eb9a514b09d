package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/13132klain/ufa-backend/internal/models"
)

type MongoDonationRepository struct {
	col *mongo.Collection
}

func NewMongoDonationRepository(db *mongo.Database) *MongoDonationRepository {
	return &MongoDonationRepository{col: db.Collection("donations")}
}

func (r *MongoDonationRepository) List(ctx context.Context) ([]models.Donation, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	donations := []models.Donation{}
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *MongoDonationRepository) FindByID(ctx context.Context, id string) (*models.Donation, error) {
	var d models.Donation
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *MongoDonationRepository) Insert(ctx context.Context, d models.Donation) error {
	_, err := r.col.InsertOne(ctx, d)
	return err
}

func (r *MongoDonationRepository) Replace(ctx context.Context, d models.Donation) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": d.ID}, d)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoDonationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
