package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/13132klain/ufa-backend/internal/models"
)

type MongoMembershipRepository struct {
	col *mongo.Collection
}

func NewMongoMembershipRepository(db *mongo.Database) *MongoMembershipRepository {
	return &MongoMembershipRepository{col: db.Collection("memberships")}
}

func (r *MongoMembershipRepository) List(ctx context.Context) ([]models.Membership, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	memberships := []models.Membership{}
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *MongoMembershipRepository) FindByID(ctx context.Context, id string) (*models.Membership, error) {
	var m models.Membership
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MongoMembershipRepository) Insert(ctx context.Context, m models.Membership) error {
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *MongoMembershipRepository) Replace(ctx context.Context, m models.Membership) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoMembershipRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
