package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/13132klain/ufa-backend/internal/models"
)

type MongoCampaignRepository struct {
	col *mongo.Collection
}

func NewMongoCampaignRepository(db *mongo.Database) *MongoCampaignRepository {
	return &MongoCampaignRepository{col: db.Collection("campaigns")}
}

func (r *MongoCampaignRepository) List(ctx context.Context) ([]models.DonationCampaign, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	campaigns := []models.DonationCampaign{}
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *MongoCampaignRepository) FindByID(ctx context.Context, id string) (*models.DonationCampaign, error) {
	var c models.DonationCampaign
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoCampaignRepository) FindByTitle(ctx context.Context, title string) (*models.DonationCampaign, error) {
	var c models.DonationCampaign
	err := r.col.FindOne(ctx, bson.M{"title": title}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoCampaignRepository) Insert(ctx context.Context, c models.DonationCampaign) error {
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *MongoCampaignRepository) Replace(ctx context.Context, c models.DonationCampaign) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCampaignRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCampaignRepository) IncrementAmount(ctx context.Context, id string, delta float64) error {
	res, err := r.col.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"current_amount": delta}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
