package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/13132klain/ufa-backend/internal/models"
)

type MongoRegistrationRepository struct {
	col *mongo.Collection
}

func NewMongoRegistrationRepository(db *mongo.Database) *MongoRegistrationRepository {
	return &MongoRegistrationRepository{col: db.Collection("event_registrations")}
}

func (r *MongoRegistrationRepository) List(ctx context.Context) ([]models.EventRegistration, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoRegistrationRepository) FindByEvent(ctx context.Context, eventID string) ([]models.EventRegistration, error) {
	return r.find(ctx, bson.M{"event_id": eventID})
}

func (r *MongoRegistrationRepository) find(ctx context.Context, filter bson.M) ([]models.EventRegistration, error) {
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "registration_date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	regs := []models.EventRegistration{}
	if err := cursor.All(ctx, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *MongoRegistrationRepository) FindByID(ctx context.Context, id string) (*models.EventRegistration, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRegistrationRepository) FindByEventAndEmail(ctx context.Context, eventID, email string) (*models.EventRegistration, error) {
	return r.findOne(ctx, bson.M{"event_id": eventID, "email": email})
}

func (r *MongoRegistrationRepository) FindByCode(ctx context.Context, code string) (*models.EventRegistration, error) {
	return r.findOne(ctx, bson.M{"confirmation_code": code})
}

func (r *MongoRegistrationRepository) findOne(ctx context.Context, filter bson.M) (*models.EventRegistration, error) {
	var reg models.EventRegistration
	err := r.col.FindOne(ctx, filter).Decode(&reg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *MongoRegistrationRepository) Insert(ctx context.Context, reg models.EventRegistration) error {
	_, err := r.col.InsertOne(ctx, reg)
	return err
}

func (r *MongoRegistrationRepository) Replace(ctx context.Context, reg models.EventRegistration) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": reg.ID}, reg)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRegistrationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
