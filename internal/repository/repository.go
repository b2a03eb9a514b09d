// Package repository defines one storage interface per entity plus the
// adapters behind them: MongoDB for a deployed site, SQLite for the durable
// local tier, and in-memory stores for tests and database-less startup.
// Services receive these interfaces at construction time and never reach a
// concrete store directly.
package repository

import (
	"context"
	"errors"

	"github.com/13132klain/ufa-backend/internal/models"
)

var ErrNotFound = errors.New("record not found")

type EventRepository interface {
	List(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Insert(ctx context.Context, ev models.Event) error
	Replace(ctx context.Context, ev models.Event) error
	Delete(ctx context.Context, id string) error
}

type NewsRepository interface {
	List(ctx context.Context) ([]models.NewsItem, error)
	FindByID(ctx context.Context, id string) (*models.NewsItem, error)
	Insert(ctx context.Context, item models.NewsItem) error
	Replace(ctx context.Context, item models.NewsItem) error
	Delete(ctx context.Context, id string) error
}

type LeaderRepository interface {
	List(ctx context.Context) ([]models.Leader, error)
	FindByID(ctx context.Context, id string) (*models.Leader, error)
	Insert(ctx context.Context, l models.Leader) error
	Replace(ctx context.Context, l models.Leader) error
	Delete(ctx context.Context, id string) error
}

type ResourceRepository interface {
	List(ctx context.Context) ([]models.Resource, error)
	FindByID(ctx context.Context, id string) (*models.Resource, error)
	Insert(ctx context.Context, r models.Resource) error
	Replace(ctx context.Context, r models.Resource) error
	Delete(ctx context.Context, id string) error
	// IncrementDownloads bumps the counter and returns the new value.
	IncrementDownloads(ctx context.Context, id string) (int, error)
}

type DonationRepository interface {
	List(ctx context.Context) ([]models.Donation, error)
	FindByID(ctx context.Context, id string) (*models.Donation, error)
	Insert(ctx context.Context, d models.Donation) error
	Replace(ctx context.Context, d models.Donation) error
	Delete(ctx context.Context, id string) error
}

type CampaignRepository interface {
	List(ctx context.Context) ([]models.DonationCampaign, error)
	FindByID(ctx context.Context, id string) (*models.DonationCampaign, error)
	// FindByTitle exists because donations reference campaigns by title.
	FindByTitle(ctx context.Context, title string) (*models.DonationCampaign, error)
	Insert(ctx context.Context, c models.DonationCampaign) error
	Replace(ctx context.Context, c models.DonationCampaign) error
	Delete(ctx context.Context, id string) error
	IncrementAmount(ctx context.Context, id string, delta float64) error
}

type RegistrationRepository interface {
	List(ctx context.Context) ([]models.EventRegistration, error)
	FindByID(ctx context.Context, id string) (*models.EventRegistration, error)
	FindByEvent(ctx context.Context, eventID string) ([]models.EventRegistration, error)
	FindByEventAndEmail(ctx context.Context, eventID, email string) (*models.EventRegistration, error)
	FindByCode(ctx context.Context, code string) (*models.EventRegistration, error)
	Insert(ctx context.Context, r models.EventRegistration) error
	Replace(ctx context.Context, r models.EventRegistration) error
	Delete(ctx context.Context, id string) error
}

type MembershipRepository interface {
	List(ctx context.Context) ([]models.Membership, error)
	FindByID(ctx context.Context, id string) (*models.Membership, error)
	Insert(ctx context.Context, m models.Membership) error
	Replace(ctx context.Context, m models.Membership) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
