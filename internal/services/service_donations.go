package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/models"
	"github.com/13132klain/ufa-backend/internal/pubsub"
	"github.com/13132klain/ufa-backend/internal/repository"
)

type DonationService struct {
	repo      repository.DonationRepository
	campaigns *CampaignService
	feed      *pubsub.Feed[models.Donation]
}

func NewDonationService(repo repository.DonationRepository, campaigns *CampaignService) *DonationService {
	s := &DonationService{repo: repo, campaigns: campaigns, feed: pubsub.NewFeed[models.Donation]()}
	s.refresh(context.Background())
	return s
}

func (s *DonationService) List(ctx context.Context) ([]models.Donation, error) {
	return s.repo.List(ctx)
}

func (s *DonationService) Get(ctx context.Context, id string) (*models.Donation, error) {
	return s.repo.FindByID(ctx, id)
}

// Create records a donation in pending state; settlement moves it along.
func (s *DonationService) Create(ctx context.Context, req dto.DonationRequest) (string, error) {
	currency := req.Currency
	if currency == "" {
		currency = "KES"
	}
	d := models.Donation{
		ID:            uuid.NewString(),
		Amount:        req.Amount,
		Currency:      currency,
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		DonorPhone:    req.DonorPhone,
		IsAnonymous:   req.IsAnonymous,
		Campaign:      req.Campaign,
		PaymentMethod: req.PaymentMethod,
		Status:        models.DonationPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, d); err != nil {
		return "", err
	}
	s.refresh(ctx)
	return d.ID, nil
}

func (s *DonationService) Update(ctx context.Context, id string, upd dto.DonationUpdate) error {
	d, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if upd.Status != nil {
		d.Status = *upd.Status
	}
	if upd.Receipt != nil {
		d.Receipt = *upd.Receipt
	}
	now := time.Now().UTC()
	d.UpdatedAt = &now

	if err := s.repo.Replace(ctx, *d); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *DonationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

// Complete settles a donation after a successful payment: marks it completed,
// stores the receipt and credits its campaign. Already-completed donations
// are left alone so a duplicate gateway callback cannot double-credit.
func (s *DonationService) Complete(ctx context.Context, id, receipt string) error {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if d.Status == models.DonationCompleted {
		return nil
	}

	d.Status = models.DonationCompleted
	d.Receipt = receipt
	now := time.Now().UTC()
	d.UpdatedAt = &now
	if err := s.repo.Replace(ctx, *d); err != nil {
		return err
	}

	if s.campaigns != nil && d.Campaign != "" {
		if err := s.campaigns.RecordDonation(ctx, d.Campaign, d.Amount); err != nil {
			log.Println("donations: campaign attribution failed:", err)
		}
	}
	s.refresh(ctx)
	return nil
}

// Fail marks a donation failed after a declined or expired payment.
func (s *DonationService) Fail(ctx context.Context, id string) error {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if d.Status != models.DonationPending {
		return nil
	}
	d.Status = models.DonationFailed
	now := time.Now().UTC()
	d.UpdatedAt = &now
	if err := s.repo.Replace(ctx, *d); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *DonationService) Subscribe(fn func([]models.Donation)) func() {
	return s.feed.Subscribe(fn)
}

func (s *DonationService) refresh(ctx context.Context) {
	donations, err := s.repo.List(ctx)
	if err != nil {
		log.Println("donations: snapshot refresh failed:", err)
		return
	}
	s.feed.Publish(donations)
}
