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

// CampaignProgress reports how far a campaign has come as a whole percentage,
// clamped to [0, 100].
func CampaignProgress(currentAmount, targetAmount float64) int {
	if targetAmount <= 0 {
		return 0
	}
	pct := currentAmount / targetAmount * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}

type CampaignService struct {
	repo repository.CampaignRepository
	feed *pubsub.Feed[models.DonationCampaign]
}

func NewCampaignService(repo repository.CampaignRepository) *CampaignService {
	s := &CampaignService{repo: repo, feed: pubsub.NewFeed[models.DonationCampaign]()}
	s.refresh(context.Background())
	return s
}

func (s *CampaignService) List(ctx context.Context) ([]models.DonationCampaign, error) {
	return s.repo.List(ctx)
}

func (s *CampaignService) Get(ctx context.Context, id string) (*models.DonationCampaign, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CampaignService) Create(ctx context.Context, req dto.CampaignRequest) (string, error) {
	startDate := time.Now().UTC()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	c := models.DonationCampaign{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		StartDate:    startDate,
		EndDate:      req.EndDate,
		IsActive:     req.IsActive,
		Featured:     req.Featured,
		Category:     req.Category,
		Image:        req.Image,
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return "", err
	}
	s.refresh(ctx)
	return c.ID, nil
}

func (s *CampaignService) Update(ctx context.Context, id string, upd dto.CampaignUpdate) error {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.TargetAmount != nil {
		c.TargetAmount = *upd.TargetAmount
	}
	if upd.StartDate != nil {
		c.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		c.EndDate = upd.EndDate
	}
	if upd.IsActive != nil {
		c.IsActive = *upd.IsActive
	}
	if upd.Featured != nil {
		c.Featured = *upd.Featured
	}
	if upd.Category != nil {
		c.Category = *upd.Category
	}
	if upd.Image != nil {
		c.Image = *upd.Image
	}

	if err := s.repo.Replace(ctx, *c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *CampaignService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

// RecordDonation credits a completed donation against the campaign carrying
// the given title. Donations reference campaigns by title, so a donation
// whose campaign has since been renamed finds no match; attribution is
// skipped silently in that case.
func (s *CampaignService) RecordDonation(ctx context.Context, campaignTitle string, amount float64) error {
	if campaignTitle == "" {
		return nil
	}
	c, err := s.repo.FindByTitle(ctx, campaignTitle)
	if errors.Is(err, repository.ErrNotFound) {
		log.Printf("campaigns: no campaign titled %q, skipping attribution", campaignTitle)
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.repo.IncrementAmount(ctx, c.ID, amount); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *CampaignService) Subscribe(fn func([]models.DonationCampaign)) func() {
	return s.feed.Subscribe(fn)
}

func (s *CampaignService) refresh(ctx context.Context) {
	campaigns, err := s.repo.List(ctx)
	if err != nil {
		log.Println("campaigns: snapshot refresh failed:", err)
		return
	}
	s.feed.Publish(campaigns)
}
