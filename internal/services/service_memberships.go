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

type MembershipService struct {
	repo repository.MembershipRepository
	feed *pubsub.Feed[models.Membership]
}

func NewMembershipService(repo repository.MembershipRepository) *MembershipService {
	s := &MembershipService{repo: repo, feed: pubsub.NewFeed[models.Membership]()}
	s.refresh(context.Background())
	return s
}

func (s *MembershipService) List(ctx context.Context) ([]models.Membership, error) {
	return s.repo.List(ctx)
}

func (s *MembershipService) Get(ctx context.Context, id string) (*models.Membership, error) {
	return s.repo.FindByID(ctx, id)
}

// Submit files a membership application; it waits in pending until reviewed.
func (s *MembershipService) Submit(ctx context.Context, req dto.MembershipRequest) (string, error) {
	m := models.Membership{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		County:       req.County,
		Constituency: req.Constituency,
		Occupation:   req.Occupation,
		Interests:    req.Interests,
		Motivation:   req.Motivation,
		Status:       models.MembershipPending,
		SubmittedAt:  time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, m); err != nil {
		return "", err
	}
	s.refresh(ctx)
	return m.ID, nil
}

// Review settles an application either way and stamps who decided.
func (s *MembershipService) Review(ctx context.Context, id string, approve bool, reviewer string) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if approve {
		m.Status = models.MembershipApproved
	} else {
		m.Status = models.MembershipRejected
	}
	now := time.Now().UTC()
	m.ReviewedAt = &now
	m.ReviewedBy = reviewer

	if err := s.repo.Replace(ctx, *m); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *MembershipService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *MembershipService) Subscribe(fn func([]models.Membership)) func() {
	return s.feed.Subscribe(fn)
}

func (s *MembershipService) refresh(ctx context.Context) {
	memberships, err := s.repo.List(ctx)
	if err != nil {
		log.Println("memberships: snapshot refresh failed:", err)
		return
	}
	s.feed.Publish(memberships)
}
