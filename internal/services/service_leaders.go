package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/models"
	"github.com/13132klain/ufa-backend/internal/pubsub"
	"github.com/13132klain/ufa-backend/internal/repository"
)

// LeaderService manages the public leadership roster. No uniqueness is
// enforced on email or position; two leaders may legitimately share either.
type LeaderService struct {
	repo repository.LeaderRepository
	feed *pubsub.Feed[models.Leader]
}

func NewLeaderService(repo repository.LeaderRepository) *LeaderService {
	s := &LeaderService{repo: repo, feed: pubsub.NewFeed[models.Leader]()}
	s.refresh(context.Background())
	return s
}

func (s *LeaderService) List(ctx context.Context) ([]models.Leader, error) {
	return s.repo.List(ctx)
}

func (s *LeaderService) Get(ctx context.Context, id string) (*models.Leader, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *LeaderService) Create(ctx context.Context, req dto.LeaderRequest) (string, error) {
	l := models.Leader{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Position:    req.Position,
		Email:       req.Email,
		Phone:       req.Phone,
		SocialLinks: req.SocialLinks,
	}
	if err := s.repo.Insert(ctx, l); err != nil {
		return "", err
	}
	s.refresh(ctx)
	return l.ID, nil
}

func (s *LeaderService) Update(ctx context.Context, id string, upd dto.LeaderUpdate) error {
	l, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if upd.Name != nil {
		l.Name = *upd.Name
	}
	if upd.Position != nil {
		l.Position = *upd.Position
	}
	if upd.Email != nil {
		l.Email = *upd.Email
	}
	if upd.Phone != nil {
		l.Phone = *upd.Phone
	}
	if upd.SocialLinks != nil {
		l.SocialLinks = upd.SocialLinks
	}

	if err := s.repo.Replace(ctx, *l); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *LeaderService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *LeaderService) Subscribe(fn func([]models.Leader)) func() {
	return s.feed.Subscribe(fn)
}

func (s *LeaderService) refresh(ctx context.Context) {
	leaders, err := s.repo.List(ctx)
	if err != nil {
		log.Println("leaders: snapshot refresh failed:", err)
		return
	}
	s.feed.Publish(leaders)
}
