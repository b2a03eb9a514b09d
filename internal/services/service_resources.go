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

type ResourceService struct {
	repo repository.ResourceRepository
	feed *pubsub.Feed[models.Resource]
}

func NewResourceService(repo repository.ResourceRepository) *ResourceService {
	s := &ResourceService{repo: repo, feed: pubsub.NewFeed[models.Resource]()}
	s.refresh(context.Background())
	return s
}

func (s *ResourceService) List(ctx context.Context) ([]models.Resource, error) {
	return s.repo.List(ctx)
}

func (s *ResourceService) Get(ctx context.Context, id string) (*models.Resource, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ResourceService) Create(ctx context.Context, req dto.ResourceRequest) (string, error) {
	r := models.Resource{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
		URL:         req.URL,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		MimeType:    req.MimeType,
		PublishDate: time.Now().UTC(),
		UploadedBy:  req.UploadedBy,
	}
	if err := s.repo.Insert(ctx, r); err != nil {
		return "", err
	}
	s.refresh(ctx)
	return r.ID, nil
}

func (s *ResourceService) Update(ctx context.Context, id string, upd dto.ResourceUpdate) error {
	r, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if upd.Title != nil {
		r.Title = *upd.Title
	}
	if upd.Description != nil {
		r.Description = *upd.Description
	}
	if upd.Type != nil {
		r.Type = *upd.Type
	}
	if upd.Category != nil {
		r.Category = *upd.Category
	}
	if upd.URL != nil {
		r.URL = *upd.URL
	}
	if upd.FileName != nil {
		r.FileName = *upd.FileName
	}
	if upd.FileSize != nil {
		r.FileSize = *upd.FileSize
	}
	if upd.MimeType != nil {
		r.MimeType = *upd.MimeType
	}

	if err := s.repo.Replace(ctx, *r); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *ResourceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

// RecordDownload bumps the download counter and returns the resource so the
// handler can redirect to its URL.
func (s *ResourceService) RecordDownload(ctx context.Context, id string) (*models.Resource, error) {
	if _, err := s.repo.IncrementDownloads(ctx, id); err != nil {
		return nil, err
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx)
	return r, nil
}

func (s *ResourceService) Subscribe(fn func([]models.Resource)) func() {
	return s.feed.Subscribe(fn)
}

func (s *ResourceService) refresh(ctx context.Context) {
	resources, err := s.repo.List(ctx)
	if err != nil {
		log.Println("resources: snapshot refresh failed:", err)
		return
	}
	s.feed.Publish(resources)
}
