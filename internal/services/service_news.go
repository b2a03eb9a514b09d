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

type NewsService struct {
	repo repository.NewsRepository
	feed *pubsub.Feed[models.NewsItem]
}

func NewNewsService(repo repository.NewsRepository) *NewsService {
	s := &NewsService{repo: repo, feed: pubsub.NewFeed[models.NewsItem]()}
	s.refresh(context.Background())
	return s
}

func (s *NewsService) List(ctx context.Context) ([]models.NewsItem, error) {
	return s.repo.List(ctx)
}

func (s *NewsService) Get(ctx context.Context, id string) (*models.NewsItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NewsService) Create(ctx context.Context, req dto.NewsRequest) (string, error) {
	publishDate := time.Now().UTC()
	if req.PublishDate != nil {
		publishDate = *req.PublishDate
	}
	item := models.NewsItem{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Author:      req.Author,
		PublishDate: publishDate,
		Image:       req.Image,
		Category:    req.Category,
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return "", err
	}
	s.refresh(ctx)
	return item.ID, nil
}

func (s *NewsService) Update(ctx context.Context, id string, upd dto.NewsUpdate) error {
	item, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if upd.Title != nil {
		item.Title = *upd.Title
	}
	if upd.Excerpt != nil {
		item.Excerpt = *upd.Excerpt
	}
	if upd.Content != nil {
		item.Content = *upd.Content
	}
	if upd.Author != nil {
		item.Author = *upd.Author
	}
	if upd.PublishDate != nil {
		item.PublishDate = *upd.PublishDate
	}
	if upd.Image != nil {
		item.Image = *upd.Image
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}

	if err := s.repo.Replace(ctx, *item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *NewsService) Subscribe(fn func([]models.NewsItem)) func() {
	return s.feed.Subscribe(fn)
}

func (s *NewsService) refresh(ctx context.Context) {
	items, err := s.repo.List(ctx)
	if err != nil {
		log.Println("news: snapshot refresh failed:", err)
		return
	}
	s.feed.Publish(items)
}
