// Package services holds the behavior behind each entity: CRUD with live
// snapshot broadcast, event registration with the dual-backend store,
// campaign accounting and donation settlement. Services receive repositories
// at construction time; nothing here touches a concrete database.
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

type EventService struct {
	repo repository.EventRepository
	feed *pubsub.Feed[models.Event]
}

func NewEventService(repo repository.EventRepository) *EventService {
	s := &EventService{repo: repo, feed: pubsub.NewFeed[models.Event]()}
	s.refresh(context.Background())
	return s
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, req dto.EventRequest) (string, error) {
	now := time.Now().UTC()
	ev := models.Event{
		ID:                   uuid.NewString(),
		Title:                req.Title,
		Description:          req.Description,
		Date:                 req.Date,
		Location:             req.Location,
		Type:                 req.Type,
		Image:                req.Image,
		RegistrationRequired: req.RegistrationRequired,
		DurationHours:        req.DurationHours,
		CreatedAt:            &now,
	}
	if err := s.repo.Insert(ctx, ev); err != nil {
		return "", err
	}
	s.refresh(ctx)
	return ev.ID, nil
}

// Update applies a partial edit. An unknown id is a silent no-op: admin
// managers fire updates optimistically and nothing useful can be done with
// the failure.
func (s *EventService) Update(ctx context.Context, id string, upd dto.EventUpdate) error {
	ev, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if upd.Title != nil {
		ev.Title = *upd.Title
	}
	if upd.Description != nil {
		ev.Description = *upd.Description
	}
	if upd.Date != nil {
		ev.Date = *upd.Date
	}
	if upd.Location != nil {
		ev.Location = *upd.Location
	}
	if upd.Type != nil {
		ev.Type = *upd.Type
	}
	if upd.Image != nil {
		ev.Image = *upd.Image
	}
	if upd.RegistrationRequired != nil {
		ev.RegistrationRequired = *upd.RegistrationRequired
	}
	if upd.DurationHours != nil {
		ev.DurationHours = upd.DurationHours
	}
	now := time.Now().UTC()
	ev.UpdatedAt = &now

	if err := s.repo.Replace(ctx, *ev); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

// Subscribe attaches fn to the live feed; it sees the current collection
// immediately and the full collection again after every mutation.
func (s *EventService) Subscribe(fn func([]models.Event)) func() {
	return s.feed.Subscribe(fn)
}

func (s *EventService) refresh(ctx context.Context) {
	events, err := s.repo.List(ctx)
	if err != nil {
		log.Println("events: snapshot refresh failed:", err)
		return
	}
	s.feed.Publish(events)
}
