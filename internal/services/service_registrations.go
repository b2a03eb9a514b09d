package services

import (
	"context"
	"crypto/rand"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/models"
	"github.com/13132klain/ufa-backend/internal/pubsub"
	"github.com/13132klain/ufa-backend/internal/repository"
)

var (
	ErrNotConfirmed  = errors.New("registration is not confirmed")
	ErrCancelled     = errors.New("registration is cancelled")
	ErrAlreadyInside = errors.New("participant already checked in")
)

// RegistrationService runs event sign-ups against the dual-backend store.
// Persistence is best-effort by design: as long as one tier accepts the
// record the participant gets a confirmation code.
type RegistrationService struct {
	store  repository.RegistrationRepository
	events repository.EventRepository
	feed   *pubsub.Feed[models.EventRegistration]
}

func NewRegistrationService(store repository.RegistrationRepository, events repository.EventRepository) *RegistrationService {
	s := &RegistrationService{
		store:  store,
		events: events,
		feed:   pubsub.NewFeed[models.EventRegistration](),
	}
	s.refresh(context.Background())
	return s
}

func (s *RegistrationService) List(ctx context.Context) ([]models.EventRegistration, error) {
	return s.store.List(ctx)
}

func (s *RegistrationService) ListByEvent(ctx context.Context, eventID string) ([]models.EventRegistration, error) {
	return s.store.FindByEvent(ctx, eventID)
}

// Register signs a participant up for an event. The returned result is what
// the public form shows; a storage failure on the remote tier alone is not a
// failure here.
func (s *RegistrationService) Register(ctx context.Context, eventID string, details dto.RegistrationRequest) (dto.RegistrationResult, error) {
	eventTitle := eventID
	if ev, err := s.events.FindByID(ctx, eventID); err == nil {
		eventTitle = ev.Title
	}

	if existing, err := s.store.FindByEventAndEmail(ctx, eventID, details.Email); err == nil {
		return dto.RegistrationResult{
			Success:          false,
			Message:          "You have already registered for this event.",
			ConfirmationCode: existing.ConfirmationCode,
		}, nil
	}

	code, err := s.newConfirmationCode(ctx)
	if err != nil {
		return dto.RegistrationResult{}, err
	}

	reg := models.EventRegistration{
		ID:               uuid.NewString(),
		EventID:          eventID,
		EventTitle:       eventTitle,
		Name:             details.Name,
		Email:            details.Email,
		Phone:            details.Phone,
		RegistrationDate: time.Now().UTC(),
		Status:           models.RegistrationPending,
		ConfirmationCode: code,
	}
	if err := s.store.Insert(ctx, reg); err != nil {
		return dto.RegistrationResult{}, err
	}
	s.refresh(ctx)

	return dto.RegistrationResult{
		Success:          true,
		Message:          fmt.Sprintf("Registration received! Your confirmation code is %s.", code),
		ConfirmationCode: code,
		RegistrationID:   reg.ID,
	}, nil
}

// UpdateStatus moves a registration along pending → confirmed → cancelled.
// Cancellation is reachable from any live state; a cancelled registration
// stays cancelled.
func (s *RegistrationService) UpdateStatus(ctx context.Context, id string, status models.RegistrationStatus) error {
	reg, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if reg.Status == models.RegistrationCancelled && status != models.RegistrationCancelled {
		return ErrCancelled
	}

	reg.Status = status
	if err := s.store.Replace(ctx, *reg); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

// CheckIn marks a confirmed participant as present at the venue.
func (s *RegistrationService) CheckIn(ctx context.Context, id string) error {
	reg, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if reg.Status != models.RegistrationConfirmed {
		return ErrNotConfirmed
	}
	if reg.CheckedIn {
		return ErrAlreadyInside
	}

	now := time.Now().UTC()
	reg.CheckedIn = true
	reg.CheckedInAt = &now
	if err := s.store.Replace(ctx, *reg); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *RegistrationService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.refresh(ctx)
	return nil
}

// ExportCSV writes the participant list for an event (or everything when
// eventID is empty) in the format the dashboard download expects.
func (s *RegistrationService) ExportCSV(ctx context.Context, w io.Writer, eventID string) error {
	var (
		regs []models.EventRegistration
		err  error
	)
	if eventID == "" {
		regs, err = s.store.List(ctx)
	} else {
		regs, err = s.store.FindByEvent(ctx, eventID)
	}
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Participant Name", "Event", "Email", "Phone", "Status",
		"Registration Date", "Confirmation Code", "Checked In",
	}); err != nil {
		return err
	}
	for _, reg := range regs {
		checkedIn := "No"
		if reg.CheckedIn {
			checkedIn = "Yes"
		}
		if err := cw.Write([]string{
			reg.Name, reg.EventTitle, reg.Email, reg.Phone, string(reg.Status),
			reg.RegistrationDate.UTC().Format(time.RFC3339), reg.ConfirmationCode, checkedIn,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *RegistrationService) Subscribe(fn func([]models.EventRegistration)) func() {
	return s.feed.Subscribe(fn)
}

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newConfirmationCode draws a 6-character base-36 code and re-rolls on the
// rare collision with an existing registration.
func (s *RegistrationService) newConfirmationCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		buf := make([]byte, 6)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		var b strings.Builder
		for _, c := range buf {
			b.WriteByte(codeAlphabet[int(c)%len(codeAlphabet)])
		}
		code := b.String()

		if _, err := s.store.FindByCode(ctx, code); errors.Is(err, repository.ErrNotFound) {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique confirmation code")
}

func (s *RegistrationService) refresh(ctx context.Context) {
	regs, err := s.store.List(ctx)
	if err != nil {
		log.Println("registrations: snapshot refresh failed:", err)
		return
	}
	s.feed.Publish(regs)
}
