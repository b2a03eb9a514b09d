package repository

import (
	"context"
	"log"

	"github.com/13132klain/ufa-backend/internal/models"
)

// FallbackRegistrationStore layers a remote registration store over a durable
// local one. Writes land on the remote tier first and are mirrored locally so
// the local tier can always answer reads and drive the live feed; when the
// remote tier is absent or a call fails, the local tier alone serves the
// request and the operation still succeeds. One decorator covers the whole
// contract instead of a per-method try/fallback at every call site.
type FallbackRegistrationStore struct {
	remote RegistrationRepository // nil when no remote database is configured
	local  RegistrationRepository
}

func NewFallbackRegistrationStore(remote, local RegistrationRepository) *FallbackRegistrationStore {
	return &FallbackRegistrationStore{remote: remote, local: local}
}

func (s *FallbackRegistrationStore) List(ctx context.Context) ([]models.EventRegistration, error) {
	if s.remote != nil {
		regs, err := s.remote.List(ctx)
		if err == nil {
			return regs, nil
		}
		log.Println("registrations: remote list failed, serving local:", err)
	}
	return s.local.List(ctx)
}

func (s *FallbackRegistrationStore) FindByEvent(ctx context.Context, eventID string) ([]models.EventRegistration, error) {
	if s.remote != nil {
		regs, err := s.remote.FindByEvent(ctx, eventID)
		if err == nil {
			return regs, nil
		}
		log.Println("registrations: remote query failed, serving local:", err)
	}
	return s.local.FindByEvent(ctx, eventID)
}

func (s *FallbackRegistrationStore) FindByID(ctx context.Context, id string) (*models.EventRegistration, error) {
	if s.remote != nil {
		if reg, err := s.remote.FindByID(ctx, id); err == nil {
			return reg, nil
		}
	}
	return s.local.FindByID(ctx, id)
}

func (s *FallbackRegistrationStore) FindByEventAndEmail(ctx context.Context, eventID, email string) (*models.EventRegistration, error) {
	if s.remote != nil {
		if reg, err := s.remote.FindByEventAndEmail(ctx, eventID, email); err == nil {
			return reg, nil
		}
	}
	return s.local.FindByEventAndEmail(ctx, eventID, email)
}

func (s *FallbackRegistrationStore) FindByCode(ctx context.Context, code string) (*models.EventRegistration, error) {
	if s.remote != nil {
		if reg, err := s.remote.FindByCode(ctx, code); err == nil {
			return reg, nil
		}
	}
	return s.local.FindByCode(ctx, code)
}

func (s *FallbackRegistrationStore) Insert(ctx context.Context, reg models.EventRegistration) error {
	if s.remote != nil {
		if err := s.remote.Insert(ctx, reg); err != nil {
			log.Println("registrations: remote insert failed, keeping local copy only:", err)
		}
	}
	return s.local.Insert(ctx, reg)
}

func (s *FallbackRegistrationStore) Replace(ctx context.Context, reg models.EventRegistration) error {
	var remoteErr error
	if s.remote != nil {
		remoteErr = s.remote.Replace(ctx, reg)
		if remoteErr != nil {
			log.Println("registrations: remote update failed, updating local copy:", remoteErr)
		}
	}
	err := s.local.Replace(ctx, reg)
	if err != nil && s.remote != nil && remoteErr == nil {
		// Remote has the row but local never saw it; backfill instead of
		// failing the update.
		return s.local.Insert(ctx, reg)
	}
	return err
}

func (s *FallbackRegistrationStore) Delete(ctx context.Context, id string) error {
	if s.remote != nil {
		if err := s.remote.Delete(ctx, id); err != nil {
			log.Println("registrations: remote delete failed, deleting local copy:", err)
		}
	}
	return s.local.Delete(ctx, id)
}
