package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/13132klain/ufa-backend/internal/models"
)

// failingRegistrationStore simulates an unreachable remote database.
type failingRegistrationStore struct{}

var errRemoteDown = errors.New("remote unavailable")

func (failingRegistrationStore) List(context.Context) ([]models.EventRegistration, error) {
	return nil, errRemoteDown
}
func (failingRegistrationStore) FindByID(context.Context, string) (*models.EventRegistration, error) {
	return nil, errRemoteDown
}
func (failingRegistrationStore) FindByEvent(context.Context, string) ([]models.EventRegistration, error) {
	return nil, errRemoteDown
}
func (failingRegistrationStore) FindByEventAndEmail(context.Context, string, string) (*models.EventRegistration, error) {
	return nil, errRemoteDown
}
func (failingRegistrationStore) FindByCode(context.Context, string) (*models.EventRegistration, error) {
	return nil, errRemoteDown
}
func (failingRegistrationStore) Insert(context.Context, models.EventRegistration) error {
	return errRemoteDown
}
func (failingRegistrationStore) Replace(context.Context, models.EventRegistration) error {
	return errRemoteDown
}
func (failingRegistrationStore) Delete(context.Context, string) error {
	return errRemoteDown
}

func TestFallbackWritesSucceedWhenRemoteIsDown(t *testing.T) {
	ctx := context.Background()
	local := NewMemoryRegistrationRepository()
	store := NewFallbackRegistrationStore(failingRegistrationStore{}, local)

	reg := models.EventRegistration{ID: "reg-1", EventID: "ev-1", Email: "jane@example.com"}
	if err := store.Insert(ctx, reg); err != nil {
		t.Fatalf("insert must succeed via local tier, got %v", err)
	}

	got, err := store.FindByID(ctx, "reg-1")
	if err != nil {
		t.Fatalf("read must fall back to local tier, got %v", err)
	}
	if got.Email != "jane@example.com" {
		t.Fatalf("unexpected record: %+v", got)
	}

	got.Status = models.RegistrationConfirmed
	if err := store.Replace(ctx, *got); err != nil {
		t.Fatalf("update must succeed via local tier, got %v", err)
	}

	list, err := store.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list must serve local tier, got %v %v", list, err)
	}
	if list[0].Status != models.RegistrationConfirmed {
		t.Fatalf("local update lost: %+v", list[0])
	}
}

func TestFallbackMirrorsRemoteWritesLocally(t *testing.T) {
	ctx := context.Background()
	remote := NewMemoryRegistrationRepository()
	local := NewMemoryRegistrationRepository()
	store := NewFallbackRegistrationStore(remote, local)

	if err := store.Insert(ctx, models.EventRegistration{ID: "reg-1", EventID: "ev-1"}); err != nil {
		t.Fatal(err)
	}

	if _, err := remote.FindByID(ctx, "reg-1"); err != nil {
		t.Fatalf("remote tier missing write: %v", err)
	}
	if _, err := local.FindByID(ctx, "reg-1"); err != nil {
		t.Fatalf("local mirror missing write: %v", err)
	}
}

func TestFallbackWithoutRemoteUsesLocalOnly(t *testing.T) {
	ctx := context.Background()
	local := NewMemoryRegistrationRepository()
	store := NewFallbackRegistrationStore(nil, local)

	if err := store.Insert(ctx, models.EventRegistration{ID: "reg-9"}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.FindByID(ctx, "reg-9"); err != nil {
		t.Fatal(err)
	}
}
