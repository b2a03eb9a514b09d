package services

import (
	"context"
	"testing"
	"time"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/models"
	"github.com/13132klain/ufa-backend/internal/repository"
)

func newEventService() *EventService {
	return NewEventService(repository.NewMemoryEventRepository())
}

func TestEventCreatePreservesFieldsAndAssignsID(t *testing.T) {
	ctx := context.Background()
	svc := newEventService()

	duration := 3.5
	id, err := svc.Create(ctx, dto.EventRequest{
		Title:                "Youth Town Hall",
		Description:          "Open forum",
		Date:                 time.Date(2026, 11, 20, 14, 0, 0, 0, time.UTC),
		Location:             "Kisumu",
		Type:                 models.EventMeeting,
		RegistrationRequired: true,
		DurationHours:        &duration,
	})
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("expected a generated id")
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one event, got %d", len(list))
	}
	ev := list[0]
	if ev.ID != id || ev.Title != "Youth Town Hall" || ev.Location != "Kisumu" ||
		ev.Type != models.EventMeeting || !ev.RegistrationRequired ||
		ev.DurationHours == nil || *ev.DurationHours != 3.5 {
		t.Fatalf("fields not preserved: %+v", ev)
	}
}

func TestEventSubscribeContract(t *testing.T) {
	ctx := context.Background()
	svc := newEventService()

	var snapshots [][]models.Event
	unsub := svc.Subscribe(func(snap []models.Event) {
		snapshots = append(snapshots, snap)
	})

	// Immediate synchronous replay of the empty collection.
	if len(snapshots) != 1 {
		t.Fatalf("expected one replay, got %d", len(snapshots))
	}
	if snapshots[0] == nil || len(snapshots[0]) != 0 {
		t.Fatalf("expected empty non-nil snapshot, got %v", snapshots[0])
	}

	id, err := svc.Create(ctx, dto.EventRequest{Title: "Rally", Type: models.EventRally})
	if err != nil {
		t.Fatal(err)
	}
	if len(snapshots) != 2 || len(snapshots[1]) != 1 {
		t.Fatalf("create must broadcast the full collection, got %v", snapshots)
	}

	newTitle := "Rescheduled Rally"
	if err := svc.Update(ctx, id, dto.EventUpdate{Title: &newTitle}); err != nil {
		t.Fatal(err)
	}
	if len(snapshots) != 3 || snapshots[2][0].Title != "Rescheduled Rally" {
		t.Fatalf("update must broadcast merged state, got %v", snapshots)
	}

	unsub()
	if err := svc.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}
	if len(snapshots) != 3 {
		t.Fatalf("unsubscribed callback still invoked, %d snapshots", len(snapshots))
	}
}

func TestEventUpdateMergesOnlySetFields(t *testing.T) {
	ctx := context.Background()
	svc := newEventService()

	id, _ := svc.Create(ctx, dto.EventRequest{
		Title:    "Fundraiser Gala",
		Location: "Nairobi",
		Type:     models.EventFundraiser,
	})

	loc := "Mombasa"
	if err := svc.Update(ctx, id, dto.EventUpdate{Location: &loc}); err != nil {
		t.Fatal(err)
	}

	ev, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Location != "Mombasa" {
		t.Fatalf("location not updated: %+v", ev)
	}
	if ev.Title != "Fundraiser Gala" || ev.Type != models.EventFundraiser {
		t.Fatalf("untouched fields must survive the merge: %+v", ev)
	}
	if ev.UpdatedAt == nil {
		t.Fatal("update must stamp updated_at")
	}
}

func TestEventUpdateAndDeleteUnknownIDAreSilentNoOps(t *testing.T) {
	ctx := context.Background()
	svc := newEventService()

	title := "ghost"
	if err := svc.Update(ctx, "missing", dto.EventUpdate{Title: &title}); err != nil {
		t.Fatalf("update of unknown id must not error, got %v", err)
	}
	if err := svc.Delete(ctx, "missing"); err != nil {
		t.Fatalf("delete of unknown id must not error, got %v", err)
	}
	if err := svc.Delete(ctx, "missing"); err != nil {
		t.Fatalf("repeated delete must not error, got %v", err)
	}
}
