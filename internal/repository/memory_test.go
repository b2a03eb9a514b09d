package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/13132klain/ufa-backend/internal/models"
)

func TestMemoryEventCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEventRepository()

	ev := models.Event{
		ID:       "ev-1",
		Title:    "County Rally",
		Date:     time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
		Location: "Uhuru Park",
		Type:     models.EventRally,
	}
	if err := repo.Insert(ctx, ev); err != nil {
		t.Fatal(err)
	}

	got, err := repo.FindByID(ctx, "ev-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "County Rally" || got.Location != "Uhuru Park" {
		t.Fatalf("fields not preserved: %+v", got)
	}

	got.Title = "Rescheduled Rally"
	if err := repo.Replace(ctx, *got); err != nil {
		t.Fatal(err)
	}
	again, _ := repo.FindByID(ctx, "ev-1")
	if again.Title != "Rescheduled Rally" {
		t.Fatalf("replace did not stick: %+v", again)
	}

	if err := repo.Delete(ctx, "ev-1"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, "ev-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
	list, _ := repo.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty list after delete, got %v", list)
	}
}

func TestMemoryEventsAppendNewsPrepends(t *testing.T) {
	ctx := context.Background()

	events := NewMemoryEventRepository()
	events.Insert(ctx, models.Event{ID: "a"})
	events.Insert(ctx, models.Event{ID: "b"})
	evList, _ := events.List(ctx)
	if evList[0].ID != "a" || evList[1].ID != "b" {
		t.Fatalf("events must append in creation order, got %v", evList)
	}

	news := NewMemoryNewsRepository()
	news.Insert(ctx, models.NewsItem{ID: "a"})
	news.Insert(ctx, models.NewsItem{ID: "b"})
	newsList, _ := news.List(ctx)
	if newsList[0].ID != "b" || newsList[1].ID != "a" {
		t.Fatalf("news must insert newest-first, got %v", newsList)
	}
}

func TestMemoryListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLeaderRepository()
	repo.Insert(ctx, models.Leader{ID: "l1", Name: "Amina"})

	list, _ := repo.List(ctx)
	list[0].Name = "changed"

	again, _ := repo.List(ctx)
	if again[0].Name != "Amina" {
		t.Fatalf("List must hand out copies, got %v", again)
	}
}

func TestMemoryResourceIncrementDownloads(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryResourceRepository()
	repo.Insert(ctx, models.Resource{ID: "r1", Title: "Manifesto", Type: models.ResourceDocument})

	for want := 1; want <= 3; want++ {
		n, err := repo.IncrementDownloads(ctx, "r1")
		if err != nil {
			t.Fatal(err)
		}
		if n != want {
			t.Fatalf("expected count %d, got %d", want, n)
		}
	}

	if _, err := repo.IncrementDownloads(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryCampaignTitleLookupAndIncrement(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCampaignRepository()
	repo.Insert(ctx, models.DonationCampaign{ID: "c1", Title: "Clean Water", TargetAmount: 1000})

	c, err := repo.FindByTitle(ctx, "Clean Water")
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.IncrementAmount(ctx, c.ID, 250); err != nil {
		t.Fatal(err)
	}
	c, _ = repo.FindByID(ctx, "c1")
	if c.CurrentAmount != 250 {
		t.Fatalf("expected 250, got %v", c.CurrentAmount)
	}

	if _, err := repo.FindByTitle(ctx, "Renamed"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown title, got %v", err)
	}
}

func TestMemoryRegistrationLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRegistrationRepository()
	repo.Insert(ctx, models.EventRegistration{
		ID: "reg-1", EventID: "ev-1", Email: "Jane@Example.com",
		ConfirmationCode: "A1B2C3", Status: models.RegistrationPending,
	})
	repo.Insert(ctx, models.EventRegistration{
		ID: "reg-2", EventID: "ev-2", Email: "omar@example.com",
		ConfirmationCode: "ZZTOP1", Status: models.RegistrationPending,
	})

	byEvent, _ := repo.FindByEvent(ctx, "ev-1")
	if len(byEvent) != 1 || byEvent[0].ID != "reg-1" {
		t.Fatalf("FindByEvent: %v", byEvent)
	}

	// Email lookup is case-insensitive, matching the durable stores.
	if _, err := repo.FindByEventAndEmail(ctx, "ev-1", "jane@example.com"); err != nil {
		t.Fatalf("case-insensitive email lookup failed: %v", err)
	}

	byCode, err := repo.FindByCode(ctx, "ZZTOP1")
	if err != nil || byCode.ID != "reg-2" {
		t.Fatalf("FindByCode: %v %v", byCode, err)
	}
}
