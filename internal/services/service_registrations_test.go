package services

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/models"
	"github.com/13132klain/ufa-backend/internal/repository"
)

func newRegistrationFixture(t *testing.T) (*RegistrationService, string) {
	t.Helper()
	events := repository.NewMemoryEventRepository()
	ev := models.Event{ID: "ev-1", Title: "Annual Convention", Type: models.EventMeeting}
	if err := events.Insert(context.Background(), ev); err != nil {
		t.Fatal(err)
	}
	store := repository.NewFallbackRegistrationStore(nil, repository.NewMemoryRegistrationRepository())
	return NewRegistrationService(store, events), ev.ID
}

var codePattern = regexp.MustCompile(`^[0-9A-Z]{6}$`)

func TestRegisterIssuesConfirmationCode(t *testing.T) {
	ctx := context.Background()
	svc, eventID := newRegistrationFixture(t)

	res, err := svc.Register(ctx, eventID, dto.RegistrationRequest{
		Name: "Jane Wanjiru", Email: "jane@example.com", Phone: "0712345678",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if !codePattern.MatchString(res.ConfirmationCode) {
		t.Fatalf("confirmation code %q must be 6 uppercase base-36 chars", res.ConfirmationCode)
	}
	if res.RegistrationID == "" {
		t.Fatal("expected a registration id")
	}

	regs, _ := svc.ListByEvent(ctx, eventID)
	if len(regs) != 1 {
		t.Fatalf("expected one registration, got %d", len(regs))
	}
	reg := regs[0]
	if reg.Status != models.RegistrationPending {
		t.Fatalf("new registrations start pending, got %s", reg.Status)
	}
	if reg.EventTitle != "Annual Convention" {
		t.Fatalf("event title must be denormalized onto the record, got %q", reg.EventTitle)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, eventID := newRegistrationFixture(t)

	first, _ := svc.Register(ctx, eventID, dto.RegistrationRequest{Name: "Jane", Email: "jane@example.com"})
	dup, err := svc.Register(ctx, eventID, dto.RegistrationRequest{Name: "Jane", Email: "JANE@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if dup.Success {
		t.Fatal("duplicate email for the same event must be rejected")
	}
	if dup.ConfirmationCode != first.ConfirmationCode {
		t.Fatal("duplicate response should echo the existing confirmation code")
	}
}

func TestCheckInRequiresConfirmedStatus(t *testing.T) {
	ctx := context.Background()
	svc, eventID := newRegistrationFixture(t)

	res, _ := svc.Register(ctx, eventID, dto.RegistrationRequest{Name: "Omar", Email: "omar@example.com"})

	if err := svc.CheckIn(ctx, res.RegistrationID); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("check-in of a pending registration: expected ErrNotConfirmed, got %v", err)
	}

	if err := svc.UpdateStatus(ctx, res.RegistrationID, models.RegistrationConfirmed); err != nil {
		t.Fatal(err)
	}
	if err := svc.CheckIn(ctx, res.RegistrationID); err != nil {
		t.Fatal(err)
	}
	if err := svc.CheckIn(ctx, res.RegistrationID); !errors.Is(err, ErrAlreadyInside) {
		t.Fatalf("second check-in: expected ErrAlreadyInside, got %v", err)
	}

	regs, _ := svc.ListByEvent(ctx, eventID)
	if !regs[0].CheckedIn || regs[0].CheckedInAt == nil {
		t.Fatalf("check-in must stamp the record: %+v", regs[0])
	}
}

func TestCancelledRegistrationStaysCancelled(t *testing.T) {
	ctx := context.Background()
	svc, eventID := newRegistrationFixture(t)

	res, _ := svc.Register(ctx, eventID, dto.RegistrationRequest{Name: "Ada", Email: "ada@example.com"})
	if err := svc.UpdateStatus(ctx, res.RegistrationID, models.RegistrationCancelled); err != nil {
		t.Fatal(err)
	}
	if err := svc.UpdateStatus(ctx, res.RegistrationID, models.RegistrationConfirmed); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestExportCSVHeaderAndRows(t *testing.T) {
	ctx := context.Background()
	svc, eventID := newRegistrationFixture(t)
	svc.Register(ctx, eventID, dto.RegistrationRequest{Name: "Jane Wanjiru", Email: "jane@example.com", Phone: "0712345678"})

	var buf bytes.Buffer
	if err := svc.ExportCSV(ctx, &buf, eventID); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	wantHeader := "Participant Name,Event,Email,Phone,Status,Registration Date,Confirmation Code,Checked In"
	if lines[0] != wantHeader {
		t.Fatalf("header mismatch:\n got %q\nwant %q", lines[0], wantHeader)
	}
	if !strings.Contains(lines[1], "Jane Wanjiru") || !strings.Contains(lines[1], "Annual Convention") {
		t.Fatalf("row missing participant data: %q", lines[1])
	}
}

func TestRegistrationSubscribeReplaysAndBroadcasts(t *testing.T) {
	ctx := context.Background()
	svc, eventID := newRegistrationFixture(t)

	count := 0
	unsub := svc.Subscribe(func([]models.EventRegistration) { count++ })
	if count != 1 {
		t.Fatalf("expected immediate replay, got %d calls", count)
	}

	svc.Register(ctx, eventID, dto.RegistrationRequest{Name: "Jane", Email: "jane@example.com"})
	if count != 2 {
		t.Fatalf("expected broadcast after register, got %d calls", count)
	}

	unsub()
	svc.Register(ctx, eventID, dto.RegistrationRequest{Name: "Omar", Email: "omar@example.com"})
	if count != 2 {
		t.Fatalf("unsubscribed callback invoked, got %d calls", count)
	}
}
