package calendar

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/13132klain/ufa-backend/internal/models"
)

func sampleEvent() models.Event {
	return models.Event{
		ID:          "ev-42",
		Title:       "Unity Rally",
		Description: "March and speeches",
		Date:        time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
		Location:    "Uhuru Park, Nairobi",
		Type:        models.EventRally,
	}
}

func TestGoogleURL(t *testing.T) {
	u, err := url.Parse(GoogleURL(sampleEvent()))
	if err != nil {
		t.Fatal(err)
	}
	if u.Host != "calendar.google.com" || u.Path != "/calendar/render" {
		t.Fatalf("unexpected endpoint %s", u.String())
	}
	q := u.Query()
	if q.Get("action") != "TEMPLATE" || q.Get("text") != "Unity Rally" {
		t.Fatalf("bad query %v", q)
	}
	// Two hour default duration.
	if q.Get("dates") != "20261015T090000Z/20261015T110000Z" {
		t.Fatalf("bad dates %q", q.Get("dates"))
	}
}

func TestExplicitDurationRespected(t *testing.T) {
	ev := sampleEvent()
	half := 0.5
	ev.DurationHours = &half

	q, _ := url.Parse(YahooURL(ev))
	if got := q.Query().Get("et"); got != "20261015T093000Z" {
		t.Fatalf("expected 30 minute window, got end %q", got)
	}
}

func TestOutlookURL(t *testing.T) {
	u, err := url.Parse(OutlookURL(sampleEvent()))
	if err != nil {
		t.Fatal(err)
	}
	if u.Host != "outlook.live.com" {
		t.Fatalf("unexpected host %s", u.Host)
	}
	q := u.Query()
	if q.Get("subject") != "Unity Rally" || q.Get("startdt") != "2026-10-15T09:00:00Z" {
		t.Fatalf("bad query %v", q)
	}
}

func TestICSDocument(t *testing.T) {
	ev := sampleEvent()
	ev.Title = `Town Hall, Part 1; "Q&A"`
	ev.Description = "Line one\nLine two"

	doc := ICS(ev)

	if !strings.HasPrefix(doc, "BEGIN:VCALENDAR\r\n") || !strings.HasSuffix(doc, "END:VCALENDAR\r\n") {
		t.Fatalf("document must be CRLF delimited: %q", doc)
	}
	for _, want := range []string{
		"UID:ev-42@ufa.org",
		`SUMMARY:Town Hall\, Part 1\; "Q&A"`,
		`DESCRIPTION:Line one\nLine two`,
		"DTSTART:20261015T090000Z",
		"DTEND:20261015T110000Z",
		"LOCATION:Uhuru Park\\, Nairobi",
	} {
		if !strings.Contains(doc, want+"\r\n") {
			t.Fatalf("missing line %q in:\n%s", want, doc)
		}
	}
}
