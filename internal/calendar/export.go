// Package calendar renders events as add-to-calendar links and ICS
// downloads for the public site.
package calendar

import (
	"net/url"
	"time"

	"github.com/13132klain/ufa-backend/internal/models"
)

// defaultDuration applies when an event has no explicit duration.
const defaultDuration = 2 * time.Hour

func eventWindow(ev models.Event) (time.Time, time.Time) {
	start := ev.Date.UTC()
	dur := defaultDuration
	if ev.DurationHours != nil && *ev.DurationHours > 0 {
		dur = time.Duration(*ev.DurationHours * float64(time.Hour))
	}
	return start, start.Add(dur)
}

// compactStamp is the basic ISO 8601 format Google and Yahoo expect.
const compactStamp = "20060102T150405Z"

// GoogleURL builds a prefilled Google Calendar event link.
func GoogleURL(ev models.Event) string {
	start, end := eventWindow(ev)
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", ev.Title)
	q.Set("dates", start.Format(compactStamp)+"/"+end.Format(compactStamp))
	q.Set("details", ev.Description)
	q.Set("location", ev.Location)
	return "https://calendar.google.com/calendar/render?" + q.Encode()
}

// OutlookURL builds an Outlook.com compose deeplink.
func OutlookURL(ev models.Event) string {
	start, end := eventWindow(ev)
	q := url.Values{}
	q.Set("path", "/calendar/action/compose")
	q.Set("rru", "addevent")
	q.Set("subject", ev.Title)
	q.Set("startdt", start.Format(time.RFC3339))
	q.Set("enddt", end.Format(time.RFC3339))
	q.Set("body", ev.Description)
	q.Set("location", ev.Location)
	return "https://outlook.live.com/calendar/0/deeplink/compose?" + q.Encode()
}

// YahooURL builds a Yahoo Calendar add link.
func YahooURL(ev models.Event) string {
	start, end := eventWindow(ev)
	q := url.Values{}
	q.Set("v", "60")
	q.Set("title", ev.Title)
	q.Set("st", start.Format(compactStamp))
	q.Set("et", end.Format(compactStamp))
	q.Set("desc", ev.Description)
	q.Set("in_loc", ev.Location)
	return "https://calendar.yahoo.com/?" + q.Encode()
}

// Links bundles the three provider URLs for one event.
type Links struct {
	Google  string `json:"google"`
	Outlook string `json:"outlook"`
	Yahoo   string `json:"yahoo"`
}

func LinksFor(ev models.Event) Links {
	return Links{
		Google:  GoogleURL(ev),
		Outlook: OutlookURL(ev),
		Yahoo:   YahooURL(ev),
	}
}
