package calendar

import (
	"strings"
	"time"

	"github.com/13132klain/ufa-backend/internal/models"
)

// escapeText escapes ICS TEXT values per RFC 5545 section 3.3.11.
func escapeText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\r\n", `\n`,
		"\n", `\n`,
	)
	return r.Replace(s)
}

// ICS renders a single-event iCalendar document. Lines end in CRLF as
// the format requires.
func ICS(ev models.Event) string {
	start, end := eventWindow(ev)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//United Future Alliance//Events//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + ev.ID + "@ufa.org",
		"DTSTAMP:" + time.Now().UTC().Format(compactStamp),
		"DTSTART:" + start.Format(compactStamp),
		"DTEND:" + end.Format(compactStamp),
		"SUMMARY:" + escapeText(ev.Title),
		"DESCRIPTION:" + escapeText(ev.Description),
		"LOCATION:" + escapeText(ev.Location),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}
