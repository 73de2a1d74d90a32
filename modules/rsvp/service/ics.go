package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"campus-pulse/core/config"
)

const (
	// Event times are written as floating local time so the invite shows
	// the hour students saw on the event page, whatever their device tz.
	icsLocalLayout = "20060102T150405"
	icsUTCLayout   = "20060102T150405Z"
)

// inviteDetails is everything that goes into one calendar invite.
type inviteDetails struct {
	UID         string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Stamp       time.Time
}

// buildCalendarInvite renders a single-event iCalendar file suitable for a
// MIME attachment. DTSTAMP is UTC; event times are floating local time.
func buildCalendarInvite(d inviteDetails, cfg config.CalendarConfig) []byte {
	var b strings.Builder

	writeICSLine(&b, "BEGIN:VCALENDAR")
	writeICSLine(&b, "VERSION:2.0")
	writeICSLine(&b, "PRODID:-//"+cfg.Name+"//"+cfg.Domain+"//EN")
	writeICSLine(&b, "CALSCALE:GREGORIAN")
	writeICSLine(&b, "METHOD:PUBLISH")
	writeICSLine(&b, "BEGIN:VEVENT")
	writeICSLine(&b, "UID:"+d.UID+"@"+cfg.Domain)
	writeICSLine(&b, "DTSTAMP:"+d.Stamp.UTC().Format(icsUTCLayout))
	writeICSLine(&b, "DTSTART:"+d.Start.In(time.Local).Format(icsLocalLayout))
	writeICSLine(&b, "DTEND:"+d.End.In(time.Local).Format(icsLocalLayout))
	writeICSLine(&b, "SUMMARY:"+icsEscape(d.Title))
	if d.Description != "" {
		writeICSLine(&b, "DESCRIPTION:"+icsEscape(d.Description))
	}
	if d.Location != "" {
		writeICSLine(&b, "LOCATION:"+icsEscape(d.Location))
	}
	if cfg.URL != "" {
		writeICSLine(&b, "URL:"+cfg.URL)
	}
	writeICSLine(&b, "END:VEVENT")
	writeICSLine(&b, "END:VCALENDAR")

	return []byte(b.String())
}

// writeICSLine terminates with CRLF and folds lines longer than 75 octets as
// RFC 5545 requires. Folds land on rune boundaries so multi-byte text is
// never split mid-sequence, and continuation lines stay within 75 octets
// including their leading space.
func writeICSLine(b *strings.Builder, line string) {
	const limit = 75

	width := limit
	for len(line) > width {
		cut := width
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		width = limit - 1
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}

// icsEscape escapes text values per RFC 5545 section 3.3.11.
func icsEscape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\r\n", `\n`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
