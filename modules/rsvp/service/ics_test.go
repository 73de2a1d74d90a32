package service

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"campus-pulse/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCalendarCfg = config.CalendarConfig{
	Domain: "campuspulse.dev",
	Name:   "Campus Pulse",
	URL:    "https://campuspulse.dev",
}

func TestBuildCalendarInvite(t *testing.T) {
	start := time.Date(2026, 4, 10, 19, 0, 0, 0, time.Local)
	invite := buildCalendarInvite(inviteDetails{
		UID:         "rsvp-123",
		Title:       "Open Mic Night",
		Description: "Bring your own songs",
		Location:    "Student Union, Room 2",
		Start:       start,
		End:         start.Add(time.Hour),
		Stamp:       time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
	}, testCalendarCfg)

	body := string(invite)

	t.Run("uses CRLF line endings", func(t *testing.T) {
		require.True(t, strings.HasSuffix(body, "\r\n"))
		assert.NotContains(t, strings.ReplaceAll(body, "\r\n", ""), "\n")
	})

	t.Run("single VEVENT wrapped in VCALENDAR", func(t *testing.T) {
		assert.Equal(t, 1, strings.Count(body, "BEGIN:VEVENT"))
		assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR\r\n"))
		assert.Contains(t, body, "END:VCALENDAR\r\n")
	})

	t.Run("event times are floating local, stamp is UTC", func(t *testing.T) {
		assert.Contains(t, body, "DTSTART:20260410T190000\r\n")
		assert.Contains(t, body, "DTEND:20260410T200000\r\n")
		assert.Contains(t, body, "DTSTAMP:20260401T120000Z")
	})

	t.Run("identity fields", func(t *testing.T) {
		assert.Contains(t, body, "UID:rsvp-123@campuspulse.dev")
		assert.Contains(t, body, "SUMMARY:Open Mic Night")
	})

	t.Run("commas are escaped", func(t *testing.T) {
		assert.Contains(t, body, `LOCATION:Student Union\, Room 2`)
	})
}

func TestBuildCalendarInviteForeignZoneInput(t *testing.T) {
	// A start carrying another zone still renders as the server's local
	// wall clock, matching what the event page shows.
	loc := time.FixedZone("UTC+7", 7*3600)
	start := time.Date(2026, 4, 10, 19, 0, 0, 0, loc)

	invite := buildCalendarInvite(inviteDetails{
		UID:   "rsvp-456",
		Title: "Movie Night",
		Start: start,
		End:   start.Add(2 * time.Hour),
		Stamp: start,
	}, testCalendarCfg)

	assert.Contains(t, string(invite),
		"DTSTART:"+start.In(time.Local).Format(icsLocalLayout)+"\r\n")
	assert.Contains(t, string(invite),
		"DTEND:"+start.Add(2*time.Hour).In(time.Local).Format(icsLocalLayout)+"\r\n")
}

func TestICSEscape(t *testing.T) {
	assert.Equal(t, `a\\b\;c\,d\ne`, icsEscape("a\\b;c,d\ne"))
	assert.Equal(t, `line1\nline2`, icsEscape("line1\r\nline2"))
}

func TestWriteICSLineFolding(t *testing.T) {
	t.Run("long lines fold within 75 octets", func(t *testing.T) {
		var b strings.Builder
		long := strings.Repeat("x", 200)
		writeICSLine(&b, long)

		for _, line := range strings.Split(strings.TrimSuffix(b.String(), "\r\n"), "\r\n") {
			assert.LessOrEqual(t, len(line), 75)
		}
		assert.Equal(t, long, strings.ReplaceAll(b.String(), "\r\n ", "")[:200])
	})

	t.Run("folds never split a multi-byte rune", func(t *testing.T) {
		var b strings.Builder
		long := strings.Repeat("日本語のイベント", 10) // 3 octets per rune
		writeICSLine(&b, long)

		for _, line := range strings.Split(strings.TrimSuffix(b.String(), "\r\n"), "\r\n") {
			assert.LessOrEqual(t, len(line), 75)
			assert.True(t, utf8.ValidString(strings.TrimPrefix(line, " ")))
		}
		unfolded := strings.ReplaceAll(b.String(), "\r\n ", "")
		assert.Equal(t, long, strings.TrimSuffix(unfolded, "\r\n"))
	})
}
