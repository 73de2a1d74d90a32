package dto

import (
	"errors"
	"time"
)

// Event submissions arrive in two historical shapes: a combined RFC3339
// start timestamp, or separate date ("2006-01-02") and time ("15:04")
// strings. Both are normalized to time.Time here, once, at ingestion;
// nothing downstream ever sees the string forms.

var (
	ErrMissingStart = errors.New("event start requires either start_time or date and time")
	ErrBadTimeForm  = errors.New("unrecognized date/time format")
)

// ResolveStartTime reconciles the two request shapes into a single start
// instant. Separate date+time strings are interpreted in server local time.
func ResolveStartTime(startTime string, date string, clock string) (time.Time, error) {
	if startTime != "" {
		t, err := time.Parse(time.RFC3339, startTime)
		if err != nil {
			return time.Time{}, ErrBadTimeForm
		}
		return t, nil
	}

	if date == "" || clock == "" {
		return time.Time{}, ErrMissingStart
	}

	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, ErrBadTimeForm
	}
	return t, nil
}

// ResolveEndTime accepts an RFC3339 timestamp or a bare "15:04" clock on the
// start's date. An empty value returns nil: the end is left open and readers
// apply the default duration.
func ResolveEndTime(start time.Time, endTime string) (*time.Time, error) {
	if endTime == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, endTime); err == nil {
		return &t, nil
	}

	clock, err := time.ParseInLocation("15:04", endTime, time.Local)
	if err != nil {
		return nil, ErrBadTimeForm
	}

	end := time.Date(start.Year(), start.Month(), start.Day(),
		clock.Hour(), clock.Minute(), 0, 0, start.Location())
	return &end, nil
}
