package utils

import (
	"errors"
	"time"
)

// dateOnly is the canonical calendar-date form used everywhere a booked
// date is stored or compared: "YYYY-MM-DD", no time component.
const dateOnly = "2006-01-02"

// ErrBadDate is returned when a supplied booking date cannot be parsed.
var ErrBadDate = errors.New("invalid booking date")

// dateLayouts are the accepted input forms, tried in order. Clients
// mostly send plain dates, but a full RFC3339 timestamp from a date
// picker is also accepted and truncated to its calendar date.
var dateLayouts = []string{
	dateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// NormalizeDate parses a caller-supplied booking date and returns it in
// canonical "YYYY-MM-DD" form. Both the availability check and the
// booking path go through this, so the two can never disagree about what
// date a request refers to.
func NormalizeDate(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateOnly), nil
		}
	}
	return "", ErrBadDate
}

// ParseBookedDate converts a stored canonical date back into a time.Time
// at midnight UTC. Stored dates always parse; an error here means the
// document was modified outside this service.
func ParseBookedDate(s string) (time.Time, error) {
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}
