package churchboard

import (
	"strings"
	"time"
)

// Date and time parsing is forgiving on purpose: clients send a mix of full
// RFC3339 timestamps, bare dates, and "HH:MM" clocks, and an unparseable
// value is treated as unset rather than rejected.

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp parses an ISO-ish timestamp, accepting a trailing "Z" on
// layouts without zone info. Returns nil when the input is empty or invalid.
func parseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, strings.TrimSuffix(s, "Z")); err == nil {
			return &t
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}

// parseDate parses a date-bearing string and truncates it to the day.
func parseDate(s string) *time.Time {
	t := parseTimestamp(s)
	if t == nil {
		return nil
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &day
}

// parseClock normalizes an "HH:MM" string, returning "" when invalid.
func parseClock(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ""
	}
	return t.Format("15:04")
}

// isoTime formats a timestamp for responses.
func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// isoTimePtr formats a nullable timestamp, keeping null on the wire.
func isoTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := isoTime(*t)
	return &s
}

// isoDatePtr formats a nullable date-only value.
func isoDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
