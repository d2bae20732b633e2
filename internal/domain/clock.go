package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDate value is not a YYYY-MM-DD calendar date
	ErrInvalidDate = errors.New("domain: invalid date")

	// ErrInvalidDateTime value is not an ISO-8601 date-time
	ErrInvalidDateTime = errors.New("domain: invalid date-time")
)

// Layouts accepted for booking date-times. Values without an offset are read in the business zone.
var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDate parses a strict YYYY-MM-DD date at midnight in loc
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, loc)
	if err != nil || t.Format(DateFormat) != s {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseDateTime parses an ISO-8601 date-time and converts it to loc
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
}

// StartOfDay returns 00:00:00 of t's calendar day in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfHour returns HH:00:00 of t's clock hour
func StartOfHour(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), 0, 0, 0, t.Location())
}

// EndOfHour returns the last nanosecond of t's clock hour
func EndOfHour(t time.Time) time.Time {
	return StartOfHour(t).Add(time.Hour - time.Nanosecond)
}
