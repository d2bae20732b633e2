package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mhmdxx5/CarWashBackend/pkg/types"
)

var (
	// ErrInvalidWeekday day name is not one of Sunday..Saturday
	ErrInvalidWeekday = errors.New("domain: invalid weekday")

	// ErrInvalidHours a slot entry is not HH:MM
	ErrInvalidHours = errors.New("domain: invalid hours")
)

// Weekday day name as stored: Sunday..Saturday
type Weekday string

const (
	Sunday    Weekday = "Sunday"
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// AllWeekdays in calendar order starting from Sunday
var AllWeekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseWeekday accepts a day name in any case and returns its canonical form
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range AllWeekdays {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// WeekdayOf returns the day name of t in its own location
func WeekdayOf(t time.Time) Weekday {
	return AllWeekdays[int(t.Weekday())]
}

// WeeklySchedule default slot starts for one day of the week
type WeeklySchedule struct {
	Day       Weekday
	Hours     []types.TimeString
	UpdatedAt time.Time
}

// DateOverride slot starts for one calendar date, replacing the weekly default when non-empty
type DateOverride struct {
	Date      string // YYYY-MM-DD
	Hours     []types.TimeString
	UpdatedAt time.Time
}

// OverrideLookup result of a date override lookup.
// A stored override with no hours is found but does not replace the weekly default.
type OverrideLookup struct {
	override *DateOverride
}

// NoOverride lookup result when nothing is stored for the date
func NoOverride() OverrideLookup {
	return OverrideLookup{}
}

// FoundOverride lookup result for a stored override
func FoundOverride(o *DateOverride) OverrideLookup {
	return OverrideLookup{override: o}
}

// Found reports whether an override row exists
func (l OverrideLookup) Found() bool {
	return l.override != nil
}

// Override returns the stored override or nil
func (l OverrideLookup) Override() *DateOverride {
	return l.override
}

// Replaces reports whether the override takes precedence over the weekly default
func (l OverrideLookup) Replaces() bool {
	return l.override != nil && len(l.override.Hours) > 0
}

// ParseHours validates slot starts: strict HH:MM, duplicates collapsed, order kept
func ParseHours(raw []string) ([]types.TimeString, error) {
	hours := make([]types.TimeString, 0, len(raw))
	seen := make(map[types.TimeString]struct{}, len(raw))

	for i, s := range raw {
		ts, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: hours[%d] = %q must be HH:MM", ErrInvalidHours, i, s)
		}
		if _, dup := seen[ts]; dup {
			continue
		}
		seen[ts] = struct{}{}
		hours = append(hours, ts)
	}

	return hours, nil
}

// HoursToStrings converts slot starts for storage and JSON
func HoursToStrings(hours []types.TimeString) []string {
	out := make([]string, len(hours))
	for i, h := range hours {
		out[i] = h.String()
	}
	return out
}
