package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mhmdxx5/CarWashBackend/pkg/types"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusCanceled, true},
		{StatusPending, StatusPending, true},
		{StatusCompleted, StatusCompleted, true},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCanceled, false},
		{StatusCanceled, StatusPending, false},
		{StatusCanceled, StatusCompleted, false},
		{StatusPending, BookingStatus("confirmed"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
}

func TestDayOccupancy(t *testing.T) {
	loc := time.UTC
	at := func(h, m int) *Booking {
		return &Booking{ScheduledAt: time.Date(2024, 3, 1, h, m, 0, 0, loc)}
	}

	occ := NewDayOccupancy([]*Booking{at(14, 15), at(14, 30), at(14, 45), at(9, 0)}, loc)

	assert.True(t, occ.IsTaken("09:00"))
	assert.False(t, occ.IsTaken("14:00"))
	assert.True(t, occ.Load(14).IsFull())
	assert.Equal(t, 2, occ.Load(9).Remaining())
	assert.Equal(t, MaxBookingsPerHour, occ.Load(16).Remaining())

	assert.False(t, occ.IsAvailable("14:00"), "hour 14 is at capacity")
	assert.False(t, occ.IsAvailable("09:00"), "exact slot is taken")
	assert.True(t, occ.IsAvailable(types.TimeString("09:30")))
}

func TestDayOccupancy_ProjectsIntoLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	b := &Booking{ScheduledAt: time.Date(2024, 1, 7, 7, 0, 0, 0, time.UTC)}

	occ := NewDayOccupancy([]*Booking{b}, loc)

	assert.True(t, occ.IsTaken("09:00"))
	assert.Equal(t, types.TimeString("09:00"), b.SlotIn(loc))
}
