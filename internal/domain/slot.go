package domain

import (
	"time"

	"github.com/mhmdxx5/CarWashBackend/pkg/types"
)

// HourLoad occupancy of a single clock hour
type HourLoad struct {
	Hour   int
	Booked int
}

// IsFull returns true if no more bookings fit into the hour
func (h HourLoad) IsFull() bool {
	return h.Booked >= MaxBookingsPerHour
}

// Remaining returns how many bookings the hour can still take
func (h HourLoad) Remaining() int {
	if h.IsFull() {
		return 0
	}
	return MaxBookingsPerHour - h.Booked
}

// DayOccupancy taken slots and per-hour load of one calendar day
type DayOccupancy struct {
	taken map[types.TimeString]struct{}
	hours map[int]*HourLoad
}

// NewDayOccupancy projects bookings onto HH:MM slots in loc.
// Every status counts as taken.
func NewDayOccupancy(bookings []*Booking, loc *time.Location) *DayOccupancy {
	occ := &DayOccupancy{
		taken: make(map[types.TimeString]struct{}, len(bookings)),
		hours: make(map[int]*HourLoad),
	}
	for _, b := range bookings {
		local := b.ScheduledAt.In(loc)
		occ.taken[types.NewTimeString(local)] = struct{}{}

		load, ok := occ.hours[local.Hour()]
		if !ok {
			load = &HourLoad{Hour: local.Hour()}
			occ.hours[local.Hour()] = load
		}
		load.Booked++
	}
	return occ
}

// IsTaken returns true if some booking starts exactly at slot
func (o *DayOccupancy) IsTaken(slot types.TimeString) bool {
	_, ok := o.taken[slot]
	return ok
}

// Load returns occupancy of the given clock hour
func (o *DayOccupancy) Load(hour int) HourLoad {
	if load, ok := o.hours[hour]; ok {
		return *load
	}
	return HourLoad{Hour: hour}
}

// IsAvailable slot is free and its hour still has capacity
func (o *DayOccupancy) IsAvailable(slot types.TimeString) bool {
	return !o.IsTaken(slot) && !o.Load(slot.Hour()).IsFull()
}
