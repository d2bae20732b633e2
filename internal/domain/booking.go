package domain

import (
	"time"

	"github.com/mhmdxx5/CarWashBackend/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusCompleted BookingStatus = "completed"
	StatusCanceled  BookingStatus = "canceled"
)

// ServiceMode how the car gets to the wash
type ServiceMode string

const (
	ServiceModeHome   ServiceMode = "home"
	ServiceModePickup ServiceMode = "pickup"
)

// BookedService snapshot of a selected service at booking time
type BookedService struct {
	ProductID *int64  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// Coordinates geographic point of the customer location
type Coordinates struct {
	Lat float64
	Lng float64
}

// Booking represents a car wash reservation
type Booking struct {
	ID int64

	// Owner snapshot taken from the verified identity
	UserID    string
	UserName  string
	UserEmail string

	Services       []BookedService
	HomeExtraPrice float64
	TotalPrice     float64
	ServiceMode    ServiceMode

	Location    string
	Coordinates *Coordinates
	ScheduledAt time.Time

	CarNumber   string
	CarCode     string
	Phone       string
	Notes       *string
	Electricity bool
	Water       bool

	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotIn returns the HH:MM slot the booking occupies in the given location
func (b *Booking) SlotIn(loc *time.Location) types.TimeString {
	return types.NewTimeString(b.ScheduledAt.In(loc))
}

// IsValid reports whether s is a known status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// IsTerminal returns true for statuses without outgoing transitions
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// CanTransitionTo checks the lifecycle pending -> completed | canceled.
// Staying in the same status is always allowed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	return s == StatusPending
}

// IsValid reports whether m is a known service mode
func (m ServiceMode) IsValid() bool {
	return m == ServiceModeHome || m == ServiceModePickup
}

// BookingsFilter фильтр для списков бронирований
type BookingsFilter struct {
	UserID *string        // только бронирования владельца (опционально)
	Status *BookingStatus // фильтр по статусу (опционально)
}
