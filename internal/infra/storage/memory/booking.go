package memory

import (
	"context"
	"sort"
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	bookingRepo "github.com/mhmdxx5/CarWashBackend/internal/infra/storage/booking"
)

// BookingRepository журнал бронирований в памяти
type BookingRepository struct {
	store *Store
}

// LockHourBucket в памяти транзакции уже сериализованы, проверяется только наличие транзакции
func (r *BookingRepository) LockHourBucket(ctx context.Context, _ time.Time) error {
	if !inTransaction(ctx) {
		return bookingRepo.ErrNoTransaction
	}
	return ctx.Err()
}

func (r *BookingRepository) CountScheduledBetween(ctx context.Context, from, to time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, b := range r.store.bookings {
		if inWindow(b.ScheduledAt, from, to) {
			count++
		}
	}
	return count, nil
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextBookingID++
	now := r.store.now()
	booking.ID = r.store.nextBookingID
	booking.CreatedAt = now
	booking.UpdatedAt = now

	r.store.bookings = append(r.store.bookings, cloneBooking(booking))
	return cloneBooking(booking), nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, b := range r.store.bookings {
		if b.ID == id {
			return cloneBooking(b), nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.store.bookings {
		if filter.UserID != nil && b.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, cloneBooking(b))
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *BookingRepository) GetScheduledBetween(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.store.bookings {
		if inWindow(b.ScheduledAt, from, to) {
			result = append(result, cloneBooking(b))
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ScheduledAt.Before(result[j].ScheduledAt)
	})
	return result, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, b := range r.store.bookings {
		if b.ID != id {
			continue
		}
		if b.Status != from {
			return nil, bookingRepo.ErrStatusConflict
		}
		b.Status = to
		b.UpdatedAt = r.store.now()
		return cloneBooking(b), nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	c.Services = append([]domain.BookedService(nil), b.Services...)
	if b.Coordinates != nil {
		coords := *b.Coordinates
		c.Coordinates = &coords
	}
	if b.Notes != nil {
		notes := *b.Notes
		c.Notes = &notes
	}
	return &c
}
