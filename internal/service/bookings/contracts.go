package bookings

import (
	"context"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error)
}

// Notifier уведомления о бронированиях (не блокирует)
type Notifier interface {
	BookingStatusChanged(booking *domain.Booking)
	CancellationRequested(booking *domain.Booking, requester domain.Identity)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
