package create_booking

import (
	"context"
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	LockHourBucket(ctx context.Context, hourStart time.Time) error
	CountScheduledBetween(ctx context.Context, from, to time.Time) (int, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier уведомления после успешного создания. Не должен блокировать.
type Notifier interface {
	BookingCreated(booking *domain.Booking)
}

// MetricsRecorder счетчик исходов бронирования
type MetricsRecorder interface {
	IncBookingOutcome(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
