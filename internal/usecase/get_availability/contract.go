package get_availability

import (
	"context"
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
)

// ScheduleRepository интерфейс хранилища расписания
type ScheduleRepository interface {
	GetWeeklySchedule(ctx context.Context, day domain.Weekday) (*domain.WeeklySchedule, error)
	GetDateOverride(ctx context.Context, date string) (domain.OverrideLookup, error)
}

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	GetScheduledBetween(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// TransactionManager все чтения выполняются на одном снимке данных
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
