package schedule

import (
	"context"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/pkg/types"
)

// ScheduleRepository интерфейс репозитория рабочих часов
type ScheduleRepository interface {
	ListWeeklySchedules(ctx context.Context) ([]*domain.WeeklySchedule, error)
	UpsertWeeklySchedule(ctx context.Context, day domain.Weekday, hours []types.TimeString) (*domain.WeeklySchedule, error)
	GetDateOverride(ctx context.Context, date string) (domain.OverrideLookup, error)
	UpsertDateOverride(ctx context.Context, date string, hours []types.TimeString) (*domain.DateOverride, error)
	DeleteDateOverride(ctx context.Context, date string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
