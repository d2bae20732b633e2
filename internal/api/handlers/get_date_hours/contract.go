package get_date_hours

import (
	"context"

	"github.com/mhmdxx5/CarWashBackend/internal/service/schedule/models"
)

type ScheduleService interface {
	GetDateOverride(ctx context.Context, date string) (*models.DateOverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
