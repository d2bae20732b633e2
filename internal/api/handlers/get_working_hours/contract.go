package get_working_hours

import (
	"context"

	"github.com/mhmdxx5/CarWashBackend/internal/service/schedule/models"
)

type ScheduleService interface {
	ListWeekly(ctx context.Context) (*models.WeeklyScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
