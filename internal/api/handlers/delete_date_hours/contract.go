package delete_date_hours

import "context"

type ScheduleService interface {
	DeleteDateOverride(ctx context.Context, date string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
