package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда для дня недели нет расписания
	ErrScheduleNotFound = errors.New("schedule.repository: weekly schedule not found")

	// ErrOverrideNotFound возвращается, когда для даты нет переопределения
	ErrOverrideNotFound = errors.New("schedule.repository: date override not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
