package get_availability

import "github.com/mhmdxx5/CarWashBackend/pkg/types"

// ScheduleSource откуда взято расписание дня
type ScheduleSource string

const (
	SourceOverride ScheduleSource = "override"
	SourceWeekly   ScheduleSource = "weekly"
	SourceNone     ScheduleSource = "none"
)

// Request модель запроса свободных слотов
type Request struct {
	Date string // YYYY-MM-DD
}

// Response модель ответа со свободными слотами в порядке расписания
type Response struct {
	Date           string
	AvailableHours []types.TimeString
	Source         ScheduleSource
}
