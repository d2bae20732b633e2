package models

import (
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
)

// SetHoursRequest список начал слотов HH:MM. Пустой список допустим, отсутствие поля нет.
type SetHoursRequest struct {
	Hours []string `json:"hours"`
}

// WeeklyScheduleResponse расписание дня недели
type WeeklyScheduleResponse struct {
	Day       string    `json:"day"`
	Hours     []string  `json:"hours"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WeeklyScheduleListResponse все сохраненные дни недели
type WeeklyScheduleListResponse struct {
	WorkingHours []WeeklyScheduleResponse `json:"workingHours"`
}

// DateOverrideResponse расписание на конкретную дату
type DateOverrideResponse struct {
	Date      string    `json:"date"`
	Hours     []string  `json:"hours"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromDomainWeekly(s *domain.WeeklySchedule) *WeeklyScheduleResponse {
	return &WeeklyScheduleResponse{
		Day:       string(s.Day),
		Hours:     domain.HoursToStrings(s.Hours),
		UpdatedAt: s.UpdatedAt,
	}
}

func FromDomainOverride(o *domain.DateOverride) *DateOverrideResponse {
	return &DateOverrideResponse{
		Date:      o.Date,
		Hours:     domain.HoursToStrings(o.Hours),
		UpdatedAt: o.UpdatedAt,
	}
}
