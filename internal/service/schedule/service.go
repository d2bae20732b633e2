package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	scheduleRepo "github.com/mhmdxx5/CarWashBackend/internal/infra/storage/schedule"
	"github.com/mhmdxx5/CarWashBackend/internal/service/schedule/models"
	"github.com/mhmdxx5/CarWashBackend/pkg/types"
)

// Service сервис для управления рабочими часами
type Service struct {
	scheduleRepo ScheduleRepository
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(scheduleRepo ScheduleRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		location:     location,
		logger:       logger,
	}
}

// ListWeekly возвращает все сохраненные дни недели, от воскресенья до субботы
func (s *Service) ListWeekly(ctx context.Context) (*models.WeeklyScheduleListResponse, error) {
	schedules, err := s.scheduleRepo.ListWeeklySchedules(ctx)
	if err != nil {
		s.logger.Error("ListWeekly: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWeekly - repository error: %v", ErrInternal, err)
	}

	resp := &models.WeeklyScheduleListResponse{WorkingHours: make([]models.WeeklyScheduleResponse, len(schedules))}
	for i, sch := range schedules {
		resp.WorkingHours[i] = *models.FromDomainWeekly(sch)
	}
	return resp, nil
}

// SetWeekly заменяет расписание дня недели целиком
func (s *Service) SetWeekly(ctx context.Context, day string, req *models.SetHoursRequest) (*models.WeeklyScheduleResponse, error) {
	weekday, err := domain.ParseWeekday(day)
	if err != nil {
		s.logger.Warn("SetWeekly: invalid day=%q", day)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	hours, err := s.parseHours(req)
	if err != nil {
		s.logger.Warn("SetWeekly: invalid hours for day=%s: %v", weekday, err)
		return nil, err
	}

	saved, err := s.scheduleRepo.UpsertWeeklySchedule(ctx, weekday, hours)
	if err != nil {
		s.logger.Error("SetWeekly: repository error for day=%s: %v", weekday, err)
		return nil, fmt.Errorf("%w: SetWeekly - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetWeekly: day=%s now has %d slots", weekday, len(saved.Hours))
	return models.FromDomainWeekly(saved), nil
}

// GetDateOverride возвращает переопределение на дату. Сохраненный пустой список тоже возвращается.
func (s *Service) GetDateOverride(ctx context.Context, date string) (*models.DateOverrideResponse, error) {
	if err := s.validateDate(date); err != nil {
		return nil, err
	}

	lookup, err := s.scheduleRepo.GetDateOverride(ctx, date)
	if err != nil {
		s.logger.Error("GetDateOverride: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: GetDateOverride - repository error: %v", ErrInternal, err)
	}
	if !lookup.Found() {
		return nil, ErrOverrideNotFound
	}

	return models.FromDomainOverride(lookup.Override()), nil
}

// SetDateOverride заменяет расписание на дату. Пустой список не перекрывает расписание дня недели.
func (s *Service) SetDateOverride(ctx context.Context, date string, req *models.SetHoursRequest) (*models.DateOverrideResponse, error) {
	if err := s.validateDate(date); err != nil {
		return nil, err
	}

	hours, err := s.parseHours(req)
	if err != nil {
		s.logger.Warn("SetDateOverride: invalid hours for date=%s: %v", date, err)
		return nil, err
	}

	saved, err := s.scheduleRepo.UpsertDateOverride(ctx, date, hours)
	if err != nil {
		s.logger.Error("SetDateOverride: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: SetDateOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetDateOverride: date=%s now has %d slots", date, len(saved.Hours))
	return models.FromDomainOverride(saved), nil
}

// DeleteDateOverride удаляет переопределение, после чего снова действует расписание дня недели
func (s *Service) DeleteDateOverride(ctx context.Context, date string) error {
	if err := s.validateDate(date); err != nil {
		return err
	}

	if err := s.scheduleRepo.DeleteDateOverride(ctx, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteDateOverride: repository error for date=%s: %v", date, err)
		return fmt.Errorf("%w: DeleteDateOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteDateOverride: override for date=%s removed", date)
	return nil
}

func (s *Service) validateDate(date string) error {
	if _, err := domain.ParseDate(date, s.location); err != nil {
		s.logger.Warn("invalid date=%q", date)
		return fmt.Errorf("%w: %q must be YYYY-MM-DD", ErrInvalidDate, date)
	}
	return nil
}

func (s *Service) parseHours(req *models.SetHoursRequest) ([]types.TimeString, error) {
	if req == nil || req.Hours == nil {
		return nil, fmt.Errorf("%w: hours is required", ErrInvalidInput)
	}
	hours, err := domain.ParseHours(req.Hours)
	if err != nil {
		verr := &domain.ValidationError{}
		verr.Add("hours", err.Error())
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, verr)
	}
	return hours, nil
}
