package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	scheduleRepo "github.com/mhmdxx5/CarWashBackend/internal/infra/storage/schedule"
	"github.com/mhmdxx5/CarWashBackend/pkg/types"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		location:     location,
		logger:       logger,
	}
}

// Execute возвращает слоты эффективного расписания без занятых.
// Переопределение на дату с непустым списком полностью заменяет недельное расписание.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date, err := domain.ParseDate(req.Date, uc.location)
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	resp := &Response{Date: req.Date, AvailableHours: []types.TimeString{}, Source: SourceNone}

	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		hours, source, err := uc.effectiveSchedule(txCtx, date)
		if err != nil {
			return err
		}
		resp.Source = source

		if len(hours) == 0 {
			return nil
		}

		bookings, err := uc.bookingRepo.GetScheduledBetween(txCtx, domain.StartOfDay(date), domain.EndOfDay(date))
		if err != nil {
			uc.logger.Error("GetAvailability: failed to get bookings for %s: %v", req.Date, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		occupancy := domain.NewDayOccupancy(bookings, uc.location)
		for _, slot := range hours {
			if occupancy.IsAvailable(slot) {
				resp.AvailableHours = append(resp.AvailableHours, slot)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("GetAvailability: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: date=%s, source=%s, available=%d", req.Date, resp.Source, len(resp.AvailableHours))

	return resp, nil
}

// effectiveSchedule переопределение на дату, если оно есть и непустое, иначе расписание дня недели
func (uc *UseCase) effectiveSchedule(ctx context.Context, date time.Time) ([]types.TimeString, ScheduleSource, error) {
	dateKey := date.Format(domain.DateFormat)

	lookup, err := uc.scheduleRepo.GetDateOverride(ctx, dateKey)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get override for %s: %v", dateKey, err)
		return nil, SourceNone, fmt.Errorf("%w: failed to get date override: %v", ErrInternal, err)
	}
	if lookup.Replaces() {
		return lookup.Override().Hours, SourceOverride, nil
	}

	day := domain.WeekdayOf(date)
	weekly, err := uc.scheduleRepo.GetWeeklySchedule(ctx, day)
	if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		return nil, SourceNone, nil
	}
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get weekly schedule for %s: %v", day, err)
		return nil, SourceNone, fmt.Errorf("%w: failed to get weekly schedule: %v", ErrInternal, err)
	}
	if len(weekly.Hours) == 0 {
		return nil, SourceNone, nil
	}

	return weekly.Hours, SourceWeekly, nil
}
