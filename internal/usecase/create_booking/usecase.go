package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/pkg/metrics"
)

// UseCase use case для создания бронирования с ограничением на количество бронирований в час
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	notifier    Notifier
	metrics     MetricsRecorder
	location    *time.Location
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		notifier:    notifier,
		metrics:     metrics,
		location:    location,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Подсчет бронирований часа и вставка выполняются в одной транзакции под блокировкой часа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Owner.UserID == "" {
		return nil, ErrUnauthenticated
	}

	uc.logger.Info("CreateBooking: user=%s, date=%s, mode=%s, services=%d",
		req.Owner.UserID, req.Date, req.ServiceMode, len(req.Services))

	// 1. Валидация входных данных до любых изменений
	scheduledAt, err := validateRequest(req, uc.location)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.recordOutcome(metrics.OutcomeInvalid)
		return nil, err
	}

	booking := buildBooking(req, scheduledAt)

	// 2. Границы часа [HH:00, HH:59:59.999]
	hourStart := domain.StartOfHour(scheduledAt)
	hourEnd := domain.EndOfHour(scheduledAt)

	var result *domain.Booking

	// 3. Блокировка часа, подсчет, вставка
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.bookingRepo.LockHourBucket(txCtx, hourStart); err != nil {
			uc.logger.Error("CreateBooking: failed to lock hour %s: %v", hourStart.Format(time.RFC3339), err)
			return fmt.Errorf("%w: failed to lock hour: %v", ErrInternal, err)
		}

		count, err := uc.bookingRepo.CountScheduledBetween(txCtx, hourStart, hourEnd)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count bookings: %v", err)
			return fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}

		if count >= domain.MaxBookingsPerHour {
			uc.logger.Warn("CreateBooking: hour %s is full, %d/%d bookings",
				hourStart.Format("2006-01-02 15:04"), count, domain.MaxBookingsPerHour)
			return ErrCapacityExceeded
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrCapacityExceeded):
			uc.recordOutcome(metrics.OutcomeRejected)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.recordOutcome(metrics.OutcomeFailed)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			uc.recordOutcome(metrics.OutcomeFailed)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d at %s",
		result.ID, result.ScheduledAt.Format(time.RFC3339))
	uc.recordOutcome(metrics.OutcomeCreated)

	// 4. Уведомления после фиксации транзакции
	if uc.notifier != nil {
		uc.notifier.BookingCreated(result)
	}

	return &Response{Booking: result}, nil
}

func (uc *UseCase) recordOutcome(outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncBookingOutcome(outcome)
	}
}

// buildBooking собирает бронирование из проверенного запроса
func buildBooking(req *Request, scheduledAt time.Time) *domain.Booking {
	services := make([]domain.BookedService, len(req.Services))
	for i, s := range req.Services {
		services[i] = domain.BookedService{
			ProductID: s.ProductID,
			Name:      strings.TrimSpace(s.Name),
			Price:     *s.Price,
		}
	}

	mode := domain.ServiceMode(req.ServiceMode)
	extra, total := calculatePrice(services, mode)

	var notes *string
	if req.Notes != nil {
		if trimmed := strings.TrimSpace(*req.Notes); trimmed != "" {
			notes = &trimmed
		}
	}

	home := mode == domain.ServiceModeHome

	return &domain.Booking{
		UserID:         req.Owner.UserID,
		UserName:       req.Owner.Name,
		UserEmail:      req.Owner.Email,
		Services:       services,
		HomeExtraPrice: extra,
		TotalPrice:     total,
		ServiceMode:    mode,
		Location:       strings.TrimSpace(req.Location),
		Coordinates:    req.Coordinates,
		ScheduledAt:    scheduledAt,
		CarNumber:      strings.TrimSpace(req.CarNumber),
		CarCode:        strings.TrimSpace(req.CarCode),
		Phone:          strings.TrimSpace(req.Phone),
		Notes:          notes,
		Electricity:    home && req.Electricity,
		Water:          home && req.Water,
		Status:         domain.StatusPending,
	}
}
