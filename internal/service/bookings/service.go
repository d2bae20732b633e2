package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	bookingRepo "github.com/mhmdxx5/CarWashBackend/internal/infra/storage/booking"
	"github.com/mhmdxx5/CarWashBackend/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	policy      domain.StaffPolicy
	location    *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	policy domain.StaffPolicy,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		policy:      policy,
		location:    location,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID. Доступно владельцу и персоналу.
func (s *Service) GetByID(ctx context.Context, id int64, caller domain.Identity) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if err := s.checkAccess(booking, caller); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%d", caller.UserID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking, s.location), nil
}

// GetUserBookings бронирования пользователя, новые первыми
func (s *Service) GetUserBookings(ctx context.Context, userID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userID)

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{UserID: &userID})
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(bookings, s.location), nil
}

// ListBookings все бронирования (для персонала), новые первыми, с данными владельца
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	var filter domain.BookingsFilter
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookings(bookings, s.location), nil
}

// UpdateStatus меняет статус: pending -> completed | canceled. Повторная установка текущего статуса ничего не меняет.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	next := domain.BookingStatus(req.Status)
	if !next.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	booking, err := s.getBooking(ctx, id, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	if booking.Status == next {
		return models.FromDomainBooking(booking, s.location), nil
	}

	if !booking.Status.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for booking id=%d", booking.Status, next, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, booking.Status, next)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) || errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d changed concurrently", id)
			return nil, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d is now %s", id, next)
	s.notifier.BookingStatusChanged(updated)

	return models.FromDomainBooking(updated, s.location), nil
}

// RequestCancellation отправляет персоналу запрос на отмену. Статус не меняется.
func (s *Service) RequestCancellation(ctx context.Context, caller domain.Identity, req *models.CancelRequest) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, req.BookingID, "RequestCancellation")
	if err != nil {
		return err
	}

	if err := s.checkAccess(booking, caller); err != nil {
		s.logger.Warn("RequestCancellation: user=%s is not the owner of booking id=%d", caller.UserID, booking.ID)
		return err
	}

	if booking.Status.IsTerminal() {
		return fmt.Errorf("%w: booking is %s", ErrCannotCancel, booking.Status)
	}

	s.logger.Info("RequestCancellation: user=%s requested cancellation of booking id=%d", caller.UserID, booking.ID)
	s.notifier.CancellationRequested(booking, caller)

	return nil
}

func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkAccess владелец или персонал
func (s *Service) checkAccess(booking *domain.Booking, caller domain.Identity) error {
	if booking.UserID == caller.UserID || s.policy.IsStaff(caller) {
		return nil
	}
	return ErrAccessDenied
}
