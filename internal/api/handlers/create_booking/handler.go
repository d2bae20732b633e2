package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/api/handlers"
	"github.com/mhmdxx5/CarWashBackend/internal/api/middleware"
	"github.com/mhmdxx5/CarWashBackend/internal/service/bookings/models"
	createBooking "github.com/mhmdxx5/CarWashBackend/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации"
	msgCapacityExceeded   = "на этот час уже нет свободных мест, выберите другое время"
	msgUnauthorized       = "требуется авторизация"
)

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(owner))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: user_id=%s, error=%v", owner.UserID, err)
			handlers.RespondValidationError(w, msgValidationFailed, err)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Hour is full: user_id=%s, date=%s", owner.UserID, req.Date)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, error=%v", owner.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%s",
		result.Booking.ID, owner.UserID)
	handlers.RespondJSON(w, http.StatusCreated, CreateBookingResponse{
		Booking: models.FromDomainBooking(result.Booking, h.location),
	})
}
