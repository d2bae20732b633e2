package cancel_booking

import (
	"context"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/internal/service/bookings/models"
)

type BookingService interface {
	RequestCancellation(ctx context.Context, caller domain.Identity, req *models.CancelRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
