package update_support_request

import (
	"context"

	"github.com/mhmdxx5/CarWashBackend/internal/service/support/models"
)

type SupportService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateTicketStatusRequest) (*models.TicketResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
