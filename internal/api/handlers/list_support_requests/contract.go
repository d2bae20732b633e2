package list_support_requests

import (
	"context"

	"github.com/mhmdxx5/CarWashBackend/internal/service/support/models"
)

type SupportService interface {
	List(ctx context.Context) (*models.TicketListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
