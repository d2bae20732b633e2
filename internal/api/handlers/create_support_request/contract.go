package create_support_request

import (
	"context"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/internal/service/support/models"
)

type SupportService interface {
	Create(ctx context.Context, author domain.Identity, req *models.CreateTicketRequest) (*models.TicketResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
