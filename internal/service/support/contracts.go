package support

import (
	"context"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
)

// TicketRepository интерфейс репозитория обращений
type TicketRepository interface {
	Create(ctx context.Context, t *domain.SupportTicket) (*domain.SupportTicket, error)
	List(ctx context.Context) ([]*domain.SupportTicket, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SupportStatus) (*domain.SupportTicket, error)
}

// Notifier уведомляет персонал о новом обращении
type Notifier interface {
	SupportTicketCreated(ticket *domain.SupportTicket)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
