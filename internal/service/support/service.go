package support

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	supportRepo "github.com/mhmdxx5/CarWashBackend/internal/infra/storage/support"
	"github.com/mhmdxx5/CarWashBackend/internal/service/support/models"
)

// Service сервис обращений в поддержку
type Service struct {
	ticketRepo TicketRepository
	notifier   Notifier
	logger     Logger
}

// NewService создает новый экземпляр сервиса поддержки
func NewService(ticketRepo TicketRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// Create сохраняет обращение пользователя и уведомляет персонал
func (s *Service) Create(ctx context.Context, author domain.Identity, req *models.CreateTicketRequest) (*models.TicketResponse, error) {
	message := strings.TrimSpace(req.Message)
	switch {
	case message == "":
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	case utf8.RuneCountInString(message) > domain.MaxMessageLength:
		return nil, fmt.Errorf("%w: message must be at most %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	ticket, err := s.ticketRepo.Create(ctx, &domain.SupportTicket{
		UserID:    author.UserID,
		UserName:  author.Name,
		UserEmail: author.Email,
		Message:   message,
		Status:    domain.SupportStatusNew,
	})
	if err != nil {
		s.logger.Error("Create: repository error for user=%s: %v", author.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: support ticket id=%d opened by user=%s", ticket.ID, author.UserID)
	s.notifier.SupportTicketCreated(ticket)

	return models.FromDomainTicket(ticket), nil
}

// List все обращения, новые первыми
func (s *Service) List(ctx context.Context) (*models.TicketListResponse, error) {
	tickets, err := s.ticketRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.TicketListResponse{Tickets: make([]models.TicketResponse, len(tickets))}
	for i, t := range tickets {
		resp.Tickets[i] = *models.FromDomainTicket(t)
	}
	return resp, nil
}

// UpdateStatus меняет статус обращения
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateTicketStatusRequest) (*models.TicketResponse, error) {
	status := domain.SupportStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	ticket, err := s.ticketRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, supportRepo.ErrTicketNotFound) {
			return nil, ErrTicketNotFound
		}
		s.logger.Error("UpdateStatus: repository error for ticket id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: ticket id=%d is now %s", id, status)
	return models.FromDomainTicket(ticket), nil
}
