package models

import (
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
)

// CreateTicketRequest новое обращение
type CreateTicketRequest struct {
	Message string `json:"message"`
}

// UpdateTicketStatusRequest смена статуса обращения
type UpdateTicketStatusRequest struct {
	Status string `json:"status"`
}

// TicketResponse обращение в поддержку
type TicketResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TicketListResponse список обращений
type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
}

func FromDomainTicket(t *domain.SupportTicket) *TicketResponse {
	return &TicketResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		UserName:  t.UserName,
		UserEmail: t.UserEmail,
		Message:   t.Message,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
