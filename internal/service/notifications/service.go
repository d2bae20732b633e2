package notifications

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/internal/integrations/mailer"
)

// Service формирует письма клиентам и персоналу и ставит их в очередь
type Service struct {
	enqueuer   Enqueuer
	staffEmail string
	location   *time.Location
	logger     Logger
}

// NewService создает сервис уведомлений. Пустой staffEmail отключает письма персоналу.
func NewService(enqueuer Enqueuer, staffEmail string, location *time.Location, logger Logger) *Service {
	return &Service{
		enqueuer:   enqueuer,
		staffEmail: staffEmail,
		location:   location,
		logger:     logger,
	}
}

type bookingView struct {
	Booking   *domain.Booking
	When      string
	Requester domain.Identity
}

type ticketView struct {
	Ticket *domain.SupportTicket
}

// BookingCreated подтверждение клиенту и уведомление персоналу
func (s *Service) BookingCreated(b *domain.Booking) {
	view := s.bookingView(b, domain.Identity{})
	s.send(b.UserEmail, "Booking confirmation", "booking_created_user", view)
	s.send(s.staffEmail, fmt.Sprintf("New booking #%d", b.ID), "booking_created_staff", view)
}

// BookingStatusChanged сообщает клиенту новый статус
func (s *Service) BookingStatusChanged(b *domain.Booking) {
	s.send(b.UserEmail, fmt.Sprintf("Booking #%d is %s", b.ID, b.Status), "booking_status", s.bookingView(b, domain.Identity{}))
}

// CancellationRequested пересылает персоналу запрос на отмену
func (s *Service) CancellationRequested(b *domain.Booking, requester domain.Identity) {
	s.send(s.staffEmail, fmt.Sprintf("Cancellation request for booking #%d", b.ID), "cancel_request", s.bookingView(b, requester))
}

// SupportTicketCreated пересылает персоналу новое обращение
func (s *Service) SupportTicketCreated(t *domain.SupportTicket) {
	s.send(s.staffEmail, fmt.Sprintf("Support request #%d", t.ID), "support_ticket", ticketView{Ticket: t})
}

func (s *Service) bookingView(b *domain.Booking, requester domain.Identity) bookingView {
	return bookingView{
		Booking:   b,
		When:      b.ScheduledAt.In(s.location).Format("2006-01-02 15:04"),
		Requester: requester,
	}
}

func (s *Service) send(to, subject, tmpl string, data any) {
	if to == "" {
		return
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, tmpl, data); err != nil {
		s.logger.Error("notifications: render %s: %v", tmpl, err)
		return
	}

	msg := mailer.Message{
		ID:      uuid.NewString(),
		To:      to,
		Subject: subject,
		HTML:    body.String(),
	}
	if s.enqueuer.Enqueue(msg) {
		s.logger.Info("notifications: queued %s id=%s to=%s", tmpl, msg.ID, to)
	}
}
