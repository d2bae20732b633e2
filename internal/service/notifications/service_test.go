package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/internal/integrations/mailer"
	"github.com/mhmdxx5/CarWashBackend/pkg/logger"
)

type queueRecorder struct {
	messages []mailer.Message
}

func (q *queueRecorder) Enqueue(msg mailer.Message) bool {
	q.messages = append(q.messages, msg)
	return true
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:          7,
		UserID:      "user-1",
		UserName:    "Dana <script>",
		UserEmail:   "dana@example.com",
		Services:    []domain.BookedService{{Name: "Exterior", Price: 50}, {Name: "Interior", Price: 30}},
		TotalPrice:  100,
		ServiceMode: domain.ServiceModeHome,
		Location:    "Haifa",
		ScheduledAt: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		CarNumber:   "12-345-67",
		Phone:       "0501234567",
		Status:      domain.StatusPending,
	}
}

func TestService_BookingCreated(t *testing.T) {
	q := &queueRecorder{}
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)
	svc := NewService(q, "staff@example.com", loc, logger.Nop())

	svc.BookingCreated(sampleBooking())

	require.Len(t, q.messages, 2)
	assert.Equal(t, "dana@example.com", q.messages[0].To)
	assert.Equal(t, "staff@example.com", q.messages[1].To)
	assert.Contains(t, q.messages[0].HTML, "2024-03-01 14:30")
	assert.Contains(t, q.messages[0].HTML, "Exterior, Interior")
	assert.Contains(t, q.messages[0].HTML, "100.00")
	// имя клиента экранируется
	assert.NotContains(t, q.messages[0].HTML, "<script>")
	assert.NotEqual(t, q.messages[0].ID, q.messages[1].ID)
}

func TestService_NoStaffAddress(t *testing.T) {
	q := &queueRecorder{}
	svc := NewService(q, "", time.UTC, logger.Nop())

	svc.BookingCreated(sampleBooking())
	svc.CancellationRequested(sampleBooking(), domain.Identity{UserID: "user-1"})
	svc.SupportTicketCreated(&domain.SupportTicket{ID: 1, Message: "hi"})

	require.Len(t, q.messages, 1)
	assert.Equal(t, "dana@example.com", q.messages[0].To)
}

func TestService_StatusAndCancellation(t *testing.T) {
	q := &queueRecorder{}
	svc := NewService(q, "staff@example.com", time.UTC, logger.Nop())

	b := sampleBooking()
	b.Status = domain.StatusCompleted
	svc.BookingStatusChanged(b)
	svc.CancellationRequested(b, domain.Identity{UserID: "user-1", Name: "Dana", Email: "dana@example.com"})
	svc.SupportTicketCreated(&domain.SupportTicket{ID: 3, UserName: "Eli", UserEmail: "eli@example.com", Message: "Where is my car?"})

	require.Len(t, q.messages, 3)
	assert.Equal(t, "Booking #7 is completed", q.messages[0].Subject)
	assert.Equal(t, "dana@example.com", q.messages[0].To)
	assert.Contains(t, q.messages[1].HTML, "asked to cancel booking #7")
	assert.Equal(t, "staff@example.com", q.messages[2].To)
	assert.Contains(t, q.messages[2].HTML, "Where is my car?")
}
