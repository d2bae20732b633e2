package support

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/internal/infra/storage/memory"
	"github.com/mhmdxx5/CarWashBackend/internal/service/support/models"
	"github.com/mhmdxx5/CarWashBackend/pkg/logger"
)

type recordingNotifier struct {
	tickets []*domain.SupportTicket
}

func (n *recordingNotifier) SupportTicketCreated(t *domain.SupportTicket) {
	n.tickets = append(n.tickets, t)
}

var author = domain.Identity{UserID: "user-1", Name: "Dana", Email: "dana@example.com"}

func TestService_Create(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewService(memory.NewStore().Support(), notifier, logger.Nop())

	ticket, err := svc.Create(context.Background(), author, &models.CreateTicketRequest{Message: "  Where is my car?  "})
	require.NoError(t, err)
	assert.Equal(t, "Where is my car?", ticket.Message)
	assert.Equal(t, "new", ticket.Status)
	assert.Equal(t, "dana@example.com", ticket.UserEmail)
	require.Len(t, notifier.tickets, 1)
	assert.Equal(t, ticket.ID, notifier.tickets[0].ID)
}

func TestService_Create_Validation(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewService(memory.NewStore().Support(), notifier, logger.Nop())

	_, err := svc.Create(context.Background(), author, &models.CreateTicketRequest{Message: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), author, &models.CreateTicketRequest{Message: strings.Repeat("a", domain.MaxMessageLength+1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Empty(t, notifier.tickets)
}

func TestService_ListAndUpdateStatus(t *testing.T) {
	svc := NewService(memory.NewStore().Support(), &recordingNotifier{}, logger.Nop())
	ctx := context.Background()

	first, err := svc.Create(ctx, author, &models.CreateTicketRequest{Message: "first"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, author, &models.CreateTicketRequest{Message: "second"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Tickets, 2)
	assert.Equal(t, "second", list.Tickets[0].Message)

	updated, err := svc.UpdateStatus(ctx, first.ID, &models.UpdateTicketStatusRequest{Status: "resolved"})
	require.NoError(t, err)
	assert.Equal(t, "resolved", updated.Status)

	_, err = svc.UpdateStatus(ctx, first.ID, &models.UpdateTicketStatusRequest{Status: "closed"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, 999, &models.UpdateTicketStatusRequest{Status: "resolved"})
	assert.ErrorIs(t, err, ErrTicketNotFound)
}
