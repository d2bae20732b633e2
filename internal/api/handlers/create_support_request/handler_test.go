package create_support_request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmdxx5/CarWashBackend/internal/api/middleware"
	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/internal/infra/storage/memory"
	"github.com/mhmdxx5/CarWashBackend/internal/service/support"
	"github.com/mhmdxx5/CarWashBackend/pkg/logger"
)

type recordingNotifier struct {
	tickets []*domain.SupportTicket
}

func (n *recordingNotifier) SupportTicketCreated(t *domain.SupportTicket) {
	n.tickets = append(n.tickets, t)
}

func TestHandler(t *testing.T) {
	notifier := &recordingNotifier{}
	h := NewHandler(support.NewService(memory.NewStore().Support(), notifier, logger.Nop()), logger.Nop())

	call := func(authed bool, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/support", strings.NewReader(body))
		if authed {
			req = req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{UserID: "u1", Email: "u1@example.com"}))
		}
		rec := httptest.NewRecorder()
		h.Handle(rec, req)
		return rec
	}

	rec := call(true, `{"message":"Не пришло письмо"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, notifier.tickets, 1)
	assert.Equal(t, "u1", notifier.tickets[0].UserID)

	assert.Equal(t, http.StatusBadRequest, call(true, `{"message":"   "}`).Code)
	assert.Equal(t, http.StatusUnauthorized, call(false, `{"message":"hi"}`).Code)
	assert.Len(t, notifier.tickets, 1)
}
