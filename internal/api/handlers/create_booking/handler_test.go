package create_booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmdxx5/CarWashBackend/internal/api/handlers"
	"github.com/mhmdxx5/CarWashBackend/internal/api/middleware"
	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/internal/infra/storage/memory"
	createBooking "github.com/mhmdxx5/CarWashBackend/internal/usecase/create_booking"
	"github.com/mhmdxx5/CarWashBackend/pkg/logger"
	"github.com/mhmdxx5/CarWashBackend/pkg/metrics"
)

type nopNotifier struct{}

func (nopNotifier) BookingCreated(*domain.Booking) {}

func newHandler() *Handler {
	store := memory.NewStore()
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	uc := createBooking.NewUseCase(store.Bookings(), store.TxManager(), nopNotifier{}, m, time.UTC, logger.Nop())
	return NewHandler(uc, time.UTC, logger.Nop())
}

func post(h *Handler, body string, withIdentity bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	if withIdentity {
		req = req.WithContext(middleware.WithIdentity(req.Context(),
			domain.Identity{UserID: "user-1", Name: "Dana", Email: "dana@example.com"}))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func bookingBody(date string) string {
	return `{
		"services": [{"name": "Exterior", "price": 50}, {"name": "Interior", "price": 30}],
		"location": "Haifa, Herzl 1",
		"date": "` + date + `",
		"carNumber": "12-345-67",
		"phone": "0501234567",
		"serviceMode": "home",
		"electricity": true
	}`
}

func TestHandler_Created(t *testing.T) {
	h := newHandler()

	rec := post(h, bookingBody("2024-03-01T14:15"), true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp CreateBookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Booking)
	assert.Equal(t, 100.0, resp.Booking.TotalPrice)
	assert.Equal(t, 20.0, resp.Booking.HomeExtraPrice)
	assert.Equal(t, "pending", resp.Booking.Status)
	assert.Equal(t, "user-1", resp.Booking.User.ID)
	assert.Equal(t, "14:15", resp.Booking.Slot)
	assert.True(t, resp.Booking.Electricity)
}

func TestHandler_CapacityExceeded(t *testing.T) {
	h := newHandler()

	for _, date := range []string{"2024-03-01T14:15", "2024-03-01T14:30", "2024-03-01T14:45"} {
		require.Equal(t, http.StatusCreated, post(h, bookingBody(date), true).Code)
	}

	rec := post(h, bookingBody("2024-03-01T14:50"), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, msgCapacityExceeded, resp.Message)

	assert.Equal(t, http.StatusCreated, post(h, bookingBody("2024-03-01T15:00"), true).Code)
}

func TestHandler_ValidationErrors(t *testing.T) {
	h := newHandler()

	rec := post(h, `{"services": [], "serviceMode": "drone", "date": "tomorrow"}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	fields := make(map[string]bool)
	for _, f := range resp.Errors {
		fields[f.Field] = true
	}
	for _, f := range []string{"services", "location", "carNumber", "phone", "serviceMode", "date"} {
		assert.True(t, fields[f], "missing field error for %s", f)
	}
}

func TestHandler_BadBodyAndNoIdentity(t *testing.T) {
	h := newHandler()

	assert.Equal(t, http.StatusBadRequest, post(h, `{"services":`, true).Code)
	assert.Equal(t, http.StatusUnauthorized, post(h, bookingBody("2024-03-01T14:15"), false).Code)
}
