package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/internal/infra/storage/memory"
	"github.com/mhmdxx5/CarWashBackend/pkg/logger"
	"github.com/mhmdxx5/CarWashBackend/pkg/types"
)

type fixture struct {
	uc    *UseCase
	store *memory.Store
}

func newFixture(t *testing.T, loc *time.Location) *fixture {
	t.Helper()
	store := memory.NewStore()
	return &fixture{
		uc:    NewUseCase(store.Schedule(), store.Bookings(), store.TxManager(), loc, logger.Nop()),
		store: store,
	}
}

func (f *fixture) weekly(t *testing.T, day domain.Weekday, hours ...types.TimeString) {
	t.Helper()
	_, err := f.store.Schedule().UpsertWeeklySchedule(context.Background(), day, hours)
	require.NoError(t, err)
}

func (f *fixture) override(t *testing.T, date string, hours ...types.TimeString) {
	t.Helper()
	_, err := f.store.Schedule().UpsertDateOverride(context.Background(), date, hours)
	require.NoError(t, err)
}

func (f *fixture) book(t *testing.T, at time.Time, status domain.BookingStatus) {
	t.Helper()
	_, err := f.store.Bookings().Create(context.Background(), &domain.Booking{UserID: "u", ScheduledAt: at, Status: status})
	require.NoError(t, err)
}

func TestUseCase_Execute_WeeklyMinusTaken(t *testing.T) {
	f := newFixture(t, time.UTC)
	f.weekly(t, domain.Sunday, "08:00", "09:00", "10:00")
	f.book(t, time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC), domain.StatusPending)

	resp, err := f.uc.Execute(context.Background(), &Request{Date: "2024-01-07"})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"08:00", "10:00"}, resp.AvailableHours)
	assert.Equal(t, SourceWeekly, resp.Source)
}

func TestUseCase_Execute_EmptyOverrideFallsBackToWeekly(t *testing.T) {
	f := newFixture(t, time.UTC)
	f.weekly(t, domain.Sunday, "08:00", "09:00")
	f.override(t, "2024-01-07")

	resp, err := f.uc.Execute(context.Background(), &Request{Date: "2024-01-07"})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"08:00", "09:00"}, resp.AvailableHours)
	assert.Equal(t, SourceWeekly, resp.Source)
}

func TestUseCase_Execute_OverrideReplacesWeekly(t *testing.T) {
	f := newFixture(t, time.UTC)
	f.weekly(t, domain.Sunday, "08:00", "09:00", "10:00")
	f.override(t, "2024-01-07", "09:00")

	resp, err := f.uc.Execute(context.Background(), &Request{Date: "2024-01-07"})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00"}, resp.AvailableHours)
	assert.Equal(t, SourceOverride, resp.Source)

	// override on another date does not leak
	resp, err = f.uc.Execute(context.Background(), &Request{Date: "2024-01-14"})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"08:00", "09:00", "10:00"}, resp.AvailableHours)
}

func TestUseCase_Execute_PreservesDeclaredOrder(t *testing.T) {
	f := newFixture(t, time.UTC)
	f.weekly(t, domain.Monday, "16:00", "08:00", "12:00")

	resp, err := f.uc.Execute(context.Background(), &Request{Date: "2024-01-08"})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"16:00", "08:00", "12:00"}, resp.AvailableHours)
}

func TestUseCase_Execute_NoSchedule(t *testing.T) {
	f := newFixture(t, time.UTC)

	resp, err := f.uc.Execute(context.Background(), &Request{Date: "2024-01-07"})

	require.NoError(t, err)
	assert.NotNil(t, resp.AvailableHours)
	assert.Empty(t, resp.AvailableHours)
	assert.Equal(t, SourceNone, resp.Source)
}

func TestUseCase_Execute_AnyStatusTakesSlot(t *testing.T) {
	f := newFixture(t, time.UTC)
	f.weekly(t, domain.Sunday, "08:00", "09:00")
	f.book(t, time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC), domain.StatusCanceled)

	resp, err := f.uc.Execute(context.Background(), &Request{Date: "2024-01-07"})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00"}, resp.AvailableHours)
}

func TestUseCase_Execute_FullHourRemovesOtherSlots(t *testing.T) {
	f := newFixture(t, time.UTC)
	f.weekly(t, domain.Friday, "14:00", "14:30", "15:00")
	for _, m := range []int{15, 20, 45} {
		f.book(t, time.Date(2024, 3, 1, 14, m, 0, 0, time.UTC), domain.StatusPending)
	}

	resp, err := f.uc.Execute(context.Background(), &Request{Date: "2024-03-01"})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"15:00"}, resp.AvailableHours)
}

func TestUseCase_Execute_Idempotent(t *testing.T) {
	f := newFixture(t, time.UTC)
	f.weekly(t, domain.Sunday, "08:00", "09:00")
	f.book(t, time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC), domain.StatusPending)

	first, err := f.uc.Execute(context.Background(), &Request{Date: "2024-01-07"})
	require.NoError(t, err)
	second, err := f.uc.Execute(context.Background(), &Request{Date: "2024-01-07"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUseCase_Execute_BusinessTimeZone(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	f := newFixture(t, loc)
	f.weekly(t, domain.Sunday, "01:00", "02:00")
	// 2024-01-06 22:00 UTC is 2024-01-07 01:00 local
	f.book(t, time.Date(2024, 1, 6, 22, 0, 0, 0, time.UTC), domain.StatusPending)

	resp, err := f.uc.Execute(context.Background(), &Request{Date: "2024-01-07"})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"02:00"}, resp.AvailableHours)
}

func TestUseCase_Execute_InvalidDate(t *testing.T) {
	f := newFixture(t, time.UTC)

	for _, date := range []string{"", "2024-13-01", "07/01/2024", "2024-01-07T10:00"} {
		_, err := f.uc.Execute(context.Background(), &Request{Date: date})
		assert.ErrorIs(t, err, ErrInvalidDate, date)
	}
}

type brokenSchedule struct{}

func (brokenSchedule) GetWeeklySchedule(context.Context, domain.Weekday) (*domain.WeeklySchedule, error) {
	return nil, errors.New("timeout")
}

func (brokenSchedule) GetDateOverride(context.Context, string) (domain.OverrideLookup, error) {
	return domain.NoOverride(), nil
}

func TestUseCase_Execute_StorageFailure(t *testing.T) {
	store := memory.NewStore()
	uc := NewUseCase(brokenSchedule{}, store.Bookings(), store.TxManager(), time.UTC, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{Date: "2024-01-07"})

	assert.ErrorIs(t, err, ErrInternal)
}
