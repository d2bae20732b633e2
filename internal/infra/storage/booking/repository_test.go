package booking

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/pkg/dbmetrics"
	"github.com/mhmdxx5/CarWashBackend/pkg/ptr"
)

func newTestRepository(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil, "test")
	return NewRepository(db), db, mock
}

func bookingRow(id int64, status string, scheduled time.Time) []driver.Value {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return []driver.Value{
		id, "user-1", "Dana", "dana@example.com",
		[]byte(`[{"name":"Exterior wash","price":50},{"productId":3,"name":"Wax","price":30}]`),
		20.0, 100.0, "home", "Haifa, Herzl 1", 32.8, 35.0,
		scheduled, "12-345-67", "", "0501234567", nil, true, false,
		status, now, now,
	}
}

func TestRepository_LockHourBucket_RequiresTransaction(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	err := repo.LockHourBucket(context.Background(), time.Now())

	assert.ErrorIs(t, err, ErrNoTransaction)
}

func TestRepository_LockHourBucket(t *testing.T) {
	repo, db, mock := newTestRepository(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1, \$2\)`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	err = repo.LockHourBucket(dbmetrics.WithTx(ctx, tx), time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountScheduledBetween(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	from := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)
	to := domain.EndOfHour(from)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE scheduled_at >= \$1 AND scheduled_at <= \$2`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountScheduledBetween(context.Background(), from, to)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO bookings \(user_id,.*\) VALUES \(.*\) RETURNING id, created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), created, created))

	b, err := repo.Create(context.Background(), &domain.Booking{
		UserID:      "user-1",
		Services:    []domain.BookedService{{Name: "Wash", Price: 80}},
		TotalPrice:  80,
		ServiceMode: domain.ServiceModePickup,
		ScheduledAt: time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC),
		Status:      domain.StatusPending,
		Coordinates: &domain.Coordinates{Lat: 1, Lng: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, created, b.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	scheduled := time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, _, mock := newTestRepository(t)
		mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(bookingRow(7, "pending", scheduled)...))

		b, err := repo.GetByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), b.ID)
		assert.Equal(t, domain.StatusPending, b.Status)
		assert.Equal(t, domain.ServiceModeHome, b.ServiceMode)
		require.Len(t, b.Services, 2)
		assert.Equal(t, ptr.Ptr(int64(3)), b.Services[1].ProductID)
		require.NotNil(t, b.Coordinates)
		assert.Equal(t, 32.8, b.Coordinates.Lat)
		assert.Nil(t, b.Notes)
		assert.True(t, b.ScheduledAt.Equal(scheduled))
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, mock := newTestRepository(t)
		mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		_, err := repo.GetByID(context.Background(), 7)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestRepository_List_ByUser(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	scheduled := time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE user_id = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(bookingRow(2, "pending", scheduled)...).
			AddRow(bookingRow(1, "completed", scheduled)...))

	list, err := repo.List(context.Background(), domain.BookingsFilter{UserID: ptr.Ptr("user-1")})

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, domain.StatusCompleted, list[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	scheduled := time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)

	t.Run("swapped", func(t *testing.T) {
		repo, _, mock := newTestRepository(t)
		mock.ExpectQuery(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3 RETURNING`).
			WithArgs(domain.StatusCompleted, int64(5), domain.StatusPending).
			WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(bookingRow(5, "completed", scheduled)...))

		b, err := repo.UpdateStatus(context.Background(), 5, domain.StatusPending, domain.StatusCompleted)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, b.Status)
	})

	t.Run("status changed meanwhile", func(t *testing.T) {
		repo, _, mock := newTestRepository(t)
		mock.ExpectQuery(`UPDATE bookings SET status`).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		_, err := repo.UpdateStatus(context.Background(), 5, domain.StatusPending, domain.StatusCanceled)

		assert.ErrorIs(t, err, ErrStatusConflict)
	})
}
