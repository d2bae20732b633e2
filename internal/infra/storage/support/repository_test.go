package support

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/pkg/dbmetrics"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return NewRepository(dbmetrics.Wrap(sqlDB, nil, "test")), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO support_requests \(user_id,user_name,user_email,message,status\)`).
		WithArgs("u1", "Dana", "dana@example.com", "Wrong car number", domain.SupportStatusNew).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

	ticket, err := repo.Create(context.Background(), &domain.SupportTicket{
		UserID:    "u1",
		UserName:  "Dana",
		UserEmail: "dana@example.com",
		Message:   "Wrong car number",
		Status:    domain.SupportStatusNew,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), ticket.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		now := time.Now()
		mock.ExpectQuery(`UPDATE support_requests SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 RETURNING`).
			WithArgs(domain.SupportStatusResolved, int64(3)).
			WillReturnRows(sqlmock.NewRows(ticketColumns).
				AddRow(int64(3), "u1", "Dana", "", "help", "resolved", now, now))

		ticket, err := repo.UpdateStatus(context.Background(), 3, domain.SupportStatusResolved)

		require.NoError(t, err)
		assert.Equal(t, domain.SupportStatusResolved, ticket.Status)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		mock.ExpectQuery(`UPDATE support_requests`).WillReturnRows(sqlmock.NewRows(ticketColumns))

		_, err := repo.UpdateStatus(context.Background(), 3, domain.SupportStatusResolved)

		assert.ErrorIs(t, err, ErrTicketNotFound)
	})
}
