package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/pkg/dbmetrics"
	"github.com/mhmdxx5/CarWashBackend/pkg/psqlbuilder"
)

// hourLockNamespace первый ключ pg_advisory_xact_lock(int, int), отделяет блокировки часов от прочих
const hourLockNamespace = 4201

var bookingColumns = []string{
	"id",
	"user_id",
	"user_name",
	"user_email",
	"services",
	"home_extra_price",
	"total_price",
	"service_mode",
	"location",
	"lat",
	"lng",
	"scheduled_at",
	"car_number",
	"car_code",
	"phone",
	"notes",
	"electricity",
	"water",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockHourBucket берет транзакционную advisory-блокировку на час, начинающийся в hourStart.
// Блокировка снимается при commit/rollback. Все создания бронирований на этот час
// выполняют подсчет и вставку строго по очереди.
func (r *Repository) LockHourBucket(ctx context.Context, hourStart time.Time) error {
	tx, ok := dbmetrics.GetTx(ctx)
	if !ok {
		return ErrNoTransaction
	}

	bucket := int32(hourStart.Unix() / int64(time.Hour/time.Second))
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1, $2)", hourLockNamespace, bucket); err != nil {
		return fmt.Errorf("%w: LockHourBucket - acquire lock: %v", ErrExecQuery, err)
	}

	return nil
}

// CountScheduledBetween считает бронирования любого статуса с scheduled_at в [from, to]
func (r *Repository) CountScheduledBetween(ctx context.Context, from, to time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.GtOrEq{"scheduled_at": from}).
		Where(squirrel.LtOrEq{"scheduled_at": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountScheduledBetween - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountScheduledBetween - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	services, err := json.Marshal(booking.Services)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal services: %v", ErrEncodeServices, err)
	}

	var lat, lng sql.NullFloat64
	if booking.Coordinates != nil {
		lat = sql.NullFloat64{Float64: booking.Coordinates.Lat, Valid: true}
		lng = sql.NullFloat64{Float64: booking.Coordinates.Lng, Valid: true}
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"user_name",
			"user_email",
			"services",
			"home_extra_price",
			"total_price",
			"service_mode",
			"location",
			"lat",
			"lng",
			"scheduled_at",
			"car_number",
			"car_code",
			"phone",
			"notes",
			"electricity",
			"water",
			"status",
		).
		Values(
			booking.UserID,
			booking.UserName,
			booking.UserEmail,
			string(services),
			booking.HomeExtraPrice,
			booking.TotalPrice,
			booking.ServiceMode,
			booking.Location,
			lat,
			lng,
			booking.ScheduledAt,
			booking.CarNumber,
			booking.CarCode,
			booking.Phone,
			booking.Notes,
			booking.Electricity,
			booking.Water,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List возвращает бронирования по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC", "id DESC")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetScheduledBetween возвращает бронирования любого статуса с scheduled_at в [from, to], по времени
func (r *Repository) GetScheduledBetween(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"scheduled_at": from}).
		Where(squirrel.LtOrEq{"scheduled_at": to}).
		OrderBy("scheduled_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduledBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduledBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus меняет статус, только если текущий статус равен from (compare-and-set)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStatusConflict
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return booking, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b         domain.Booking
		services  []byte
		lat, lng  sql.NullFloat64
		notes     sql.NullString
		mode      string
		status    string
		scheduled time.Time
		created   sql.NullTime
		updated   sql.NullTime
	)

	if err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.UserName,
		&b.UserEmail,
		&services,
		&b.HomeExtraPrice,
		&b.TotalPrice,
		&mode,
		&b.Location,
		&lat,
		&lng,
		&scheduled,
		&b.CarNumber,
		&b.CarCode,
		&b.Phone,
		&notes,
		&b.Electricity,
		&b.Water,
		&status,
		&created,
		&updated,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(services, &b.Services); err != nil {
		return nil, fmt.Errorf("decode services of booking %d: %w", b.ID, err)
	}

	b.ServiceMode = domain.ServiceMode(mode)
	b.Status = domain.BookingStatus(status)
	b.ScheduledAt = scheduled
	b.CreatedAt = created.Time
	b.UpdatedAt = updated.Time
	if lat.Valid && lng.Valid {
		b.Coordinates = &domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}
	if notes.Valid {
		b.Notes = &notes.String
	}

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
