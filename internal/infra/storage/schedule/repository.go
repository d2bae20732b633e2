package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/pkg/dbmetrics"
	"github.com/mhmdxx5/CarWashBackend/pkg/psqlbuilder"
	"github.com/mhmdxx5/CarWashBackend/pkg/types"
)

const (
	weeklyTable   = "working_hours"
	overrideTable = "working_hours_by_date"
)

// Repository хранилище недельного расписания и переопределений по датам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklySchedule возвращает расписание дня недели или ErrScheduleNotFound
func (r *Repository) GetWeeklySchedule(ctx context.Context, day domain.Weekday) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day", "hours", "updated_at").
		From(weeklyTable).
		Where(squirrel.Eq{"day": day}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - build select query: %v", ErrBuildQuery, err)
	}

	schedule, err := scanWeekly(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - scan row: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// ListWeeklySchedules возвращает все сохраненные дни недели в календарном порядке
func (r *Repository) ListWeeklySchedules(ctx context.Context) ([]*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day", "hours", "updated_at").
		From(weeklyTable).
		OrderBy("CASE day WHEN 'Sunday' THEN 0 WHEN 'Monday' THEN 1 WHEN 'Tuesday' THEN 2 " +
			"WHEN 'Wednesday' THEN 3 WHEN 'Thursday' THEN 4 WHEN 'Friday' THEN 5 ELSE 6 END").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWeeklySchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWeeklySchedules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.WeeklySchedule, 0, len(domain.AllWeekdays))
	for rows.Next() {
		s, err := scanWeekly(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWeeklySchedules - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWeeklySchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// UpsertWeeklySchedule полностью заменяет список слотов дня недели
func (r *Repository) UpsertWeeklySchedule(ctx context.Context, day domain.Weekday, hours []types.TimeString) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(weeklyTable).
		Columns("day", "hours").
		Values(day, pq.Array(domain.HoursToStrings(hours))).
		Suffix("ON CONFLICT (day) DO UPDATE SET hours = EXCLUDED.hours, updated_at = NOW() " +
			"RETURNING day, hours, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertWeeklySchedule - build insert query: %v", ErrBuildQuery, err)
	}

	schedule, err := scanWeekly(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertWeeklySchedule - execute upsert: %v", ErrExecQuery, err)
	}

	return schedule, nil
}

// GetDateOverride ищет переопределение на дату. Отсутствие записи не ошибка: NoOverride.
func (r *Repository) GetDateOverride(ctx context.Context, date string) (domain.OverrideLookup, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "hours", "updated_at").
		From(overrideTable).
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return domain.NoOverride(), fmt.Errorf("%w: GetDateOverride - build select query: %v", ErrBuildQuery, err)
	}

	override, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return domain.NoOverride(), nil
	}
	if err != nil {
		return domain.NoOverride(), fmt.Errorf("%w: GetDateOverride - scan row: %v", ErrScanRow, err)
	}

	return domain.FoundOverride(override), nil
}

// UpsertDateOverride сохраняет слоты на конкретную дату
func (r *Repository) UpsertDateOverride(ctx context.Context, date string, hours []types.TimeString) (*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(overrideTable).
		Columns("date", "hours").
		Values(date, pq.Array(domain.HoursToStrings(hours))).
		Suffix("ON CONFLICT (date) DO UPDATE SET hours = EXCLUDED.hours, updated_at = NOW() " +
			"RETURNING date, hours, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDateOverride - build insert query: %v", ErrBuildQuery, err)
	}

	override, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDateOverride - execute upsert: %v", ErrExecQuery, err)
	}

	return override, nil
}

// DeleteDateOverride удаляет переопределение, ErrOverrideNotFound если его не было
func (r *Repository) DeleteDateOverride(ctx context.Context, date string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(overrideTable).
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteDateOverride - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteDateOverride - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteDateOverride - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWeekly(row rowScanner) (*domain.WeeklySchedule, error) {
	var (
		day       string
		hours     []string
		updatedAt sql.NullTime
	)
	if err := row.Scan(&day, pq.Array(&hours), &updatedAt); err != nil {
		return nil, err
	}

	return &domain.WeeklySchedule{
		Day:       domain.Weekday(day),
		Hours:     toTimeStrings(hours),
		UpdatedAt: updatedAt.Time,
	}, nil
}

func scanOverride(row rowScanner) (*domain.DateOverride, error) {
	var (
		date      time.Time
		hours     []string
		updatedAt sql.NullTime
	)
	if err := row.Scan(&date, pq.Array(&hours), &updatedAt); err != nil {
		return nil, err
	}

	return &domain.DateOverride{
		Date:      date.Format(domain.DateFormat),
		Hours:     toTimeStrings(hours),
		UpdatedAt: updatedAt.Time,
	}, nil
}

func toTimeStrings(hours []string) []types.TimeString {
	out := make([]types.TimeString, len(hours))
	for i, h := range hours {
		out[i] = types.TimeString(h)
	}
	return out
}
