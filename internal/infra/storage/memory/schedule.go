package memory

import (
	"context"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	scheduleRepo "github.com/mhmdxx5/CarWashBackend/internal/infra/storage/schedule"
	"github.com/mhmdxx5/CarWashBackend/pkg/types"
)

// ScheduleRepository недельное расписание и переопределения в памяти
type ScheduleRepository struct {
	store *Store
}

func (r *ScheduleRepository) GetWeeklySchedule(ctx context.Context, day domain.Weekday) (*domain.WeeklySchedule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.weekly[day]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return cloneWeekly(s), nil
}

func (r *ScheduleRepository) ListWeeklySchedules(ctx context.Context) ([]*domain.WeeklySchedule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.WeeklySchedule, 0, len(r.store.weekly))
	for _, day := range domain.AllWeekdays {
		if s, ok := r.store.weekly[day]; ok {
			result = append(result, cloneWeekly(s))
		}
	}
	return result, nil
}

func (r *ScheduleRepository) UpsertWeeklySchedule(ctx context.Context, day domain.Weekday, hours []types.TimeString) (*domain.WeeklySchedule, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s := &domain.WeeklySchedule{
		Day:       day,
		Hours:     append([]types.TimeString{}, hours...),
		UpdatedAt: r.store.now(),
	}
	r.store.weekly[day] = s
	return cloneWeekly(s), nil
}

func (r *ScheduleRepository) GetDateOverride(ctx context.Context, date string) (domain.OverrideLookup, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o, ok := r.store.overrides[date]
	if !ok {
		return domain.NoOverride(), nil
	}
	return domain.FoundOverride(cloneOverride(o)), nil
}

func (r *ScheduleRepository) UpsertDateOverride(ctx context.Context, date string, hours []types.TimeString) (*domain.DateOverride, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o := &domain.DateOverride{
		Date:      date,
		Hours:     append([]types.TimeString{}, hours...),
		UpdatedAt: r.store.now(),
	}
	r.store.overrides[date] = o
	return cloneOverride(o), nil
}

func (r *ScheduleRepository) DeleteDateOverride(ctx context.Context, date string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.overrides[date]; !ok {
		return scheduleRepo.ErrOverrideNotFound
	}
	delete(r.store.overrides, date)
	return nil
}

func cloneWeekly(s *domain.WeeklySchedule) *domain.WeeklySchedule {
	c := *s
	c.Hours = append([]types.TimeString{}, s.Hours...)
	return &c
}

func cloneOverride(o *domain.DateOverride) *domain.DateOverride {
	c := *o
	c.Hours = append([]types.TimeString{}, o.Hours...)
	return &c
}
