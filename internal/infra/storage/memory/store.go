// Package memory хранилище в памяти процесса. Реализует те же контракты, что и postgres-репозитории.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
)

// Store общее состояние всех репозиториев
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	now  func() time.Time

	bookings      []*domain.Booking
	nextBookingID int64

	weekly    map[domain.Weekday]*domain.WeeklySchedule
	overrides map[string]*domain.DateOverride

	products      map[int64]*domain.Product
	nextProductID int64

	tickets      map[int64]*domain.SupportTicket
	nextTicketID int64
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		now:       time.Now,
		weekly:    make(map[domain.Weekday]*domain.WeeklySchedule),
		overrides: make(map[string]*domain.DateOverride),
		products:  make(map[int64]*domain.Product),
		tickets:   make(map[int64]*domain.SupportTicket),
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

func (s *Store) Schedule() *ScheduleRepository {
	return &ScheduleRepository{store: s}
}

func (s *Store) Products() *ProductRepository {
	return &ProductRepository{store: s}
}

func (s *Store) Support() *SupportRepository {
	return &SupportRepository{store: s}
}

func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

type txKey struct{}

// TxManager сериализует транзакции: в каждый момент выполняется не более одной
type TxManager struct {
	store *Store
}

// Do выполняет fn под эксклюзивной блокировкой хранилища. Вложенные вызовы выполняются в той же транзакции.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTransaction(ctx) {
		return fn(ctx)
	}
	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, true))
}

// DoReadOnly то же, что Do: все чтения внутри fn видят одно состояние
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

func inTransaction(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}
