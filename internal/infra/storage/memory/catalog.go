package memory

import (
	"context"
	"sort"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	productRepo "github.com/mhmdxx5/CarWashBackend/internal/infra/storage/product"
	supportRepo "github.com/mhmdxx5/CarWashBackend/internal/infra/storage/support"
)

// ProductRepository каталог в памяти
type ProductRepository struct {
	store *Store
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		c := *p
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, productRepo.ErrProductNotFound
	}
	c := *p
	return &c, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextProductID++
	now := r.store.now()
	p.ID = r.store.nextProductID
	p.CreatedAt = now
	p.UpdatedAt = now

	stored := *p
	r.store.products[p.ID] = &stored
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.products[p.ID]
	if !ok {
		return nil, productRepo.ErrProductNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = r.store.now()

	stored := *p
	r.store.products[p.ID] = &stored
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[id]; !ok {
		return productRepo.ErrProductNotFound
	}
	delete(r.store.products, id)
	return nil
}

// SupportRepository обращения в памяти
type SupportRepository struct {
	store *Store
}

func (r *SupportRepository) Create(ctx context.Context, t *domain.SupportTicket) (*domain.SupportTicket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextTicketID++
	now := r.store.now()
	t.ID = r.store.nextTicketID
	t.CreatedAt = now
	t.UpdatedAt = now

	stored := *t
	r.store.tickets[t.ID] = &stored
	return t, nil
}

func (r *SupportRepository) List(ctx context.Context) ([]*domain.SupportTicket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.SupportTicket, 0, len(r.store.tickets))
	for _, t := range r.store.tickets {
		c := *t
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *SupportRepository) UpdateStatus(ctx context.Context, id int64, status domain.SupportStatus) (*domain.SupportTicket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.tickets[id]
	if !ok {
		return nil, supportRepo.ErrTicketNotFound
	}
	t.Status = status
	t.UpdatedAt = r.store.now()

	c := *t
	return &c, nil
}
