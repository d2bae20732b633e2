package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	productRepo "github.com/mhmdxx5/CarWashBackend/internal/infra/storage/product"
	"github.com/mhmdxx5/CarWashBackend/internal/service/products/models"
)

// Service сервис каталога услуг
type Service struct {
	productRepo ProductRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(productRepo ProductRepository, logger Logger) *Service {
	return &Service{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List возвращает каталог, новые первыми
func (s *Service) List(ctx context.Context) (*models.ProductListResponse, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.ProductListResponse{Products: make([]models.ProductResponse, len(products))}
	for i, p := range products {
		resp.Products[i] = *models.FromDomainProduct(p)
	}
	return resp, nil
}

// Create добавляет услугу в каталог
func (s *Service) Create(ctx context.Context, req *models.ProductRequest) (*models.ProductResponse, error) {
	product, err := toDomainProduct(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: product id=%d %q added", created.ID, created.Name)
	return models.FromDomainProduct(created), nil
}

// Update заменяет поля услуги
func (s *Service) Update(ctx context.Context, id int64, req *models.ProductRequest) (*models.ProductResponse, error) {
	product, err := toDomainProduct(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for product id=%d: %v", id, err)
		return nil, err
	}
	product.ID = id

	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		s.logger.Error("Update: repository error for product id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: product id=%d updated", id)
	return models.FromDomainProduct(updated), nil
}

// Delete удаляет услугу. Уже созданные бронирования хранят копию названия и цены.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			return ErrProductNotFound
		}
		s.logger.Error("Delete: repository error for product id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: product id=%d removed", id)
	return nil
}

func toDomainProduct(req *models.ProductRequest) (*domain.Product, error) {
	verr := &domain.ValidationError{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		verr.Add("name", "name is required")
	}
	if req.Price < 0 {
		verr.Add("price", "price must not be negative")
	}
	if req.DurationMinutes < 0 {
		verr.Add("durationMinutes", "duration must not be negative")
	}
	productType := domain.ProductType(req.Type)
	if !productType.IsValid() {
		verr.Add("type", "type must be one of external, internal, polish, other")
	}

	if err := verr.OrNil(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return &domain.Product{
		Name:            name,
		Description:     strings.TrimSpace(req.Description),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Type:            productType,
	}, nil
}
