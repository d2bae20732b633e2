package list_products

import (
	"context"

	"github.com/mhmdxx5/CarWashBackend/internal/service/products/models"
)

type ProductService interface {
	List(ctx context.Context) (*models.ProductListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
