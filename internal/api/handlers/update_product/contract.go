package update_product

import (
	"context"

	"github.com/mhmdxx5/CarWashBackend/internal/service/products/models"
)

type ProductService interface {
	Update(ctx context.Context, id int64, req *models.ProductRequest) (*models.ProductResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
