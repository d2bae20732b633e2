package models

import (
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
)

// ProductRequest создание или полная замена услуги каталога
type ProductRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Type            string  `json:"type"`
}

// ProductResponse услуга каталога
type ProductResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	Type            string    `json:"type"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ProductListResponse каталог
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

func FromDomainProduct(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		DurationMinutes: p.DurationMinutes,
		Type:            string(p.Type),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
