package domain

import "time"

// ProductType catalogue category
type ProductType string

const (
	ProductTypeExternal ProductType = "external"
	ProductTypeInternal ProductType = "internal"
	ProductTypePolish   ProductType = "polish"
	ProductTypeOther    ProductType = "other"
)

// IsValid reports whether t is a known product type
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeExternal, ProductTypeInternal, ProductTypePolish, ProductTypeOther:
		return true
	}
	return false
}

// Product catalogue service offered by the wash
type Product struct {
	ID              int64
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Type            ProductType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
