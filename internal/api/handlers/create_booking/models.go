package create_booking

import (
	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/internal/service/bookings/models"
	createBooking "github.com/mhmdxx5/CarWashBackend/internal/usecase/create_booking"
)

// ServiceItem HTTP модель выбранной услуги
type ServiceItem struct {
	ProductID *int64   `json:"productId,omitempty"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price"`
}

// CoordinatesRequest координаты клиента
type CoordinatesRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Services    []ServiceItem       `json:"services"`
	Location    string              `json:"location"`
	Coordinates *CoordinatesRequest `json:"coordinates,omitempty"`
	Date        string              `json:"date"` // "2024-03-01T14:30" или RFC3339
	CarNumber   string              `json:"carNumber"`
	CarCode     string              `json:"carCode,omitempty"`
	Phone       string              `json:"phone"`
	Notes       *string             `json:"notes,omitempty"`
	ServiceMode string              `json:"serviceMode"`
	Electricity bool                `json:"electricity,omitempty"`
	Water       bool                `json:"water,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking *models.BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(owner domain.Identity) *createBooking.Request {
	services := make([]createBooking.ServiceItem, len(r.Services))
	for i, s := range r.Services {
		services[i] = createBooking.ServiceItem{ProductID: s.ProductID, Name: s.Name, Price: s.Price}
	}

	var coords *domain.Coordinates
	if r.Coordinates != nil {
		coords = &domain.Coordinates{Lat: r.Coordinates.Lat, Lng: r.Coordinates.Lng}
	}

	return &createBooking.Request{
		Owner:       owner,
		Services:    services,
		Location:    r.Location,
		Coordinates: coords,
		Date:        r.Date,
		CarNumber:   r.CarNumber,
		CarCode:     r.CarCode,
		Phone:       r.Phone,
		Notes:       r.Notes,
		ServiceMode: r.ServiceMode,
		Electricity: r.Electricity,
		Water:       r.Water,
	}
}
