package models

import (
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CancelRequest запрос пользователя на отмену
type CancelRequest struct {
	BookingID int64 `json:"bookingId"`
}

// ListBookingsRequest фильтр списка бронирований для персонала
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"`
}

// Response модели

// UserResponse владелец бронирования
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ServiceResponse услуга в составе бронирования
type ServiceResponse struct {
	ProductID *int64  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// CoordinatesResponse координаты клиента
type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BookingResponse бронирование
type BookingResponse struct {
	ID             int64                `json:"id"`
	User           UserResponse         `json:"user"`
	Services       []ServiceResponse    `json:"services"`
	HomeExtraPrice float64              `json:"homeExtraPrice"`
	TotalPrice     float64              `json:"totalPrice"`
	ServiceMode    string               `json:"serviceMode"`
	Location       string               `json:"location"`
	Coordinates    *CoordinatesResponse `json:"coordinates,omitempty"`
	Date           string               `json:"date"` // RFC3339 в часовом поясе мойки
	Slot           string               `json:"slot"` // HH:MM
	CarNumber      string               `json:"carNumber"`
	CarCode        string               `json:"carCode,omitempty"`
	Phone          string               `json:"phone"`
	Notes          *string              `json:"notes,omitempty"`
	Electricity    bool                 `json:"electricity"`
	Water          bool                 `json:"water"`
	Status         string               `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в ответ, время переводится в loc
func FromDomainBooking(b *domain.Booking, loc *time.Location) *BookingResponse {
	services := make([]ServiceResponse, len(b.Services))
	for i, s := range b.Services {
		services[i] = ServiceResponse{ProductID: s.ProductID, Name: s.Name, Price: s.Price}
	}

	var coords *CoordinatesResponse
	if b.Coordinates != nil {
		coords = &CoordinatesResponse{Lat: b.Coordinates.Lat, Lng: b.Coordinates.Lng}
	}

	local := b.ScheduledAt.In(loc)

	return &BookingResponse{
		ID:             b.ID,
		User:           UserResponse{ID: b.UserID, Name: b.UserName, Email: b.UserEmail},
		Services:       services,
		HomeExtraPrice: b.HomeExtraPrice,
		TotalPrice:     b.TotalPrice,
		ServiceMode:    string(b.ServiceMode),
		Location:       b.Location,
		Coordinates:    coords,
		Date:           local.Format(time.RFC3339),
		Slot:           local.Format(domain.TimeFormat),
		CarNumber:      b.CarNumber,
		CarCode:        b.CarCode,
		Phone:          b.Phone,
		Notes:          b.Notes,
		Electricity:    b.Electricity,
		Water:          b.Water,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookings конвертирует список бронирований
func FromDomainBookings(bookings []*domain.Booking, loc *time.Location) *BookingListResponse {
	list := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		list[i] = *FromDomainBooking(b, loc)
	}
	return &BookingListResponse{Bookings: list, Total: len(list)}
}
