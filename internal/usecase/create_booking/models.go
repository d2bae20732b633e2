package create_booking

import "github.com/mhmdxx5/CarWashBackend/internal/domain"

// ServiceItem выбранная услуга
type ServiceItem struct {
	ProductID *int64
	Name      string
	Price     *float64
}

// Request модель запроса на создание бронирования
type Request struct {
	Owner       domain.Identity // проверенный пользователь
	Services    []ServiceItem
	Location    string
	Coordinates *domain.Coordinates
	Date        string // ISO-8601, без смещения трактуется в часовом поясе мойки
	CarNumber   string
	CarCode     string
	Phone       string
	Notes       *string
	ServiceMode string
	Electricity bool
	Water       bool
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
