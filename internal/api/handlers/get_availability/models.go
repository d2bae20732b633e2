package get_availability

import (
	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	getAvailability "github.com/mhmdxx5/CarWashBackend/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date           string   `json:"date"`
	AvailableHours []string `json:"availableHours"`
	Source         string   `json:"source"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:           resp.Date,
		AvailableHours: domain.HoursToStrings(resp.AvailableHours),
		Source:         string(resp.Source),
	}
}
