package create_booking

import (
	"math"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
)

// calculatePrice возвращает надбавку за выезд и итоговую цену
func calculatePrice(services []domain.BookedService, mode domain.ServiceMode) (extra, total float64) {
	base := 0.0
	for _, s := range services {
		base += s.Price
	}
	if mode == domain.ServiceModeHome {
		extra = domain.HomeServiceSurcharge
	}
	return extra, roundMoney(base + extra)
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
