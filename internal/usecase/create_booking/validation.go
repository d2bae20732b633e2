package create_booking

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/domain"
)

// validateRequest проверяет все поля сразу и возвращает время бронирования в часовом поясе мойки
func validateRequest(req *Request, loc *time.Location) (time.Time, error) {
	verr := &domain.ValidationError{}

	if len(req.Services) == 0 {
		verr.Add("services", "at least one service is required")
	}
	for i, s := range req.Services {
		if strings.TrimSpace(s.Name) == "" {
			verr.Add(fmt.Sprintf("services[%d].name", i), "is required")
		}
		switch {
		case s.Price == nil:
			verr.Add(fmt.Sprintf("services[%d].price", i), "is required")
		case *s.Price < 0 || math.IsNaN(*s.Price) || math.IsInf(*s.Price, 0):
			verr.Add(fmt.Sprintf("services[%d].price", i), "must be a non-negative number")
		}
	}

	if strings.TrimSpace(req.Location) == "" {
		verr.Add("location", "is required")
	}
	if strings.TrimSpace(req.CarNumber) == "" {
		verr.Add("carNumber", "is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		verr.Add("phone", "is required")
	}
	if !domain.ServiceMode(req.ServiceMode).IsValid() {
		verr.Add("serviceMode", "must be one of: home, pickup")
	}
	if c := req.Coordinates; c != nil {
		if c.Lat < -90 || c.Lat > 90 {
			verr.Add("coordinates.lat", "must be between -90 and 90")
		}
		if c.Lng < -180 || c.Lng > 180 {
			verr.Add("coordinates.lng", "must be between -180 and 180")
		}
	}
	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		verr.Add("notes", fmt.Sprintf("must be at most %d characters", domain.MaxNotesLength))
	}

	var scheduledAt time.Time
	if strings.TrimSpace(req.Date) == "" {
		verr.Add("date", "is required")
	} else {
		parsed, err := domain.ParseDateTime(req.Date, loc)
		if err != nil {
			verr.Add("date", "must be an ISO-8601 date-time")
		}
		scheduledAt = parsed
	}

	if err := verr.OrNil(); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return scheduledAt, nil
}
