package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mhmdxx5/CarWashBackend/internal/api/handlers"
	"github.com/mhmdxx5/CarWashBackend/internal/service/schedule"
	"github.com/mhmdxx5/CarWashBackend/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDay         = "некорректный день недели, ожидается Sunday..Saturday"
	msgInvalidHours       = "hours должен быть списком времени в формате HH:MM"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/working-hours/{day}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	day := mux.Vars(r)["day"]

	var req models.SetHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /working-hours/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetWeekly(r.Context(), day, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDay):
			handlers.RespondBadRequest(w, msgInvalidDay)

		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondValidationError(w, msgInvalidHours, err)

		default:
			h.logger.Error("PUT /working-hours/{day} - Failed: day=%s, error=%v", day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
