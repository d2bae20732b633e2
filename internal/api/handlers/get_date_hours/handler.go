package get_date_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mhmdxx5/CarWashBackend/internal/api/handlers"
	"github.com/mhmdxx5/CarWashBackend/internal/service/schedule"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound    = "для этой даты расписание не задано"
)

// NotFoundResponse 404 с пустым списком, чтобы клиент мог сразу показать форму
type NotFoundResponse struct {
	Message string   `json:"message"`
	Hours   []string `json:"hours"`
}

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

// Handle GET /api/working-hours/date/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.service.GetDateOverride(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, schedule.ErrOverrideNotFound):
			handlers.RespondJSON(w, http.StatusNotFound, NotFoundResponse{Message: msgNotFound, Hours: []string{}})

		default:
			h.logger.Error("GET /working-hours/date/{date} - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
