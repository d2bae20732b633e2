package create_support_request

import (
	"errors"
	"net/http"

	"github.com/mhmdxx5/CarWashBackend/internal/api/handlers"
	"github.com/mhmdxx5/CarWashBackend/internal/api/middleware"
	"github.com/mhmdxx5/CarWashBackend/internal/service/support"
	"github.com/mhmdxx5/CarWashBackend/internal/service/support/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMessage     = "сообщение обязательно и не длиннее 2000 символов"
	msgUnauthorized       = "требуется авторизация"
)

type Handler struct {
	service SupportService
	logger  Logger
}

func NewHandler(service SupportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/support
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	author, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CreateTicketRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /support - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), author, &req)
	if err != nil {
		switch {
		case errors.Is(err, support.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidMessage)

		default:
			h.logger.Error("POST /support - Failed: user_id=%s, error=%v", author.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
