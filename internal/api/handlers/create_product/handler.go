package create_product

import (
	"errors"
	"net/http"

	"github.com/mhmdxx5/CarWashBackend/internal/api/handlers"
	"github.com/mhmdxx5/CarWashBackend/internal/service/products"
	"github.com/mhmdxx5/CarWashBackend/internal/service/products/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации"
)

type Handler struct {
	service ProductService
	logger  Logger
}

func NewHandler(service ProductService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/products
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ProductRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /products - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, products.ErrInvalidInput):
			handlers.RespondValidationError(w, msgValidationFailed, err)

		default:
			h.logger.Error("POST /products - Failed to create product: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
