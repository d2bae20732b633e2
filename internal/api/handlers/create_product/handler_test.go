package create_product

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmdxx5/CarWashBackend/internal/api/handlers"
	"github.com/mhmdxx5/CarWashBackend/internal/infra/storage/memory"
	"github.com/mhmdxx5/CarWashBackend/internal/service/products"
	"github.com/mhmdxx5/CarWashBackend/pkg/logger"
)

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	h := NewHandler(products.NewService(memory.NewStore().Products(), logger.Nop()), logger.Nop())

	rec := post(h, `{"name":"Полировка","price":150,"durationMinutes":90,"type":"polish"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"name":"Полировка"`)
	assert.Contains(t, rec.Body.String(), `"id":1`)
}

func TestHandler_ValidationErrors(t *testing.T) {
	h := NewHandler(products.NewService(memory.NewStore().Products(), logger.Nop()), logger.Nop())

	rec := post(h, `{"name":"","price":-1,"durationMinutes":10,"type":"unknown"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	fields := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"name", "price", "type"}, fields)

	assert.Equal(t, http.StatusBadRequest, post(h, `{`).Code)
}
