package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPrefixUpdater struct {
	mock.Mock
}

func (m *MockPrefixUpdater) UpsertPrefixName(ctx context.Context, prefix, name string) error {
	args := m.Called(ctx, prefix, name)
	return args.Error(0)
}

func newRouter(handler http.HandlerFunc) *chi.Mux {
	router := chi.NewRouter()
	router.Put("/prefixes/{prefix}", handler)
	return router
}

func TestUpdatePrefixNameAdmin_Success(t *testing.T) {
	mockStorage := new(MockPrefixUpdater)

	// prefixo normalizado para caixa alta antes de gravar
	mockStorage.On("UpsertPrefixName", mock.Anything, "MO", "Moldes Linha 2").Return(nil)

	router := newRouter(UpdatePrefixNameAdmin(slog.Default(), mockStorage))

	req := httptest.NewRequest(http.MethodPut, "/prefixes/mo", strings.NewReader(`{"name": "Moldes Linha 2"}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}

func TestUpdatePrefixNameAdmin_MissingName(t *testing.T) {
	mockStorage := new(MockPrefixUpdater)

	router := newRouter(UpdatePrefixNameAdmin(slog.Default(), mockStorage))

	req := httptest.NewRequest(http.MethodPut, "/prefixes/MO", strings.NewReader(`{"name": "  "}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "UpsertPrefixName", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePrefixNameAdmin_BadBody(t *testing.T) {
	mockStorage := new(MockPrefixUpdater)

	router := newRouter(UpdatePrefixNameAdmin(slog.Default(), mockStorage))

	req := httptest.NewRequest(http.MethodPut, "/prefixes/MO", strings.NewReader(`{`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdatePrefixNameAdmin_DBError(t *testing.T) {
	mockStorage := new(MockPrefixUpdater)

	mockStorage.On("UpsertPrefixName", mock.Anything, "MO", "Moldes").Return(errors.New("connection timeout"))

	router := newRouter(UpdatePrefixNameAdmin(slog.Default(), mockStorage))

	req := httptest.NewRequest(http.MethodPut, "/prefixes/MO", strings.NewReader(`{"name": "Moldes"}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	mockStorage.AssertExpectations(t)
}
