package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	producterrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errServiceUnavailable = errors.New("service unavailable")

// mockProductService is a mock implementation of the ProductService interface
type mockProductService struct {
	product  service.ProductDto
	products []service.ProductDto
	error    error

	input     service.ProductInputDto
	id        int64
	callCount int
}

func (m *mockProductService) FindByID(_ context.Context, id int64) (*service.ProductDto, error) {
	m.callCount++
	m.id = id
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductService) FindAll(_ context.Context) ([]service.ProductDto, error) {
	m.callCount++
	return m.products, m.error
}

func (m *mockProductService) Create(_ context.Context, input service.ProductInputDto) (*service.ProductDto, error) {
	m.callCount++
	m.input = input
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductService) Update(_ context.Context, id int64, input service.ProductInputDto) (*service.ProductDto, error) {
	m.callCount++
	m.id = id
	m.input = input
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductService) DeleteByID(_ context.Context, id int64) error {
	m.callCount++
	m.id = id
	return m.error
}

func newRouter(svc service.ProductService) *chi.Mux {
	r := chi.NewRouter()
	NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(r)
	return r
}

func serve(t *testing.T, svc service.ProductService, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rr, req)
	return rr
}

var widget = service.ProductDto{ID: 1, Name: "Widget", Description: "A widget", Price: 9.99, Quantity: 5}

const widgetJSON = `{"id":1,"name":"Widget","description":"A widget","price":9.99,"quantity":5}`

func Test_Handler_FindAll(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  *mockProductService
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - products found",
			mockService:  &mockProductService{products: []service.ProductDto{widget, {ID: 2, Name: "Gadget"}}},
			expectedCode: http.StatusOK,
			expectedBody: `[` + widgetJSON + `,{"id":2,"name":"Gadget","description":"","price":0,"quantity":0}]`,
		},
		{
			name:         "Success - no products",
			mockService:  &mockProductService{products: []service.ProductDto{}},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "Error - service error",
			mockService:  &mockProductService{error: errServiceUnavailable},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			rr := serve(t, tc.mockService, http.MethodGet, "/products", "")

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedBody == "" {
				assert.Empty(t, rr.Body.String())
				return
			}
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_Handler_FindByID(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  *mockProductService
		productID    string
		expectedCode int
		expectedBody string
		expectCall   bool
	}{
		{
			name:         "Success - product found",
			mockService:  &mockProductService{product: widget},
			productID:    "1",
			expectedCode: http.StatusOK,
			expectedBody: widgetJSON,
			expectCall:   true,
		},
		{
			name:         "Error - product not found",
			mockService:  &mockProductService{error: producterrors.ErrProductNotFound},
			productID:    "999",
			expectedCode: http.StatusNotFound,
			expectCall:   true,
		},
		{
			name:         "Error - wrapped not found",
			mockService:  &mockProductService{error: errors.Join(errors.New("lookup"), producterrors.ErrProductNotFound)},
			productID:    "998",
			expectedCode: http.StatusNotFound,
			expectCall:   true,
		},
		{
			name:         "Error - service error",
			mockService:  &mockProductService{error: errServiceUnavailable},
			productID:    "2",
			expectedCode: http.StatusInternalServerError,
			expectCall:   true,
		},
		{
			name:         "Error - non numeric id",
			mockService:  &mockProductService{},
			productID:    "abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Error - zero id",
			mockService:  &mockProductService{},
			productID:    "0",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(t, tc.mockService, http.MethodGet, "/products/"+tc.productID, "")

			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else {
				assert.Empty(t, rr.Body.String())
			}
			assert.Equal(t, tc.expectCall, tc.mockService.callCount == 1)
		})
	}
}

func Test_Handler_Create(t *testing.T) {
	testCases := []struct {
		name             string
		mockService      *mockProductService
		target           string
		body             string
		expectedCode     int
		expectedBody     string
		expectedLocation string
	}{
		{
			name:             "Success - created",
			mockService:      &mockProductService{product: widget},
			target:           "/products",
			body:             `{"name":"Widget","description":"A widget","price":9.99,"quantity":5}`,
			expectedCode:     http.StatusCreated,
			expectedBody:     widgetJSON,
			expectedLocation: "/products/1",
		},
		{
			name:             "Success - client id ignored",
			mockService:      &mockProductService{product: widget},
			target:           "/products/",
			body:             `{"id":77,"name":"Widget","description":"A widget","price":9.99,"quantity":5}`,
			expectedCode:     http.StatusCreated,
			expectedBody:     widgetJSON,
			expectedLocation: "/products/1",
		},
		{
			name:             "Success - api prefix",
			mockService:      &mockProductService{product: widget},
			target:           "/api/products",
			body:             `{"name":"Widget"}`,
			expectedCode:     http.StatusCreated,
			expectedBody:     widgetJSON,
			expectedLocation: "/api/products/1",
		},
		{
			name:         "Error - malformed body",
			mockService:  &mockProductService{},
			target:       "/products",
			body:         `{"name":`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Error - empty body",
			mockService:  &mockProductService{},
			target:       "/products",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Error - service error",
			mockService:  &mockProductService{error: errServiceUnavailable},
			target:       "/products",
			body:         `{"name":"Widget"}`,
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(t, tc.mockService, http.MethodPost, tc.target, tc.body)

			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.Equal(t, tc.expectedLocation, rr.Header().Get("Location"))
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

func Test_Handler_Create_PassesInput(t *testing.T) {
	mockService := &mockProductService{product: widget}

	serve(t, mockService, http.MethodPost, "/products", `{"id":5,"name":"Widget","description":"A widget","price":9.99,"quantity":5}`)

	assert.Equal(t, service.ProductInputDto{Name: "Widget", Description: "A widget", Price: 9.99, Quantity: 5}, mockService.input)
}

func Test_Handler_Update(t *testing.T) {
	updated := service.ProductDto{ID: 1, Name: "Widget2", Description: "A widget", Price: 12.5, Quantity: 3}
	testCases := []struct {
		name         string
		mockService  *mockProductService
		productID    string
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - updated",
			mockService:  &mockProductService{product: updated},
			productID:    "1",
			body:         `{"name":"Widget2","description":"A widget","price":12.5,"quantity":3}`,
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"name":"Widget2","description":"A widget","price":12.5,"quantity":3}`,
		},
		{
			name:         "Error - product not found",
			mockService:  &mockProductService{error: producterrors.ErrProductNotFound},
			productID:    "999",
			body:         `{"name":"x"}`,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Error - empty object on absent id",
			mockService:  &mockProductService{error: producterrors.ErrProductNotFound},
			productID:    "999",
			body:         `{}`,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Error - empty body is rejected before lookup",
			mockService:  &mockProductService{error: producterrors.ErrProductNotFound},
			productID:    "999",
			body:         ``,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Error - storage failure is not a 404",
			mockService:  &mockProductService{error: errServiceUnavailable},
			productID:    "1",
			body:         `{"name":"x"}`,
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Error - malformed body",
			mockService:  &mockProductService{},
			productID:    "1",
			body:         `not json`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Error - invalid id",
			mockService:  &mockProductService{},
			productID:    "-1",
			body:         `{"name":"x"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(t, tc.mockService, http.MethodPut, "/products/"+tc.productID, tc.body)

			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

func Test_Handler_Update_PathIDIsAuthoritative(t *testing.T) {
	mockService := &mockProductService{product: widget}

	rr := serve(t, mockService, http.MethodPut, "/api/products/42", `{"id":7,"name":"Widget"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.EqualValues(t, 42, mockService.id)
	assert.Equal(t, service.ProductInputDto{Name: "Widget"}, mockService.input)
}

func Test_Handler_DeleteByID(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  *mockProductService
		productID    string
		expectedCode int
	}{
		{name: "Success - deleted", mockService: &mockProductService{}, productID: "1", expectedCode: http.StatusNoContent},
		{name: "Error - service error", mockService: &mockProductService{error: errServiceUnavailable}, productID: "1", expectedCode: http.StatusInternalServerError},
		{name: "Error - invalid id", mockService: &mockProductService{}, productID: "x", expectedCode: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(t, tc.mockService, http.MethodDelete, "/products/"+tc.productID, "")

			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.Empty(t, rr.Body.String())
		})
	}
}

func Test_Handler_HealthCheck(t *testing.T) {
	rr := serve(t, &mockProductService{}, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func Test_Handler_CustomBasePath(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(&mockProductService{products: []service.ProductDto{}}, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(r, "/v2/items")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v2/items", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
