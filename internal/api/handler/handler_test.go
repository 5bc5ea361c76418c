package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efparfum/perfumaria-api/infrastructure/database/localdb"
	"github.com/efparfum/perfumaria-api/infrastructure/repository"
	"github.com/efparfum/perfumaria-api/internal/api/handler/router"
	"github.com/efparfum/perfumaria-api/internal/config"
	"github.com/efparfum/perfumaria-api/internal/domain"
	"github.com/efparfum/perfumaria-api/internal/usecases/authenticating"
	"github.com/efparfum/perfumaria-api/internal/usecases/catalog"
	"github.com/efparfum/perfumaria-api/internal/usecases/crm"
	"github.com/efparfum/perfumaria-api/internal/usecases/reporting"
	"github.com/efparfum/perfumaria-api/internal/usecases/selling"
	appsettings "github.com/efparfum/perfumaria-api/internal/usecases/settings"
	"github.com/efparfum/perfumaria-api/pkg/apiErrors"
)

// newTestRouter monta o roteador completo com serviços reais sobre o
// armazenamento em memória, para que os testes exerçam o caminho inteiro da
// requisição.
func newTestRouter(t *testing.T) (http.Handler, localdb.Store) {
	t.Helper()

	store := localdb.NewMemoryStore()

	saleRepo := repository.NewSaleRepository(store)
	installmentRepo := repository.NewInstallmentRepository(store)
	productRepo := repository.NewProductRepository(store)
	customerRepo := repository.NewCustomerRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)

	cfg := &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste", TokenTTL: time.Hour},
	}

	sellingService := selling.NewService(saleRepo, installmentRepo, productRepo, customerRepo)
	reportingService := reporting.NewService(saleRepo, productRepo, installmentRepo)
	customerService := crm.NewService(customerRepo, saleRepo, productRepo)
	catalogService := catalog.NewService(productRepo)
	settingsService := appsettings.NewService(settingsRepo, 1024*1024)
	authService := authenticating.NewService(settingsRepo, cfg)

	r := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Authentication(authService)...),
		router.WithRoutes(Customers(customerService)...),
		router.WithRoutes(Products(catalogService)...),
		router.WithRoutes(Sales(sellingService)...),
		router.WithRoutes(Reports(reportingService)...),
		router.WithRoutes(FollowUps(customerService)...),
		router.WithRoutes(Settings(settingsService)...),
	)

	return r, store
}

func seedStore(t *testing.T, store localdb.Store) {
	t.Helper()

	productRepo := repository.NewProductRepository(store)
	require.NoError(t, productRepo.ReplaceAll([]*domain.Product{
		{ID: "p1", Name: "Essência Noturna", Category: "Amadeirado", Price: 150.00, Cost: 60.00, Stock: 10, MinStock: 3},
		{ID: "p2", Name: "Flor de Laranjeira", Category: "Floral", Price: 89.90, Cost: 35.00, Stock: 2, MinStock: 5},
	}))

	customerRepo := repository.NewCustomerRepository(store)
	require.NoError(t, customerRepo.ReplaceAll([]*domain.Customer{
		{ID: "c1", Name: "Maria Silva", CreatedAt: "2024-01-10T09:00:00.000Z"},
	}))
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func TestHealthcheck(t *testing.T) {
	handler, _ := newTestRouter(t)

	rec := doRequest(t, handler, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestLogin(t *testing.T) {
	t.Run("senha padrão autentica e emite token", func(t *testing.T) {
		handler, _ := newTestRouter(t)

		rec := doRequest(t, handler, http.MethodPost, "/v1/login", `{"password":"1234"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("senha incorreta retorna 401", func(t *testing.T) {
		handler, _ := newTestRouter(t)

		rec := doRequest(t, handler, http.MethodPost, "/v1/login", `{"password":"errada"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, rec).Code)
	})

	t.Run("senha ausente retorna 400", func(t *testing.T) {
		handler, _ := newTestRouter(t)

		rec := doRequest(t, handler, http.MethodPost, "/v1/login", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("corpo inválido retorna 400", func(t *testing.T) {
		handler, _ := newTestRouter(t)

		rec := doRequest(t, handler, http.MethodPost, "/v1/login", `{"password":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})
}

func TestCheckoutEndpoint(t *testing.T) {
	t.Run("venda válida retorna 201 com a venda registrada", func(t *testing.T) {
		handler, store := newTestRouter(t)
		seedStore(t, store)

		body := `{"customerId":"c1","items":[{"productId":"p1","quantity":2,"unitPrice":150.00}],"paymentMethod":"PIX"}`
		rec := doRequest(t, handler, http.MethodPost, "/v1/sales", body)

		require.Equal(t, http.StatusCreated, rec.Code)

		var sale domain.Sale
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&sale))
		assert.NotEmpty(t, sale.ID)
		assert.Equal(t, "Maria Silva", sale.CustomerName)
		assert.InDelta(t, 300.00, sale.Total, 0.001)

		// A baixa de estoque precisa estar visível na próxima leitura
		products, err := repository.NewProductRepository(store).List()
		require.NoError(t, err)
		for _, p := range products {
			if p.ID == "p1" {
				assert.Equal(t, 8, p.Stock)
			}
		}
	})

	t.Run("carrinho vazio retorna 400", func(t *testing.T) {
		handler, store := newTestRouter(t)
		seedStore(t, store)

		body := `{"customerId":"c1","items":[],"paymentMethod":"PIX"}`
		rec := doRequest(t, handler, http.MethodPost, "/v1/sales", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrEmptyCart, decodeAPIError(t, rec).Code)
	})

	t.Run("estoque insuficiente retorna 422", func(t *testing.T) {
		handler, store := newTestRouter(t)
		seedStore(t, store)

		body := `{"customerId":"c1","items":[{"productId":"p2","quantity":5,"unitPrice":89.90}],"paymentMethod":"CASH"}`
		rec := doRequest(t, handler, http.MethodPost, "/v1/sales", body)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientStock, decodeAPIError(t, rec).Code)
	})

	t.Run("produto desconhecido retorna 404", func(t *testing.T) {
		handler, store := newTestRouter(t)
		seedStore(t, store)

		body := `{"customerId":"c1","items":[{"productId":"p9","quantity":1,"unitPrice":10.00}],"paymentMethod":"CASH"}`
		rec := doRequest(t, handler, http.MethodPost, "/v1/sales", body)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrNotFound, decodeAPIError(t, rec).Code)
	})
}

func TestPayInstallmentEndpoint(t *testing.T) {
	// ID inexistente é no-op no serviço; a resposta segue 200
	handler, store := newTestRouter(t)
	seedStore(t, store)

	rec := doRequest(t, handler, http.MethodPost, "/v1/installments/nao-existe/pay", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerEndpoints(t *testing.T) {
	t.Run("cadastro sem nome retorna 400", func(t *testing.T) {
		handler, _ := newTestRouter(t)

		rec := doRequest(t, handler, http.MethodPost, "/v1/customers", `{"phone":"11 99999-0000"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("cadastro válido retorna 201 com ID gerado", func(t *testing.T) {
		handler, _ := newTestRouter(t)

		rec := doRequest(t, handler, http.MethodPost, "/v1/customers", `{"name":"Ana Costa"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var customer domain.Customer
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&customer))
		assert.NotEmpty(t, customer.ID)
		assert.NotEmpty(t, customer.CreatedAt)
	})

	t.Run("edição de cliente inexistente retorna 404", func(t *testing.T) {
		handler, _ := newTestRouter(t)

		rec := doRequest(t, handler, http.MethodPut, "/v1/customers/c9", `{"name":"Ana Costa"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("remoção responde 204 mesmo sem cadastro", func(t *testing.T) {
		handler, _ := newTestRouter(t)

		rec := doRequest(t, handler, http.MethodDelete, "/v1/customers/c9", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLowStockEndpoint(t *testing.T) {
	handler, store := newTestRouter(t)
	seedStore(t, store)

	rec := doRequest(t, handler, http.MethodGet, "/v1/products/low-stock", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var products []*domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].ID)
}

func TestDashboardEndpoint(t *testing.T) {
	t.Run("data mal formatada retorna 400", func(t *testing.T) {
		handler, _ := newTestRouter(t)

		rec := doRequest(t, handler, http.MethodGet, "/v1/dashboard?start_date=01-05-2024&end_date=2024-05-31", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})

	t.Run("período ausente retorna 400", func(t *testing.T) {
		handler, _ := newTestRouter(t)

		rec := doRequest(t, handler, http.MethodGet, "/v1/dashboard", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})

	t.Run("período válido responde 200 com o painel", func(t *testing.T) {
		handler, store := newTestRouter(t)
		seedStore(t, store)

		rec := doRequest(t, handler, http.MethodGet, "/v1/dashboard?start_date=2024-05-01&end_date=2024-05-31", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var stats domain.DashboardStats
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
		assert.Equal(t, 0, stats.TotalSales)
		assert.Equal(t, 1, stats.LowStockItems)
	})
}

func TestSettingsEndpoints(t *testing.T) {
	t.Run("consulta nunca expõe a senha", func(t *testing.T) {
		handler, store := newTestRouter(t)

		settingsRepo := repository.NewSettingsRepository(store)
		require.NoError(t, settingsRepo.Save(&domain.AppSettings{
			SystemName: "Perfumaria da Ana",
			Password:   "minha-senha",
		}))

		rec := doRequest(t, handler, http.MethodGet, "/v1/settings", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var settings domain.AppSettings
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&settings))
		assert.Equal(t, "Perfumaria da Ana", settings.SystemName)
		assert.Empty(t, settings.Password)
	})

	t.Run("atualização sem nome do sistema retorna 400", func(t *testing.T) {
		handler, _ := newTestRouter(t)

		rec := doRequest(t, handler, http.MethodPut, "/v1/settings", `{"logoUrl":"https://example.com/logo.png"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("atualização válida responde 200", func(t *testing.T) {
		handler, _ := newTestRouter(t)

		rec := doRequest(t, handler, http.MethodPut, "/v1/settings", `{"systemName":"Perfumaria da Ana"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
