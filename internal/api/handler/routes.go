package handler

import (
	"net/http"

	"github.com/efparfum/perfumaria-api/internal/api/handler/router"
	"github.com/efparfum/perfumaria-api/internal/usecases/authenticating"
	"github.com/efparfum/perfumaria-api/internal/usecases/catalog"
	"github.com/efparfum/perfumaria-api/internal/usecases/crm"
	"github.com/efparfum/perfumaria-api/internal/usecases/reporting"
	"github.com/efparfum/perfumaria-api/internal/usecases/selling"
	appsettings "github.com/efparfum/perfumaria-api/internal/usecases/settings"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Customers(service crm.CustomerManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(service),
		},
		{
			Path:    "/v1/customers",
			Method:  http.MethodPost,
			Handler: CreateCustomer(service),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodPut,
			Handler: UpdateCustomer(service),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCustomer(service),
		},
	}
}

func Products(service catalog.ProductManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			Path:    "/v1/products/low-stock",
			Method:  http.MethodGet,
			Handler: ListLowStock(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
	}
}

func Sales(service selling.Seller) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: Checkout(service),
		},
		{
			Path:    "/v1/receivables",
			Method:  http.MethodGet,
			Handler: ListReceivables(service),
		},
		{
			Path:    "/v1/installments/:id/pay",
			Method:  http.MethodPost,
			Handler: PayInstallment(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/reports/performance",
			Method:  http.MethodGet,
			Handler: GetPerformance(service),
		},
	}
}

func FollowUps(service crm.CustomerManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/followups",
			Method:  http.MethodGet,
			Handler: ListFollowUps(service),
		},
	}
}

func Settings(service appsettings.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings",
			Method:  http.MethodGet,
			Handler: GetSettings(service),
		},
		{
			Path:    "/v1/settings",
			Method:  http.MethodPut,
			Handler: UpdateSettings(service),
		},
	}
}
