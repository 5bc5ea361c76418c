package selling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/efparfum/perfumaria-api/infrastructure/database/localdb"
	"github.com/efparfum/perfumaria-api/infrastructure/repository"
	"github.com/efparfum/perfumaria-api/infrastructure/repository/mocks"
	"github.com/efparfum/perfumaria-api/internal/domain"
)

func newTestService(t *testing.T) (*Service, localdb.Store) {
	t.Helper()

	store := localdb.NewMemoryStore()
	service := NewService(
		repository.NewSaleRepository(store),
		repository.NewInstallmentRepository(store),
		repository.NewProductRepository(store),
		repository.NewCustomerRepository(store),
	)
	return service, store
}

func seedCatalog(t *testing.T, store localdb.Store) {
	t.Helper()

	productRepo := repository.NewProductRepository(store)
	require.NoError(t, productRepo.ReplaceAll([]*domain.Product{
		{ID: "p1", Name: "Essência Noturna", Category: "Amadeirado", Price: 150.00, Cost: 60.00, Stock: 10, MinStock: 3},
		{ID: "p2", Name: "Flor de Laranjeira", Category: "Floral", Price: 89.90, Cost: 35.00, Stock: 2, MinStock: 5},
	}))

	customerRepo := repository.NewCustomerRepository(store)
	require.NoError(t, customerRepo.ReplaceAll([]*domain.Customer{
		{ID: "c1", Name: "Maria Silva"},
	}))
}

func TestService_Checkout_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    CheckoutInput
		expected error
	}{
		{
			name:     "Carrinho vazio é rejeitado",
			input:    CheckoutInput{CustomerID: "c1"},
			expected: ErrEmptyCart,
		},
		{
			name: "Venda sem cliente é rejeitada",
			input: CheckoutInput{
				Items: []CartItem{{ProductID: "p1", Quantity: 1}},
			},
			expected: ErrCustomerRequired,
		},
		{
			name: "Cliente inexistente é rejeitado",
			input: CheckoutInput{
				CustomerID: "c999",
				Items:      []CartItem{{ProductID: "p1", Quantity: 1}},
			},
			expected: ErrCustomerNotFound,
		},
		{
			name: "Produto inexistente é rejeitado",
			input: CheckoutInput{
				CustomerID: "c1",
				Items:      []CartItem{{ProductID: "p999", Quantity: 1}},
			},
			expected: ErrProductNotFound,
		},
		{
			name: "Quantidade acima do estoque é rejeitada",
			input: CheckoutInput{
				CustomerID: "c1",
				Items:      []CartItem{{ProductID: "p2", Quantity: 3}},
			},
			expected: ErrInsufficientStock,
		},
		{
			name: "Quantidade zero é rejeitada",
			input: CheckoutInput{
				CustomerID: "c1",
				Items:      []CartItem{{ProductID: "p1", Quantity: 0}},
			},
			expected: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newTestService(t)
			seedCatalog(t, store)

			sale, err := service.Checkout(tt.input)
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, sale)

			// Nenhuma coleção foi tocada
			sales, err := repository.NewSaleRepository(store).List()
			require.NoError(t, err)
			assert.Empty(t, sales)
		})
	}
}

func TestService_Checkout_RecordsSaleAndDecrementsStock(t *testing.T) {
	service, store := newTestService(t)
	seedCatalog(t, store)

	saleDate := time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)
	service.WithClock(func() time.Time { return saleDate })

	sale, err := service.Checkout(CheckoutInput{
		CustomerID: "c1",
		Items: []CartItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: 150.00},
			{ProductID: "p2", Quantity: 1, UnitPrice: 89.90},
		},
		PaymentMethod: domain.PaymentPix,
	})
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.Equal(t, "Maria Silva", sale.CustomerName)
	assert.InDelta(t, 389.90, sale.Total, 0.001)
	assert.Equal(t, saleDate.Format(time.RFC3339), sale.Date)
	assert.Equal(t, 1, sale.InstallmentsCount)

	// Estoque baixado
	products, err := repository.NewProductRepository(store).List()
	require.NoError(t, err)
	stockByID := make(map[string]int)
	for _, product := range products {
		stockByID[product.ID] = product.Stock
	}
	assert.Equal(t, 8, stockByID["p1"])
	assert.Equal(t, 1, stockByID["p2"])

	// Venda persistida, nenhuma parcela para pagamento à vista
	sales, err := repository.NewSaleRepository(store).List()
	require.NoError(t, err)
	assert.Len(t, sales, 1)

	installments, err := repository.NewInstallmentRepository(store).List()
	require.NoError(t, err)
	assert.Empty(t, installments)
}

func TestService_Checkout_UnitPriceFallsBackToCatalog(t *testing.T) {
	service, store := newTestService(t)
	seedCatalog(t, store)

	sale, err := service.Checkout(CheckoutInput{
		CustomerID:    "c1",
		Items:         []CartItem{{ProductID: "p1", Quantity: 1}},
		PaymentMethod: domain.PaymentCash,
	})
	require.NoError(t, err)

	assert.InDelta(t, 150.00, sale.Items[0].UnitPrice, 0.001)
	assert.InDelta(t, 150.00, sale.Total, 0.001)
}

func TestService_Checkout_InstallmentsSumMatchesTotal(t *testing.T) {
	service, store := newTestService(t)
	seedCatalog(t, store)

	saleDate := time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)
	service.WithClock(func() time.Time { return saleDate })

	// 3 × 150.00 = 450.00 parcelado em 3
	sale, err := service.Checkout(CheckoutInput{
		CustomerID:        "c1",
		Items:             []CartItem{{ProductID: "p1", Quantity: 3, UnitPrice: 150.00}},
		PaymentMethod:     domain.PaymentInstallments,
		InstallmentsCount: 3,
	})
	require.NoError(t, err)

	installments, err := repository.NewInstallmentRepository(store).List()
	require.NoError(t, err)
	require.Len(t, installments, 3)

	var sum float64
	for i, installment := range installments {
		assert.Equal(t, sale.ID, installment.SaleID)
		assert.Equal(t, i+1, installment.Number)
		assert.InDelta(t, 150.00, installment.Amount, 0.001)
		assert.Equal(t, domain.StatusPending, installment.Status)
		sum += installment.Amount
	}
	assert.InDelta(t, sale.Total, sum, 0.001)
}

func TestService_PayInstallment(t *testing.T) {
	service, store := newTestService(t)

	installmentRepo := repository.NewInstallmentRepository(store)
	require.NoError(t, installmentRepo.ReplaceAll([]*domain.Installment{
		{ID: "i1", SaleID: "s1", Number: 1, Amount: 100, Status: domain.StatusPending},
		{ID: "i2", SaleID: "s1", Number: 2, Amount: 100, Status: domain.StatusPending},
	}))

	paidAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	service.WithClock(func() time.Time { return paidAt })

	require.NoError(t, service.PayInstallment("i1"))

	installments, err := installmentRepo.List()
	require.NoError(t, err)

	byID := make(map[string]*domain.Installment)
	for _, installment := range installments {
		byID[installment.ID] = installment
	}
	assert.Equal(t, domain.StatusPaid, byID["i1"].Status)
	assert.Equal(t, paidAt.Format(time.RFC3339), byID["i1"].PaidAt)
	assert.Equal(t, domain.StatusPending, byID["i2"].Status)
	assert.Empty(t, byID["i2"].PaidAt)
}

func TestService_PayInstallment_MissingIsNoOp(t *testing.T) {
	service, store := newTestService(t)

	installmentRepo := repository.NewInstallmentRepository(store)
	require.NoError(t, installmentRepo.ReplaceAll([]*domain.Installment{
		{ID: "i1", SaleID: "s1", Number: 1, Amount: 100, Status: domain.StatusPending},
	}))

	// Parcela inexistente: sem erro e sem escrita
	require.NoError(t, service.PayInstallment("i999"))

	installments, err := installmentRepo.List()
	require.NoError(t, err)
	require.Len(t, installments, 1)
	assert.Equal(t, domain.StatusPending, installments[0].Status)
}

func TestService_ListSales_MostRecentFirst(t *testing.T) {
	service, store := newTestService(t)

	saleRepo := repository.NewSaleRepository(store)
	require.NoError(t, saleRepo.ReplaceAll([]*domain.Sale{
		{ID: "s1", Date: "2024-05-01T10:00:00Z"},
		{ID: "s2", Date: "2024-05-03T10:00:00Z"},
		{ID: "s3", Date: "2024-05-02T10:00:00Z"},
	}))

	sales, err := service.ListSales()
	require.NoError(t, err)
	require.Len(t, sales, 3)
	assert.Equal(t, "s2", sales[0].ID)
	assert.Equal(t, "s3", sales[1].ID)
	assert.Equal(t, "s1", sales[2].ID)
}

func TestService_ListReceivables_DerivesOverdueAndJoinsSale(t *testing.T) {
	service, store := newTestService(t)

	require.NoError(t, repository.NewSaleRepository(store).ReplaceAll([]*domain.Sale{
		{ID: "s1", CustomerName: "Maria Silva", Total: 300},
	}))
	require.NoError(t, repository.NewInstallmentRepository(store).ReplaceAll([]*domain.Installment{
		{ID: "i1", SaleID: "s1", Number: 1, Amount: 100, DueDate: "2024-04-01T00:00:00Z", Status: domain.StatusPending},
		{ID: "i2", SaleID: "s1", Number: 2, Amount: 100, DueDate: "2024-07-01T00:00:00Z", Status: domain.StatusPending},
		{ID: "i3", SaleID: "s1", Number: 3, Amount: 100, DueDate: "2024-03-01T00:00:00Z", Status: domain.StatusPaid},
	}))

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	service.WithClock(func() time.Time { return now })

	receivables, err := service.ListReceivables()
	require.NoError(t, err)
	require.Len(t, receivables, 3)

	// Ordenadas por vencimento crescente
	assert.Equal(t, "i3", receivables[0].ID)
	assert.Equal(t, "i1", receivables[1].ID)
	assert.Equal(t, "i2", receivables[2].ID)

	byID := make(map[string]*domain.Receivable)
	for _, receivable := range receivables {
		byID[receivable.ID] = receivable
		assert.Equal(t, "Maria Silva", receivable.CustomerName)
		assert.InDelta(t, 300.0, receivable.SaleTotal, 0.001)
	}

	// Vencida e não paga vira OVERDUE; o status gravado não muda
	assert.Equal(t, domain.StatusOverdue, byID["i1"].Derived)
	assert.Equal(t, domain.StatusPending, byID["i1"].Status)
	assert.Equal(t, domain.StatusPending, byID["i2"].Derived)
	assert.Equal(t, domain.StatusPaid, byID["i3"].Derived)
}

func TestService_RecordSale_PropagatesRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockInstallmentRepo := mocks.NewMockInstallmentRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)

	mockSaleRepo.EXPECT().List().Return(nil, assert.AnError)

	service := NewService(mockSaleRepo, mockInstallmentRepo, mockProductRepo, mockCustomerRepo)

	err := service.RecordSale(&domain.Sale{ID: "s1"}, nil)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestService_RecordSale_WriteErrorStopsSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockInstallmentRepo := mocks.NewMockInstallmentRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)

	mockSaleRepo.EXPECT().List().Return([]*domain.Sale{}, nil)
	mockInstallmentRepo.EXPECT().List().Return([]*domain.Installment{}, nil)
	mockProductRepo.EXPECT().List().Return([]*domain.Product{}, nil)

	// A primeira escrita falha: as demais não acontecem
	mockSaleRepo.EXPECT().ReplaceAll(gomock.Any()).Return(assert.AnError)

	service := NewService(mockSaleRepo, mockInstallmentRepo, mockProductRepo, mockCustomerRepo)

	err := service.RecordSale(&domain.Sale{ID: "s1"}, nil)
	assert.ErrorIs(t, err, assert.AnError)
}
