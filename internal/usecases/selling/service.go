// Package selling implementa a camada de transação de vendas: fechamento do
// carrinho, registro da venda com baixa de estoque e baixa de parcelas.
package selling

import (
	"sort"
	"sync"
	"time"

	"github.com/efparfum/perfumaria-api/infrastructure/repository"
	"github.com/efparfum/perfumaria-api/internal/domain"
	"github.com/efparfum/perfumaria-api/pkg/log"
	"github.com/efparfum/perfumaria-api/pkg/utils"
)

// CheckoutInput é o pedido de fechamento de venda vindo do ponto de venda.
type CheckoutInput struct {
	CustomerID        string               `json:"customerId"`
	Items             []CartItem           `json:"items"`
	PaymentMethod     domain.PaymentMethod `json:"paymentMethod"`
	InstallmentsCount int                  `json:"installmentsCount"`
}

// Seller é a interface da camada de transação de vendas.
type Seller interface {
	Checkout(input CheckoutInput) (*domain.Sale, error)
	RecordSale(sale *domain.Sale, installments []*domain.Installment) error
	PayInstallment(installmentID string) error
	ListSales() ([]*domain.Sale, error)
	ListReceivables() ([]*domain.Receivable, error)
}

// Service serializa todas as mutações de venda com um mutex: o modelo de
// execução é de escritor único, e isso o torna explícito mesmo com o servidor
// HTTP atendendo requisições concorrentes. Não há atomicidade entre as
// coleções: as escritas de RecordSale são sequenciais e podem aplicar
// parcialmente se o processo morrer no meio — risco aceito do contrato
// original.
type Service struct {
	mu              sync.Mutex
	saleRepo        repository.SaleRepository
	installmentRepo repository.InstallmentRepository
	productRepo     repository.ProductRepository
	customerRepo    repository.CustomerRepository
	now             func() time.Time
	newID           func() (string, error)
}

func NewService(
	saleRepo repository.SaleRepository,
	installmentRepo repository.InstallmentRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *Service {
	return &Service{
		saleRepo:        saleRepo,
		installmentRepo: installmentRepo,
		productRepo:     productRepo,
		customerRepo:    customerRepo,
		now:             time.Now,
		newID:           utils.GenerateID,
	}
}

// WithClock troca o relógio do serviço. Usado nos testes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Checkout valida o carrinho, monta a venda com os retratos de cliente e
// produto e registra tudo. A checagem de estoque é prévia: não há revalidação
// atômica no commit.
func (s *Service) Checkout(input CheckoutInput) (*domain.Sale, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if input.CustomerID == "" {
		return nil, ErrCustomerRequired
	}

	customers, err := s.customerRepo.List()
	if err != nil {
		return nil, err
	}

	var customer *domain.Customer
	for _, c := range customers {
		if c.ID == input.CustomerID {
			customer = c
			break
		}
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	products, err := s.productRepo.List()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]domain.SaleItem, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		product, ok := byID[line.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		if line.Quantity > product.Stock {
			return nil, ErrInsufficientStock
		}

		unitPrice := line.UnitPrice
		if unitPrice == 0 {
			unitPrice = product.Price
		}

		items = append(items, domain.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			Total:       float64(line.Quantity) * unitPrice,
		})
	}

	var total float64
	for _, item := range items {
		total += item.Total
	}

	saleID, err := s.newID()
	if err != nil {
		return nil, err
	}

	installmentsCount := input.InstallmentsCount
	if installmentsCount < 1 {
		installmentsCount = 1
	}

	saleDate := s.now()
	sale := &domain.Sale{
		ID:                saleID,
		CustomerID:        customer.ID,
		CustomerName:      customer.Name,
		Items:             items,
		Total:             total,
		PaymentMethod:     input.PaymentMethod,
		InstallmentsCount: installmentsCount,
		Date:              saleDate.Format(time.RFC3339),
	}

	var installments []*domain.Installment
	if input.PaymentMethod == domain.PaymentInstallments {
		installments, err = SplitInstallments(saleID, total, installmentsCount, saleDate, s.newID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.RecordSale(sale, installments); err != nil {
		return nil, err
	}

	return sale, nil
}

// RecordSale acrescenta a venda e as parcelas às coleções e dá baixa no
// estoque dos produtos vendidos. As três escritas aplicam em sequência;
// qualquer erro sobe para o chamador sem desfazer as anteriores.
func (s *Service) RecordSale(sale *domain.Sale, installments []*domain.Installment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sales, err := s.saleRepo.List()
	if err != nil {
		return err
	}

	existing, err := s.installmentRepo.List()
	if err != nil {
		return err
	}

	products, err := s.productRepo.List()
	if err != nil {
		return err
	}

	soldByProduct := make(map[string]int)
	for _, item := range sale.Items {
		soldByProduct[item.ProductID] += item.Quantity
	}

	for _, product := range products {
		if quantity, ok := soldByProduct[product.ID]; ok {
			product.Stock -= quantity
		}
	}

	if err := s.saleRepo.ReplaceAll(append(sales, sale)); err != nil {
		return err
	}
	if err := s.installmentRepo.ReplaceAll(append(existing, installments...)); err != nil {
		return err
	}
	if err := s.productRepo.ReplaceAll(products); err != nil {
		return err
	}

	log.L.WithFields(log.Fields{
		"sale_id":      sale.ID,
		"total":        sale.Total,
		"installments": len(installments),
	}).Info("Venda registrada")

	return nil
}

// PayInstallment marca a parcela como paga e grava o instante da baixa.
// Parcela inexistente é no-op, apenas registrado em log. A transição é
// irreversível e não confere se a venda ou o cliente ainda existem.
func (s *Service) PayInstallment(installmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	installments, err := s.installmentRepo.List()
	if err != nil {
		return err
	}

	found := false
	for _, installment := range installments {
		if installment.ID == installmentID {
			installment.Status = domain.StatusPaid
			installment.PaidAt = s.now().Format(time.RFC3339)
			found = true
			break
		}
	}

	if !found {
		log.L.WithField("installment_id", installmentID).Warn("Baixa ignorada: parcela não encontrada")
		return nil
	}

	return s.installmentRepo.ReplaceAll(installments)
}

// ListSales retorna o histórico de vendas, da mais recente para a mais
// antiga.
func (s *Service) ListSales() ([]*domain.Sale, error) {
	sales, err := s.saleRepo.List()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date > sales[j].Date
	})

	return sales, nil
}

// ListReceivables monta a visão de contas a receber: cada parcela com o
// cliente da venda e o estado derivado (vencida e não paga vira OVERDUE,
// sem persistir a transição).
func (s *Service) ListReceivables() ([]*domain.Receivable, error) {
	installments, err := s.installmentRepo.List()
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.List()
	if err != nil {
		return nil, err
	}

	salesByID := make(map[string]*domain.Sale, len(sales))
	for _, sale := range sales {
		salesByID[sale.ID] = sale
	}

	now := s.now()
	receivables := make([]*domain.Receivable, 0, len(installments))
	for _, installment := range installments {
		receivable := &domain.Receivable{
			Installment: *installment,
			Derived:     installment.DisplayStatus(now),
		}
		if sale, ok := salesByID[installment.SaleID]; ok {
			receivable.CustomerName = sale.CustomerName
			receivable.SaleTotal = sale.Total
		}
		receivables = append(receivables, receivable)
	}

	sort.SliceStable(receivables, func(i, j int) bool {
		return receivables[i].DueDate < receivables[j].DueDate
	})

	return receivables, nil
}
