package repository

import (
	_ "embed"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/efparfum/perfumaria-api/infrastructure/database/localdb"
	"github.com/efparfum/perfumaria-api/internal/domain"
	"github.com/efparfum/perfumaria-api/pkg/log"
)

//go:embed seed_fixture.yaml
var seedFixture []byte

type seedProduct struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Brand    string  `yaml:"brand"`
	Category string  `yaml:"category"`
	ML       int     `yaml:"ml"`
	Price    float64 `yaml:"price"`
	Cost     float64 `yaml:"cost"`
	Stock    int     `yaml:"stock"`
	MinStock int     `yaml:"min_stock"`
}

type seedCustomer struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Email          string `yaml:"email"`
	Phone          string `yaml:"phone"`
	CPF            string `yaml:"cpf"`
	Address        string `yaml:"address"`
	CreatedDaysAgo int    `yaml:"created_days_ago"`
}

type seedSaleItem struct {
	ProductID   string  `yaml:"product_id"`
	ProductName string  `yaml:"product_name"`
	Quantity    int     `yaml:"quantity"`
	UnitPrice   float64 `yaml:"unit_price"`
	Total       float64 `yaml:"total"`
}

type seedSale struct {
	ID                string         `yaml:"id"`
	CustomerID        string         `yaml:"customer_id"`
	CustomerName      string         `yaml:"customer_name"`
	DaysAgo           int            `yaml:"days_ago"`
	PaymentMethod     string         `yaml:"payment_method"`
	InstallmentsCount int            `yaml:"installments_count"`
	Total             float64        `yaml:"total"`
	Items             []seedSaleItem `yaml:"items"`
}

type seedInstallment struct {
	ID          string  `yaml:"id"`
	SaleID      string  `yaml:"sale_id"`
	Number      int     `yaml:"number"`
	Amount      float64 `yaml:"amount"`
	DueDaysAgo  int     `yaml:"due_days_ago"`
	Status      string  `yaml:"status"`
	PaidDaysAgo int     `yaml:"paid_days_ago"`
}

type seedData struct {
	Products     []seedProduct     `yaml:"products"`
	Customers    []seedCustomer    `yaml:"customers"`
	Sales        []seedSale        `yaml:"sales"`
	Installments []seedInstallment `yaml:"installments"`
}

// Seeder aplica a carga de demonstração uma única vez, controlada pela flag
// "initialized" no armazenamento.
type Seeder struct {
	store            localdb.Store
	customerRepo     CustomerRepository
	productRepo      ProductRepository
	saleRepo         SaleRepository
	installmentRepo  InstallmentRepository
	includeSalesData bool
}

func NewSeeder(
	store localdb.Store,
	customerRepo CustomerRepository,
	productRepo ProductRepository,
	saleRepo SaleRepository,
	installmentRepo InstallmentRepository,
	includeSalesData bool,
) *Seeder {
	return &Seeder{
		store:            store,
		customerRepo:     customerRepo,
		productRepo:      productRepo,
		saleRepo:         saleRepo,
		installmentRepo:  installmentRepo,
		includeSalesData: includeSalesData,
	}
}

// Run popula o catálogo e os clientes de demonstração na primeira execução.
// Execuções seguintes são no-op.
func (s *Seeder) Run() error {
	if _, err := s.store.Get(initializedKey); err == nil {
		return nil
	} else if !errors.Is(err, localdb.ErrKeyNotFound) {
		return errors.Wrap(err, "erro ao verificar a flag de inicialização")
	}

	var data seedData
	if err := yaml.Unmarshal(seedFixture, &data); err != nil {
		return errors.Wrap(err, "erro ao ler a carga de demonstração")
	}

	now := time.Now()
	daysAgo := func(days int) string {
		return now.AddDate(0, 0, -days).Format(time.RFC3339)
	}

	products := make([]*domain.Product, 0, len(data.Products))
	for _, p := range data.Products {
		products = append(products, &domain.Product{
			ID:       p.ID,
			Name:     p.Name,
			Brand:    p.Brand,
			Category: p.Category,
			ML:       p.ML,
			Price:    p.Price,
			Cost:     p.Cost,
			Stock:    p.Stock,
			MinStock: p.MinStock,
		})
	}

	customers := make([]*domain.Customer, 0, len(data.Customers))
	for _, c := range data.Customers {
		customers = append(customers, &domain.Customer{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			CPF:       c.CPF,
			Address:   c.Address,
			CreatedAt: daysAgo(c.CreatedDaysAgo),
		})
	}

	if err := s.productRepo.ReplaceAll(products); err != nil {
		return err
	}
	if err := s.customerRepo.ReplaceAll(customers); err != nil {
		return err
	}

	if s.includeSalesData {
		sales := make([]*domain.Sale, 0, len(data.Sales))
		for _, sl := range data.Sales {
			items := make([]domain.SaleItem, 0, len(sl.Items))
			for _, it := range sl.Items {
				items = append(items, domain.SaleItem{
					ProductID:   it.ProductID,
					ProductName: it.ProductName,
					Quantity:    it.Quantity,
					UnitPrice:   it.UnitPrice,
					Total:       it.Total,
				})
			}
			sales = append(sales, &domain.Sale{
				ID:                sl.ID,
				CustomerID:        sl.CustomerID,
				CustomerName:      sl.CustomerName,
				Items:             items,
				Total:             sl.Total,
				PaymentMethod:     domain.PaymentMethod(sl.PaymentMethod),
				InstallmentsCount: sl.InstallmentsCount,
				Date:              daysAgo(sl.DaysAgo),
			})
		}

		installments := make([]*domain.Installment, 0, len(data.Installments))
		for _, in := range data.Installments {
			installment := &domain.Installment{
				ID:      in.ID,
				SaleID:  in.SaleID,
				Number:  in.Number,
				Amount:  in.Amount,
				DueDate: daysAgo(in.DueDaysAgo),
				Status:  domain.PaymentStatus(in.Status),
			}
			if installment.Status == domain.StatusPaid {
				installment.PaidAt = daysAgo(in.PaidDaysAgo)
			}
			installments = append(installments, installment)
		}

		if err := s.saleRepo.ReplaceAll(sales); err != nil {
			return err
		}
		if err := s.installmentRepo.ReplaceAll(installments); err != nil {
			return err
		}
	}

	if err := s.store.Put(initializedKey, []byte("true")); err != nil {
		return errors.Wrap(err, "erro ao gravar a flag de inicialização")
	}

	log.L.WithFields(log.Fields{
		"products":  len(products),
		"customers": len(customers),
	}).Info("Carga de demonstração aplicada")

	return nil
}
