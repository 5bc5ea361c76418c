// Package crm cuida do cadastro de clientes e da lista de reaproximação:
// clientes sem compra há 28 dias ou mais, com o perfil aromático e as últimas
// compras para orientar o contato.
package crm

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/efparfum/perfumaria-api/infrastructure/repository"
	"github.com/efparfum/perfumaria-api/internal/domain"
	"github.com/efparfum/perfumaria-api/pkg/utils"
)

// FollowUpThresholdDays é a inatividade mínima, em dias inteiros, para o
// cliente entrar na lista de reaproximação.
const FollowUpThresholdDays = 28

var ErrCustomerNotFound = errors.New("cliente não encontrado")

// CustomerManager é a interface do cadastro e acompanhamento de clientes.
type CustomerManager interface {
	List() ([]*domain.Customer, error)
	Create(customer *domain.Customer) (*domain.Customer, error)
	Update(customer *domain.Customer) error
	Delete(customerID string) error
	FollowUps() ([]*domain.FollowUpItem, error)
}

type Service struct {
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	now          func() time.Time
}

func NewService(
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		now:          time.Now,
	}
}

// WithClock troca o relógio do serviço. Usado nos testes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) List() ([]*domain.Customer, error) {
	return s.customerRepo.List()
}

// Create cadastra o cliente com um ID novo e o instante de criação.
func (s *Service) Create(customer *domain.Customer) (*domain.Customer, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	customer.ID = id
	customer.CreatedAt = s.now().Format(time.RFC3339)

	customers, err := s.customerRepo.List()
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.ReplaceAll(append(customers, customer)); err != nil {
		return nil, err
	}

	return customer, nil
}

// Update substitui o registro inteiro pelo ID, preservando o CreatedAt
// original — o campo é imutável depois de definido.
func (s *Service) Update(customer *domain.Customer) error {
	customers, err := s.customerRepo.List()
	if err != nil {
		return err
	}

	found := false
	for i, existing := range customers {
		if existing.ID == customer.ID {
			customer.CreatedAt = existing.CreatedAt
			customers[i] = customer
			found = true
			break
		}
	}

	if !found {
		return ErrCustomerNotFound
	}

	return s.customerRepo.ReplaceAll(customers)
}

// Delete remove o cliente do cadastro. ID inexistente é no-op. As vendas
// históricas do cliente permanecem intactas: elas carregam o nome copiado.
func (s *Service) Delete(customerID string) error {
	customers, err := s.customerRepo.List()
	if err != nil {
		return err
	}

	remaining := make([]*domain.Customer, 0, len(customers))
	for _, customer := range customers {
		if customer.ID != customerID {
			remaining = append(remaining, customer)
		}
	}

	if len(remaining) == len(customers) {
		return nil
	}

	return s.customerRepo.ReplaceAll(remaining)
}

// FollowUps lista os clientes para reaproximação, do mais tempo sem comprar
// para o menos.
func (s *Service) FollowUps() ([]*domain.FollowUpItem, error) {
	customers, err := s.customerRepo.List()
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.List()
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List()
	if err != nil {
		return nil, err
	}

	items := FollowUpCandidates(customers, sales, products, s.now())
	return items, nil
}

// FollowUpCandidates é a agregação pura da lista de reaproximação. Para cada
// cliente com pelo menos uma venda e 28+ dias (arredondando para cima) desde
// a mais recente: as duas categorias mais compradas (contagem por linha de
// item, empate decidido pela primeira vista) e os três últimos produtos
// distintos, na ordem da venda mais recente para a mais antiga. Itens de
// produtos removidos não contribuem para o perfil.
func FollowUpCandidates(
	customers []*domain.Customer,
	sales []*domain.Sale,
	products []*domain.Product,
	now time.Time,
) []*domain.FollowUpItem {
	byID := make(map[string]*domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	items := make([]*domain.FollowUpItem, 0)

	for _, customer := range customers {
		customerSales := make([]*domain.Sale, 0)
		for _, sale := range sales {
			if sale.CustomerID == customer.ID {
				customerSales = append(customerSales, sale)
			}
		}
		if len(customerSales) == 0 {
			continue
		}

		sort.SliceStable(customerSales, func(i, j int) bool {
			return customerSales[i].Date > customerSales[j].Date
		})

		lastSale := customerSales[0]
		lastDate, err := time.Parse(time.RFC3339, lastSale.Date)
		if err != nil {
			continue
		}

		daysSince := int(math.Ceil(math.Abs(now.Sub(lastDate).Hours()) / 24))
		if daysSince < FollowUpThresholdDays {
			continue
		}

		categoryCount := make(map[string]int)
		categoryOrder := make([]string, 0)
		purchased := make([]string, 0)
		seenProduct := make(map[string]bool)

		for _, sale := range customerSales {
			for _, item := range sale.Items {
				product, ok := byID[item.ProductID]
				if !ok {
					continue
				}
				if _, seen := categoryCount[product.Category]; !seen {
					categoryOrder = append(categoryOrder, product.Category)
				}
				categoryCount[product.Category]++
				if !seenProduct[product.Name] {
					seenProduct[product.Name] = true
					purchased = append(purchased, product.Name)
				}
			}
		}

		sort.SliceStable(categoryOrder, func(i, j int) bool {
			return categoryCount[categoryOrder[i]] > categoryCount[categoryOrder[j]]
		})
		profile := categoryOrder
		if len(profile) > 2 {
			profile = profile[:2]
		}

		lastProducts := purchased
		if len(lastProducts) > 3 {
			lastProducts = lastProducts[:3]
		}

		items = append(items, &domain.FollowUpItem{
			Customer:        customer,
			LastSaleDate:    lastSale.Date,
			DaysSince:       daysSince,
			AromaticProfile: profile,
			LastProducts:    lastProducts,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysSince > items[j].DaysSince
	})

	return items
}
