// Package catalog gerencia o catálogo de perfumes: cadastro, edição,
// remoção e o alerta de reposição de estoque.
package catalog

import (
	"errors"

	"github.com/efparfum/perfumaria-api/infrastructure/repository"
	"github.com/efparfum/perfumaria-api/internal/domain"
	"github.com/efparfum/perfumaria-api/internal/usecases/reporting"
	"github.com/efparfum/perfumaria-api/pkg/utils"
)

var ErrProductNotFound = errors.New("produto não encontrado")

// ProductManager é a interface do catálogo.
type ProductManager interface {
	List() ([]*domain.Product, error)
	Create(product *domain.Product) (*domain.Product, error)
	Update(product *domain.Product) error
	Delete(productID string) error
	LowStock() ([]*domain.Product, error)
}

type Service struct {
	productRepo repository.ProductRepository
}

func NewService(productRepo repository.ProductRepository) *Service {
	return &Service{productRepo: productRepo}
}

func (s *Service) List() ([]*domain.Product, error) {
	return s.productRepo.List()
}

func (s *Service) Create(product *domain.Product) (*domain.Product, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	product.ID = id

	products, err := s.productRepo.List()
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.ReplaceAll(append(products, product)); err != nil {
		return nil, err
	}

	return product, nil
}

// Update substitui o registro inteiro pelo ID; não há patch parcial.
func (s *Service) Update(product *domain.Product) error {
	products, err := s.productRepo.List()
	if err != nil {
		return err
	}

	found := false
	for i, existing := range products {
		if existing.ID == product.ID {
			products[i] = product
			found = true
			break
		}
	}

	if !found {
		return ErrProductNotFound
	}

	return s.productRepo.ReplaceAll(products)
}

// Delete remove o produto do catálogo. ID inexistente é no-op. Itens de
// vendas históricas que referenciam o produto não são tocados: o histórico
// sobrevive a mudanças de catálogo e o produto vira rótulo de fallback nas
// agregações.
func (s *Service) Delete(productID string) error {
	products, err := s.productRepo.List()
	if err != nil {
		return err
	}

	remaining := make([]*domain.Product, 0, len(products))
	for _, product := range products {
		if product.ID != productID {
			remaining = append(remaining, product)
		}
	}

	if len(remaining) == len(products) {
		return nil
	}

	return s.productRepo.ReplaceAll(remaining)
}

// LowStock lista os produtos na linha de reposição ou abaixo dela, avaliados
// sobre o snapshot atual.
func (s *Service) LowStock() ([]*domain.Product, error) {
	products, err := s.productRepo.List()
	if err != nil {
		return nil, err
	}

	return reporting.LowStockProducts(products), nil
}
