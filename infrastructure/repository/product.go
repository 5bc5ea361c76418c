package repository

import (
	"github.com/efparfum/perfumaria-api/infrastructure/database/localdb"
	"github.com/efparfum/perfumaria-api/internal/domain"
)

type ProductRepository interface {
	List() ([]*domain.Product, error)
	ReplaceAll(products []*domain.Product) error
}

type productRepository struct {
	store localdb.Store
}

func NewProductRepository(store localdb.Store) ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) List() ([]*domain.Product, error) {
	products := make([]*domain.Product, 0)
	if err := loadCollection(r.store, productsKey, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) ReplaceAll(products []*domain.Product) error {
	return storeCollection(r.store, productsKey, products)
}
