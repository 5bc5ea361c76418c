package repository

import (
	"github.com/efparfum/perfumaria-api/infrastructure/database/localdb"
	"github.com/efparfum/perfumaria-api/internal/domain"
)

type SaleRepository interface {
	List() ([]*domain.Sale, error)
	ReplaceAll(sales []*domain.Sale) error
}

type saleRepository struct {
	store localdb.Store
}

func NewSaleRepository(store localdb.Store) SaleRepository {
	return &saleRepository{store: store}
}

func (r *saleRepository) List() ([]*domain.Sale, error) {
	sales := make([]*domain.Sale, 0)
	if err := loadCollection(r.store, salesKey, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) ReplaceAll(sales []*domain.Sale) error {
	return storeCollection(r.store, salesKey, sales)
}
