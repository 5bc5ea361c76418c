package repository

import (
	"github.com/efparfum/perfumaria-api/infrastructure/database/localdb"
	"github.com/efparfum/perfumaria-api/internal/domain"
)

type CustomerRepository interface {
	List() ([]*domain.Customer, error)
	ReplaceAll(customers []*domain.Customer) error
}

type customerRepository struct {
	store localdb.Store
}

func NewCustomerRepository(store localdb.Store) CustomerRepository {
	return &customerRepository{store: store}
}

func (r *customerRepository) List() ([]*domain.Customer, error) {
	customers := make([]*domain.Customer, 0)
	if err := loadCollection(r.store, customersKey, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) ReplaceAll(customers []*domain.Customer) error {
	return storeCollection(r.store, customersKey, customers)
}
