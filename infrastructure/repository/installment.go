package repository

import (
	"github.com/efparfum/perfumaria-api/infrastructure/database/localdb"
	"github.com/efparfum/perfumaria-api/internal/domain"
)

type InstallmentRepository interface {
	List() ([]*domain.Installment, error)
	ReplaceAll(installments []*domain.Installment) error
}

type installmentRepository struct {
	store localdb.Store
}

func NewInstallmentRepository(store localdb.Store) InstallmentRepository {
	return &installmentRepository{store: store}
}

func (r *installmentRepository) List() ([]*domain.Installment, error) {
	installments := make([]*domain.Installment, 0)
	if err := loadCollection(r.store, installmentsKey, &installments); err != nil {
		return nil, err
	}
	return installments, nil
}

func (r *installmentRepository) ReplaceAll(installments []*domain.Installment) error {
	return storeCollection(r.store, installmentsKey, installments)
}
