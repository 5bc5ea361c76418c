package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/efparfum/perfumaria-api/internal/domain"
	"github.com/efparfum/perfumaria-api/internal/usecases/crm"
	"github.com/efparfum/perfumaria-api/pkg/apiErrors"
)

// ListCustomers lista todos os clientes cadastrados
func ListCustomers(service crm.CustomerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.List()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao buscar clientes", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, customers)
	}
}

// CreateCustomer cadastra um novo cliente
func CreateCustomer(service crm.CustomerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var customer *domain.Customer

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// Validar campos obrigatórios
		if customer == nil || customer.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do cliente é obrigatório", nil)
			return
		}

		created, err := service.Create(customer)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao cadastrar cliente", nil)
			return
		}

		respondJSON(w, r, http.StatusCreated, created)
	}
}

// UpdateCustomer substitui o cadastro de um cliente pelo ID
func UpdateCustomer(service crm.CustomerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		var customer *domain.Customer
		if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if customer == nil || customer.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do cliente é obrigatório", nil)
			return
		}

		customer.ID = id

		if err := service.Update(customer); err != nil {
			if errors.Is(err, crm.ErrCustomerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao atualizar cliente", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, customer)
	}
}

// DeleteCustomer remove um cliente do cadastro; ID inexistente é no-op
func DeleteCustomer(service crm.CustomerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		if err := service.Delete(id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao remover cliente", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
