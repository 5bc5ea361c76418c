package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/efparfum/perfumaria-api/internal/domain"
	"github.com/efparfum/perfumaria-api/internal/usecases/catalog"
	"github.com/efparfum/perfumaria-api/pkg/apiErrors"
)

// ListProducts lista o catálogo completo
func ListProducts(service catalog.ProductManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.List()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao buscar produtos", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, products)
	}
}

// CreateProduct cadastra um novo produto no catálogo
func CreateProduct(service catalog.ProductManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product *domain.Product

		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if product == nil || product.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do produto é obrigatório", nil)
			return
		}

		created, err := service.Create(product)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao cadastrar produto", nil)
			return
		}

		respondJSON(w, r, http.StatusCreated, created)
	}
}

// UpdateProduct substitui o registro de um produto pelo ID
func UpdateProduct(service catalog.ProductManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		var product *domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if product == nil || product.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do produto é obrigatório", nil)
			return
		}

		product.ID = id

		if err := service.Update(product); err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Produto não encontrado", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao atualizar produto", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, product)
	}
}

// DeleteProduct remove um produto do catálogo; ID inexistente é no-op
func DeleteProduct(service catalog.ProductManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		if err := service.Delete(id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao remover produto", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListLowStock lista os produtos na linha de reposição ou abaixo dela
func ListLowStock(service catalog.ProductManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.LowStock()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao buscar produtos", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, products)
	}
}
