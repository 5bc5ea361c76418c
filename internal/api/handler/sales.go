package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/efparfum/perfumaria-api/infrastructure/database/localdb"
	"github.com/efparfum/perfumaria-api/internal/usecases/selling"
	"github.com/efparfum/perfumaria-api/pkg/apiErrors"
)

// ListSales lista o histórico de vendas, da mais recente para a mais antiga
func ListSales(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.ListSales()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao buscar vendas", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, sales)
	}
}

// Checkout fecha uma venda: valida o carrinho, grava a venda e as parcelas e
// baixa o estoque dos itens
func Checkout(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input selling.CheckoutInput

		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		sale, err := service.Checkout(input)
		if err != nil {
			handleCheckoutError(w, err)
			return
		}

		respondJSON(w, r, http.StatusCreated, sale)
	}
}

// handleCheckoutError traduz os erros de fechamento de venda para a resposta
// HTTP apropriada
func handleCheckoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, selling.ErrEmptyCart):
		apiErrors.WriteError(w, apiErrors.ErrEmptyCart, "Adicione produtos ao carrinho", nil)

	case errors.Is(err, selling.ErrCustomerRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Selecione um cliente", nil)

	case errors.Is(err, selling.ErrCustomerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)

	case errors.Is(err, selling.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Produto não encontrado", nil)

	case errors.Is(err, selling.ErrInsufficientStock):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientStock, err.Error(), nil)

	case errors.Is(err, selling.ErrInvalidQuantity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Quantidade inválida", nil)

	case errors.Is(err, selling.ErrInvalidInstallments):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Número de parcelas inválido", nil)

	case errors.Is(err, localdb.ErrValueTooLarge):
		apiErrors.WriteError(w, apiErrors.ErrStorageQuota, "Cota de armazenamento excedida", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao registrar venda", nil)
	}
}

// ListReceivables lista todas as parcelas com o status derivado no momento
// da consulta
func ListReceivables(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		receivables, err := service.ListReceivables()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao buscar parcelas", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, receivables)
	}
}

// PayInstallment marca uma parcela como paga; ID inexistente é no-op
func PayInstallment(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da parcela não fornecido", nil)
			return
		}

		if err := service.PayInstallment(id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao baixar parcela", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
