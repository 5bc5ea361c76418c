package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/efparfum/perfumaria-api/internal/usecases/crm"
	"github.com/efparfum/perfumaria-api/pkg/apiErrors"
)

// ListFollowUps lista os clientes elegíveis para contato de pós-venda, do
// mais tempo sem comprar para o mais recente
func ListFollowUps(service crm.CustomerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.FollowUps()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao montar lista de pós-venda", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, items)
	}
}
