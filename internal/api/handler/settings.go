package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/efparfum/perfumaria-api/internal/domain"
	appsettings "github.com/efparfum/perfumaria-api/internal/usecases/settings"
	"github.com/efparfum/perfumaria-api/pkg/apiErrors"
)

// GetSettings retorna as configurações da loja, sem expor a senha
func GetSettings(service appsettings.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.Get()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao buscar configurações", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, settings)
	}
}

// UpdateSettings substitui as configurações da loja. Senha vazia mantém a
// senha atual.
func UpdateSettings(service appsettings.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings *domain.AppSettings

		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if settings == nil || settings.SystemName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do sistema é obrigatório", nil)
			return
		}

		if err := service.Update(settings); err != nil {
			if errors.Is(err, appsettings.ErrImageTooLarge) {
				apiErrors.WriteError(w, apiErrors.ErrStorageQuota, "Imagem excede o limite de armazenamento", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageWrite, "Erro ao salvar configurações", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
