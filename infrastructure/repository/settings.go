package repository

import (
	"github.com/pkg/errors"

	"github.com/efparfum/perfumaria-api/infrastructure/database/localdb"
	"github.com/efparfum/perfumaria-api/internal/domain"
)

// SettingsRepository gerencia o registro único de configurações. Get nunca
// retorna nil: sem registro gravado, valem os padrões.
type SettingsRepository interface {
	Get() (*domain.AppSettings, error)
	Save(settings *domain.AppSettings) error
}

type settingsRepository struct {
	store localdb.Store
}

func NewSettingsRepository(store localdb.Store) SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) Get() (*domain.AppSettings, error) {
	data, err := r.store.Get(settingsKey)
	if err != nil {
		if errors.Is(err, localdb.ErrKeyNotFound) {
			return domain.DefaultSettings(), nil
		}
		return nil, errors.Wrap(err, "erro ao ler as configurações")
	}

	settings := domain.DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, errors.Wrap(err, "erro ao desserializar as configurações")
	}

	return settings, nil
}

func (r *settingsRepository) Save(settings *domain.AppSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar as configurações")
	}

	// Erros de cota (imagens embutidas grandes demais) sobem para o chamador.
	return r.store.Put(settingsKey, data)
}
