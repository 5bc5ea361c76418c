// Package settings gerencia o registro único de configurações da loja:
// identidade visual (logo e ícone, possivelmente embutidos como data URI) e a
// senha de acesso.
package settings

import (
	"errors"

	"github.com/efparfum/perfumaria-api/infrastructure/database/localdb"
	"github.com/efparfum/perfumaria-api/infrastructure/repository"
	"github.com/efparfum/perfumaria-api/internal/domain"
)

// ErrImageTooLarge indica que uma imagem embutida estoura a cota de
// armazenamento; o chamador deve orientar a trocar a imagem e tentar de novo.
var ErrImageTooLarge = errors.New("imagem excede o limite de armazenamento")

// Manager é a interface das configurações.
type Manager interface {
	Get() (*domain.AppSettings, error)
	Update(settings *domain.AppSettings) error
}

type Service struct {
	settingsRepo  repository.SettingsRepository
	maxImageBytes int
}

func NewService(settingsRepo repository.SettingsRepository, maxImageBytes int) *Service {
	return &Service{
		settingsRepo:  settingsRepo,
		maxImageBytes: maxImageBytes,
	}
}

// Get retorna as configurações sem expor a senha.
func (s *Service) Get() (*domain.AppSettings, error) {
	stored, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	sanitized := *stored
	sanitized.Password = ""
	return &sanitized, nil
}

// Update grava o registro de configurações. Senha vazia preserva a atual.
// Imagens embutidas acima da cota falham antes da escrita; erros de cota do
// armazenamento também sobem, para a tela oferecer remoção da imagem.
func (s *Service) Update(incoming *domain.AppSettings) error {
	if s.maxImageBytes > 0 {
		if len(incoming.LogoURL) > s.maxImageBytes || len(incoming.AppIconURL) > s.maxImageBytes {
			return ErrImageTooLarge
		}
	}

	current, err := s.settingsRepo.Get()
	if err != nil {
		return err
	}

	if incoming.Password == "" {
		incoming.Password = current.Password
	}

	err = s.settingsRepo.Save(incoming)
	if errors.Is(err, localdb.ErrValueTooLarge) {
		return ErrImageTooLarge
	}
	return err
}
