// Package authenticating implementa o portão de acesso da aplicação: uma
// única senha compartilhada, guardada nas configurações, libera todas as
// telas. Não há usuários nem papéis; o modelo é de operador único.
package authenticating

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/efparfum/perfumaria-api/infrastructure/repository"
	"github.com/efparfum/perfumaria-api/internal/config"
	"github.com/efparfum/perfumaria-api/internal/domain"
	"github.com/efparfum/perfumaria-api/pkg/log"
)

// Claims são as claims do token de sessão emitido após o login.
type Claims struct {
	jwt.RegisteredClaims
}

// Authenticator é a interface do portão de acesso.
type Authenticator interface {
	Login(password string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Service struct {
	settingsRepo repository.SettingsRepository
	secret       []byte
	tokenTTL     time.Duration
	now          func() time.Time
}

func NewService(settingsRepo repository.SettingsRepository, cfg *config.Config) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		secret:       []byte(cfg.Auth.Secret),
		tokenTTL:     cfg.Auth.TokenTTL,
		now:          time.Now,
	}
}

// Login compara a senha informada com a senha das configurações (padrão
// "1234" quando nenhuma foi definida) e emite um token de sessão. Se o valor
// guardado for um hash bcrypt, a comparação usa bcrypt; caso contrário é
// comparação direta de texto, fiel ao contrato original.
func (s *Service) Login(password string) (string, error) {
	if password == "" {
		return "", ErrMissingPassword
	}

	settings, err := s.settingsRepo.Get()
	if err != nil {
		return "", err
	}

	stored := settings.Password
	if stored == "" {
		stored = domain.DefaultPassword
	}

	if !passwordMatches(stored, password) {
		log.L.Warn("Tentativa de login com senha incorreta")
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "operator",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken confere assinatura e validade do token de sessão.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored == supplied
}
