package authenticating

import "errors"

var (
	// ErrInvalidCredentials indica senha incorreta no portão de acesso.
	ErrInvalidCredentials = errors.New("senha incorreta")
	// ErrInvalidToken indica token de sessão inválido ou expirado.
	ErrInvalidToken = errors.New("token inválido")
	// ErrMissingPassword indica requisição de login sem senha.
	ErrMissingPassword = errors.New("senha é obrigatória")
)
