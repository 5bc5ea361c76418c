package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/efparfum/perfumaria-api/internal/usecases/authenticating"
	"github.com/efparfum/perfumaria-api/pkg/apiErrors"
)

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		// Tentar realizar o login
		token, err := service.Login(req.Password)
		if err != nil {
			switch {
			case errors.Is(err, authenticating.ErrMissingPassword):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Senha é obrigatória", nil)

			case errors.Is(err, authenticating.ErrInvalidCredentials):
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Senha incorreta", nil)

			default:
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
			}
			return
		}

		// Sucesso: retornar o token
		respondJSON(w, r, http.StatusOK, LoginResponse{Token: token})
	}
}
