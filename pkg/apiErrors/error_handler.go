package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro retornados pela API.
const (
	// Autenticação
	ErrInvalidCredentials = "AUTH_001" // Senha incorreta
	ErrInvalidToken       = "AUTH_002" // Token inválido ou expirado

	// Validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrEmptyCart           = "VAL_003" // Carrinho vazio no fechamento
	ErrInsufficientStock   = "VAL_004" // Estoque insuficiente para o item
	ErrNotFound            = "VAL_005" // Registro não encontrado

	// Armazenamento e servidor
	ErrInternalServer = "SRV_001" // Erro interno
	ErrStorageQuota   = "SRV_002" // Cota de armazenamento excedida
	ErrStorageWrite   = "SRV_003" // Falha de escrita no armazenamento
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrEmptyCart:           http.StatusBadRequest,
	ErrInsufficientStock:   http.StatusUnprocessableEntity,
	ErrNotFound:            http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrStorageQuota:        http.StatusInsufficientStorage,
	ErrStorageWrite:        http.StatusInternalServerError,
}

// APIError é o corpo padronizado de erro da API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado na resposta HTTP.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
