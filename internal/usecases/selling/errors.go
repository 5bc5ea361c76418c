package selling

import "errors"

// Erros de validação detectados antes de qualquer escrita: quando um deles
// ocorre, nenhuma coleção foi tocada.
var (
	ErrEmptyCart           = errors.New("carrinho vazio")
	ErrCustomerRequired    = errors.New("nenhum cliente selecionado")
	ErrCustomerNotFound    = errors.New("cliente não encontrado")
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrInsufficientStock   = errors.New("estoque insuficiente")
	ErrInvalidQuantity     = errors.New("quantidade inválida")
	ErrInvalidInstallments = errors.New("número de parcelas inválido")
)
