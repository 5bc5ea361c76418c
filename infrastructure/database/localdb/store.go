// Package localdb fornece o armazenamento chave-valor local do sistema.
// Cada chave guarda o snapshot completo de uma coleção; não existem escritas
// parciais, e a última escrita vence na granularidade da coleção inteira.
package localdb

import "errors"

var (
	// ErrKeyNotFound indica que a chave nunca foi gravada.
	ErrKeyNotFound = errors.New("chave não encontrada")
	// ErrValueTooLarge indica que o valor excede a cota de armazenamento
	// configurada (tipicamente por imagens embutidas nas configurações).
	ErrValueTooLarge = errors.New("valor excede a cota de armazenamento")
)

// Store é o contrato mínimo do armazenamento local. As implementações são
// seguras para uso concorrente, mas não oferecem transação entre chaves:
// operações que tocam múltiplas coleções são sequências de escritas
// independentes, por decisão de projeto (operador único, dispositivo único).
type Store interface {
	// Get retorna o valor da chave ou ErrKeyNotFound.
	Get(key string) ([]byte, error)
	// Put grava o valor inteiro da chave, substituindo o anterior.
	Put(key string, value []byte) error
	// Delete remove a chave; remover chave ausente não é erro.
	Delete(key string) error
	// Close libera os recursos do armazenamento.
	Close() error
}
