package localdb

import (
	"sync"

	"github.com/pkg/errors"
)

// MemoryStore mantém as coleções em memória. Usado nos testes e em execuções
// efêmeras; mesmo contrato do BoltStore, inclusive a cota de tamanho.
type MemoryStore struct {
	mu            sync.RWMutex
	values        map[string][]byte
	maxValueBytes int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// WithMaxValueBytes habilita a cota de tamanho por valor, para exercitar o
// caminho de erro de armazenamento nos testes.
func (s *MemoryStore) WithMaxValueBytes(limit int) *MemoryStore {
	s.maxValueBytes = limit
	return s
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return append([]byte(nil), value...), nil
}

func (s *MemoryStore) Put(key string, value []byte) error {
	if s.maxValueBytes > 0 && len(value) > s.maxValueBytes {
		return errors.Wrapf(ErrValueTooLarge, "chave %q com %d bytes", key, len(value))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
