package localdb

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var collectionsBucket = []byte("collections")

// BoltStore persiste as coleções em um único arquivo bbolt, o análogo local
// do armazenamento do navegador da aplicação original.
type BoltStore struct {
	db            *bolt.DB
	path          string
	maxValueBytes int
}

// NewBoltStore abre (ou cria) o arquivo de dados. maxValueBytes limita o
// tamanho de cada valor; zero desabilita o limite.
func NewBoltStore(path string, maxValueBytes int) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "erro ao criar diretório de dados")
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o arquivo de dados")
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(collectionsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "erro ao inicializar o bucket de coleções")
	}

	return &BoltStore{db: db, path: path, maxValueBytes: maxValueBytes}, nil
}

func (s *BoltStore) Get(key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(collectionsBucket).Get([]byte(key))
		if data == nil {
			return ErrKeyNotFound
		}
		value = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *BoltStore) Put(key string, value []byte) error {
	if s.maxValueBytes > 0 && len(value) > s.maxValueBytes {
		return errors.Wrapf(ErrValueTooLarge, "chave %q com %d bytes", key, len(value))
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(collectionsBucket).Put([]byte(key), value)
	})

	return errors.Wrapf(err, "erro ao gravar a chave %q", key)
}

func (s *BoltStore) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(collectionsBucket).Delete([]byte(key))
	})

	return errors.Wrapf(err, "erro ao remover a chave %q", key)
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Backup grava uma cópia consistente do arquivo de dados no caminho indicado.
func (s *BoltStore) Backup(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar diretório de backup")
	}

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.CopyFile(path, 0o600)
	})

	return errors.Wrap(err, "erro ao copiar o arquivo de dados")
}

// Path retorna o caminho do arquivo de dados.
func (s *BoltStore) Path() string {
	return s.path
}
