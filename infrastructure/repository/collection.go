// Package repository expõe as coleções de domínio sobre o armazenamento
// local. Cada repositório lê e grava o snapshot completo da coleção
// (List/ReplaceAll): essa é a única primitiva de persistência do sistema,
// adequada porque existe um único operador escrevendo de um único
// dispositivo.
package repository

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/efparfum/perfumaria-api/infrastructure/database/localdb"
)

// Chaves das coleções no armazenamento local.
const (
	customersKey    = "customers"
	productsKey     = "products"
	salesKey        = "sales"
	installmentsKey = "installments"
	settingsKey     = "settings"
	initializedKey  = "initialized"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// loadCollection desserializa a coleção da chave no destino. Chave ausente
// não é erro: o destino permanece vazio.
func loadCollection(store localdb.Store, key string, dest any) error {
	data, err := store.Get(key)
	if err != nil {
		if errors.Is(err, localdb.ErrKeyNotFound) {
			return nil
		}
		return errors.Wrapf(err, "erro ao ler a coleção %q", key)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return errors.Wrapf(err, "erro ao desserializar a coleção %q", key)
	}

	return nil
}

// storeCollection serializa e grava o snapshot completo da coleção.
func storeCollection(store localdb.Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "erro ao serializar a coleção %q", key)
	}

	return store.Put(key, data)
}
