package localdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("ausente")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Put("customers", []byte(`[{"id":"c1"}]`)))

	value, err := store.Get("customers")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"c1"}]`), value)

	require.NoError(t, store.Delete("customers"))
	_, err = store.Get("customers")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_ValueQuota(t *testing.T) {
	store := NewMemoryStore().WithMaxValueBytes(8)

	require.NoError(t, store.Put("ok", []byte("12345678")))

	err := store.Put("grande", []byte("123456789"))
	assert.ErrorIs(t, err, ErrValueTooLarge)

	// A chave rejeitada não foi gravada
	_, err = store.Get("grande")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put("k", []byte("abc")))

	value, err := store.Get("k")
	require.NoError(t, err)
	value[0] = 'x'

	again, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestBoltStore_RoundTripAndBackup(t *testing.T) {
	dir := t.TempDir()

	store, err := NewBoltStore(dir+"/test.db", 0)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put("products", []byte(`[]`)))

	value, err := store.Get("products")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)

	_, err = store.Get("ausente")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Backup(dir+"/backup.db"))

	restored, err := NewBoltStore(dir+"/backup.db", 0)
	require.NoError(t, err)
	defer restored.Close()

	value, err = restored.Get("products")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)
}

func TestBoltStore_ValueQuota(t *testing.T) {
	dir := t.TempDir()

	store, err := NewBoltStore(dir+"/test.db", 8)
	require.NoError(t, err)
	defer store.Close()

	err = store.Put("grande", []byte("123456789"))
	assert.ErrorIs(t, err, ErrValueTooLarge)
}
