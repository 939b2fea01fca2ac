package localdata

import (
	"path/filepath"
	"testing"

	"storefront/error_messages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestGetMissingKey(t *testing.T) {
	kv := openTestKV(t)

	_, err := kv.Get("nothing")
	assert.ErrorIs(t, err, error_messages.ErrNotExists)
}

func TestPutGetRoundTrip(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.Put(SettingsKey, `{"storeName":"متجر"}`))

	value, err := kv.Get(SettingsKey)
	require.NoError(t, err)
	assert.Equal(t, `{"storeName":"متجر"}`, value)
}

func TestPutOverwrites(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.Put(OrdersKey, "[]"))
	require.NoError(t, kv.Put(OrdersKey, `[{"id":1}]`))

	value, err := kv.Get(OrdersKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, value)
}

func TestKeysAreIndependent(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.Put(SettingsKey, "a"))
	require.NoError(t, kv.Put(OrdersKey, "b"))

	settings, err := kv.Get(SettingsKey)
	require.NoError(t, err)
	orders, err := kv.Get(OrdersKey)
	require.NoError(t, err)

	assert.Equal(t, "a", settings)
	assert.Equal(t, "b", orders)
}
