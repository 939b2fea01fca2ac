package settings

import (
	"path/filepath"
	"testing"

	"storefront/error_messages"
	"storefront/localdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestKV(t *testing.T) *localdata.KV {
	t.Helper()
	kv, err := localdata.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestManagerStartsWithDefaults(t *testing.T) {
	m := NewManager(openTestKV(t))

	current := m.Current()
	assert.Equal(t, "أناقة رجل", current.StoreName)
	assert.Equal(t, "contact@example.com", current.ContactEmail)
	assert.Equal(t, "جنيه", current.Currency)
}

func TestSavePersistsAcrossManagers(t *testing.T) {
	kv := openTestKV(t)

	m := NewManager(kv)
	saved := StoreSettings{StoreName: "متجر الأناقة", ContactEmail: "info@store.example", Currency: "ريال"}
	require.NoError(t, m.Save(saved))
	assert.Equal(t, saved, m.Current())

	// A new manager over the same database sees the saved value.
	reloaded := NewManager(kv)
	assert.Equal(t, saved, reloaded.Current())
}

func TestCorruptStoredValueFallsBackToDefaults(t *testing.T) {
	kv := openTestKV(t)
	require.NoError(t, kv.Put(localdata.SettingsKey, "{not json"))

	m := NewManager(kv)
	assert.Equal(t, Defaults(), m.Current())
}

func TestSaveRejectsEmptyFields(t *testing.T) {
	m := NewManager(openTestKV(t))

	tests := []StoreSettings{
		{StoreName: "", ContactEmail: "a@b.c", Currency: "جنيه"},
		{StoreName: "متجر", ContactEmail: "", Currency: "جنيه"},
		{StoreName: "متجر", ContactEmail: "a@b.c", Currency: ""},
	}
	for _, s := range tests {
		assert.ErrorIs(t, m.Save(s), error_messages.ErrInvalidSettings)
	}

	// The failed saves must not touch the current value.
	assert.Equal(t, Defaults(), m.Current())
}
