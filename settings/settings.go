package settings

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"storefront/error_messages"
	"storefront/localdata"
)

type StoreSettings struct {
	StoreName    string `json:"storeName"`
	ContactEmail string `json:"contactEmail"`
	Currency     string `json:"currency"`
}

func Defaults() StoreSettings {
	return StoreSettings{
		StoreName:    "أناقة رجل",
		ContactEmail: "contact@example.com",
		Currency:     "جنيه",
	}
}

// Manager owns the store display settings. They are loaded once at startup
// from the local key-value database and written back synchronously on every
// save; an absent or corrupt stored value silently falls back to defaults.
type Manager struct {
	mu      sync.RWMutex
	kv      *localdata.KV
	current StoreSettings
}

func NewManager(kv *localdata.KV) *Manager {
	m := &Manager{kv: kv, current: Defaults()}

	value, err := kv.Get(localdata.SettingsKey)
	if err != nil {
		if !errors.Is(err, error_messages.ErrNotExists) {
			log.Printf("settings.NewManager: failed to load stored settings: %v\n", err)
		}
		return m
	}

	var stored StoreSettings
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		log.Printf("settings.NewManager: corrupt stored settings, using defaults: %v\n", err)
		return m
	}

	m.current = stored
	return m
}

func (m *Manager) Current() StoreSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Save overwrites both the in-memory settings and the durable copy. All
// fields are required.
func (m *Manager) Save(s StoreSettings) error {
	if s.StoreName == "" || s.ContactEmail == "" || s.Currency == "" {
		return error_messages.ErrInvalidSettings
	}

	value, err := json.Marshal(s)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.kv.Put(localdata.SettingsKey, string(value)); err != nil {
		return err
	}
	m.current = s
	return nil
}
