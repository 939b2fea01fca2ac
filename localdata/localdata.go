package localdata

/* Handle the SQLite database that backs fallback mode. Orders and store
 * settings are kept as JSON values in a single key-value table, which stands
 * in for the browser localStorage the hosted deployment never needed. */

import (
	"database/sql"
	"errors"

	"storefront/error_messages"

	_ "github.com/mattn/go-sqlite3"
)

// Fixed keys used by the fallback stores.
const (
	SettingsKey = "storeSettings"
	OrdersKey   = "mockOrders"
)

type KV struct {
	db *sql.DB
}

func Open(filename string) (*KV, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, err
	}

	kv := &KV{db: db}
	if err := kv.Migrate(); err != nil {
		return nil, err
	}
	return kv, nil
}

func (r *KV) Migrate() error {
	query := `
    CREATE TABLE IF NOT EXISTS local_data(
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL
    );
    `

	_, err := r.db.Exec(query)
	return err
}

// Get returns the stored value for key, or ErrNotExists when the key has
// never been written.
func (r *KV) Get(key string) (string, error) {
	row := r.db.QueryRow("SELECT value FROM local_data WHERE key = ?", key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", error_messages.ErrNotExists
		}
		return "", err
	}
	return value, nil
}

// Put stores value under key, replacing any previous value.
func (r *KV) Put(key string, value string) error {
	_, err := r.db.Exec(
		"INSERT INTO local_data(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return err
}

func (r *KV) Close() error {
	return r.db.Close()
}
