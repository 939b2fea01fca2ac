package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Placeholder credentials shipped in .env.example. If the environment still
// carries these values the remote database is treated as not configured.
const (
	placeholderURL = "postgres://your-project.supabase.co"
	placeholderKey = "your-api-key"
)

var (
	DATABASE_URL     = ""
	DATABASE_API_KEY = ""
	LISTEN_ADDR      = ""
	LOGFILE          = ""
	CSRF_AUTH_TOKEN  = ""
	LOCAL_DATA_FILE  = ""
	MIGRATIONS_DIR   = ""
)

func InitConf() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Error loading .env file")
	}

	DATABASE_URL = os.Getenv("DATABASE_URL")
	DATABASE_API_KEY = os.Getenv("DATABASE_API_KEY")

	LISTEN_ADDR = getenvDefault("LISTEN_ADDR", "localhost:4242")
	LOGFILE = os.Getenv("LOGFILE")
	CSRF_AUTH_TOKEN = os.Getenv("CSRF_AUTH_TOKEN")
	LOCAL_DATA_FILE = getenvDefault("LOCAL_DATA_FILE", "storefront.db")
	MIGRATIONS_DIR = getenvDefault("MIGRATIONS_DIR", "migrations")
}

// RemoteConfigured reports whether both connection credentials are present and
// are not the placeholder values. When it returns false the application runs
// on the seeded local data instead.
func RemoteConfigured() bool {
	if DATABASE_URL == "" || DATABASE_URL == placeholderURL {
		return false
	}
	if DATABASE_API_KEY == "" || DATABASE_API_KEY == placeholderKey {
		return false
	}
	return true
}

func getenvDefault(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
