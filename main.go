package main

import (
	"log"
	"net/http"
	"os"

	"storefront/api/admin"
	"storefront/api/site"
	"storefront/cart"
	"storefront/catalog"
	"storefront/config"
	"storefront/localdata"
	"storefront/orders"
	"storefront/remotedb"
	"storefront/settings"

	"github.com/gorilla/csrf"
)

func main() {
	config.InitConf()

	if config.LOGFILE != "" {
		// open log file
		logFile, err := os.OpenFile(config.LOGFILE, os.O_APPEND|os.O_RDWR|os.O_CREATE, 0666)
		if err != nil {
			log.Panic(err)
		}
		defer logFile.Close()
		// set log output
		log.SetOutput(logFile)
	}

	// The local database backs fallback-mode orders and the store settings
	// in every mode.
	kv, err := localdata.Open(config.LOCAL_DATA_FILE)
	if err != nil {
		log.Fatalf("Could not open local database: %v\n", err)
	}
	defer kv.Close()

	productStore, orderStore, mode := selectStores(kv)
	log.Printf("Storefront persistence mode: %s\n", mode)

	settingsManager := settings.NewManager(kv)
	carts := cart.NewRegistry()

	CSRF := csrf.Protect(
		[]byte(config.CSRF_AUTH_TOKEN),
		csrf.SameSite(csrf.SameSiteStrictMode),
	)

	mux := http.NewServeMux()

	site.InitHandlers(mux, &site.Handlers{
		Products: productStore,
		Orders:   orderStore,
		Carts:    carts,
		Settings: settingsManager,
		Mode:     mode,
	})
	admin.InitHandlers(mux, &admin.Handlers{
		Products: productStore,
		Orders:   orderStore,
		Settings: settingsManager,
	})

	log.Printf("Beginning to listen on %s\n", config.LISTEN_ADDR)
	err = http.ListenAndServe(config.LISTEN_ADDR, CSRF(mux))
	log.Fatal(err)
}

// selectStores picks the persistence implementations once at startup. Missing
// or placeholder credentials mean fallback mode by design; a configured but
// unreachable remote database also degrades to fallback mode with a warning,
// so the storefront always comes up.
func selectStores(kv *localdata.KV) (catalog.Store, orders.Store, string) {
	if !config.RemoteConfigured() {
		log.Printf("Remote database not configured, using local demo data\n")
		return catalog.NewMemoryStore(), orders.NewLocalStore(kv), "local"
	}

	db, err := remotedb.Connect(config.DATABASE_URL, config.DATABASE_API_KEY)
	if err != nil {
		log.Printf("Warning: remote database unavailable, using local demo data: %v\n", err)
		return catalog.NewMemoryStore(), orders.NewLocalStore(kv), "local"
	}

	if err := remotedb.Migrate(db, config.MIGRATIONS_DIR); err != nil {
		log.Printf("Warning: remote migrations failed, using local demo data: %v\n", err)
		_ = db.Close()
		return catalog.NewMemoryStore(), orders.NewLocalStore(kv), "local"
	}

	return catalog.NewPostgresStore(db), orders.NewPostgresStore(db), "remote"
}
