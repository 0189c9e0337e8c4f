package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr string
	// simulated network delay applied to catalog queries
	FetchDelay time.Duration
	// simulated payment-processing delay in checkout
	ProcessDelay time.Duration
	// quiet period before a search change triggers a re-fetch
	SearchDebounce time.Duration
	// directory for cart/wishlist persistence; empty means in-memory only
	DataDir string
	// base URL of the storefront API, used by the browse client
	StoreURL string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("[config] invalid %s=%q, using %s", k, v, def)
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		Addr:           getenv("ADDR", ":8080"),
		FetchDelay:     getdur("FETCH_DELAY", time.Second),
		ProcessDelay:   getdur("PROCESS_DELAY", 3*time.Second),
		SearchDebounce: getdur("SEARCH_DEBOUNCE", 300*time.Millisecond),
		DataDir:        getenv("DATA_DIR", ""),
		StoreURL:       getenv("STORE_URL", "http://localhost:8080"),
	}
	log.Printf("[config] ADDR=%s STORE_URL=%s", cfg.Addr, cfg.StoreURL)
	log.Printf("[config] FETCH_DELAY=%s PROCESS_DELAY=%s SEARCH_DEBOUNCE=%s",
		cfg.FetchDelay, cfg.ProcessDelay, cfg.SearchDebounce)
	log.Printf("[config] DATA_DIR=%q", cfg.DataDir)
	return cfg
}
