// Package config loads the demo server configuration from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the server configuration.
type AppConfig struct {
	Port string

	// Description defaults.
	Lang        string
	Timezone    string
	DefaultCity string

	// Observation cache.
	CacheTTL        time.Duration
	CacheMaxEntries int

	// Cache warming: cities to pre-fetch and how often. The sweep of
	// expired entries runs on the same interval.
	WarmCities   []string
	WarmInterval time.Duration

	// Outbound HTTP.
	HTTPTimeout time.Duration

	// Optional: switches geocoding to the Google Maps API.
	GoogleGeocoderAPIKey string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		Port:                 getenvDefault("PORT", "8080"),
		Lang:                 getenvDefault("WEATHERSAY_LANG", "fr"),
		Timezone:             getenvDefault("WEATHERSAY_TIMEZONE", "auto"),
		DefaultCity:          os.Getenv("WEATHERSAY_DEFAULT_CITY"),
		CacheMaxEntries:      getenvInt("CACHE_MAX_ENTRIES", 1024),
		GoogleGeocoderAPIKey: os.Getenv("GOOGLE_GEOCODER_API_KEY"),
	}

	ttlStr := getenvDefault("CACHE_TTL", "60s")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	warmStr := getenvDefault("WARM_INTERVAL", "15m")
	warm, err := time.ParseDuration(warmStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WARM_INTERVAL: %w", err)
	}
	cfg.WarmInterval = warm

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	if cities := os.Getenv("WEATHERSAY_WARM_CITIES"); cities != "" {
		for _, c := range strings.Split(cities, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cfg.WarmCities = append(cfg.WarmCities, c)
			}
		}
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
