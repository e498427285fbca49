// Package config reads runtime settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers for the art cache.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	// Server
	Addr string

	// Art cache storage
	StorageDriver string
	SQLitePath    string
	RedisURL      string

	// Catalog
	MusicBrainzBaseURL string
	CoverArtBaseURL    string
	UserAgent          string
	MaxRetries         int
	RetryBackoff       time.Duration
	RatePerSecond      float64
	Timeout            time.Duration
	SearchPageSize     int

	// Art workers
	ArtWorkers   int
	ArtQueueSize int
}

// Load reads an optional .env file and then the environment.
func Load(files ...string) *Config {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return New()
}

// New builds a Config from the current environment.
func New() *Config {
	return &Config{
		Addr: getEnv("JAM_ADDR", "127.0.0.1:8080"),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverSQLite)),
		SQLitePath:    getEnv("SQLITE_PATH", "jam.db"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),

		MusicBrainzBaseURL: getEnv("MUSICBRAINZ_BASE_URL", "https://musicbrainz.org/ws/2"),
		CoverArtBaseURL:    getEnv("COVERART_BASE_URL", "https://coverartarchive.org"),
		UserAgent:          getEnv("CATALOG_USER_AGENT", "jam-rating/0.1 ( https://github.com/vaibhavuttam8/jam-rating )"),
		MaxRetries:         getEnvAsInt("CATALOG_MAX_RETRIES", 1),
		RetryBackoff:       getEnvAsMillis("CATALOG_RETRY_BACKOFF_MS", 500),
		RatePerSecond:      getEnvAsFloat("CATALOG_RATE_PER_SEC", 1),
		Timeout:            getEnvAsMillis("CATALOG_TIMEOUT_MS", 10000),
		SearchPageSize:     getEnvAsInt("SEARCH_PAGE_SIZE", 10),

		ArtWorkers:   getEnvAsInt("ART_WORKERS", 2),
		ArtQueueSize: getEnvAsInt("ART_QUEUE_SIZE", 100),
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil && value >= 0 {
		return value
	}
	return defaultValue
}

func getEnvAsMillis(key string, defaultMillis int) time.Duration {
	return time.Duration(getEnvAsInt(key, defaultMillis)) * time.Millisecond
}
