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

type AppConfig struct {
	// Completion backend.
	GroqAPIKey string
	GroqModel  string

	// GenerateTimeout bounds each completion call; no retry is performed.
	GenerateTimeout time.Duration

	// Snapshot source.
	SnapshotsDir string
	Regions      []string

	// MaxSample caps how many flight records a compact snapshot carries.
	MaxSample int

	// FreshnessInterval controls how often the snapshot freshness sweep runs.
	FreshnessInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	cfg.GroqModel = getenvDefault("GROQ_MODEL", "llama-3.1-8b-instant")

	timeoutStr := getenvDefault("GENERATE_TIMEOUT", "5s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATE_TIMEOUT: %w", err)
	}
	cfg.GenerateTimeout = timeout

	cfg.SnapshotsDir = getenvDefault("SNAPSHOTS_DIR", "snapshots")
	cfg.Regions = loadRegions()

	cfg.MaxSample = getenvInt("MAX_SAMPLE", 40)
	if cfg.MaxSample < 0 {
		return nil, fmt.Errorf("MAX_SAMPLE must not be negative")
	}

	freshStr := getenvDefault("FRESHNESS_INTERVAL", "5m")
	fresh, err := time.ParseDuration(freshStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FRESHNESS_INTERVAL: %w", err)
	}
	cfg.FreshnessInterval = fresh

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

// loadRegions reads the comma-separated region list; region5 and beyond can
// be added here once their snapshots exist.
func loadRegions() []string {
	raw := getenvDefault("REGIONS", "region1,region2,region3,region4")

	var regions []string
	for _, r := range strings.Split(raw, ",") {
		r = strings.TrimSpace(r)
		if r != "" {
			regions = append(regions, r)
		}
	}
	return regions
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
