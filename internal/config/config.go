package config

import (
	"fmt"
	"os"
	"strconv"
)

// Catalog source selectors.
const (
	CatalogSeed   = "seed"
	CatalogFile   = "file"
	CatalogSQLite = "sqlite"
)

// Config holds application configuration.
type Config struct {
	// Server
	ServerPort int

	// Catalog
	CatalogSource string // "seed", "file" or "sqlite"
	CatalogPath   string // JSON file or sqlite database path

	// Estimation parameters
	YieldFactor         float64 // kWh per kW per year
	InstallationMarkup  float64 // fraction of equipment cost
	SpacingFactor       float64
	BatterySizingFactor float64 // kWh per kW
	RecommendedCount    int
	AlternativeCount    int
	ValidityDays        int

	// Logging
	LogLevel string
	LogDir   string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnvInt("SERVER_PORT", 8080),

		CatalogSource: getEnv("CATALOG_SOURCE", CatalogSeed),
		CatalogPath:   getEnv("CATALOG_PATH", "./catalog.db"),

		YieldFactor:         getEnvFloat("YIELD_FACTOR", 1350),
		InstallationMarkup:  getEnvFloat("INSTALLATION_MARKUP", 0.30),
		SpacingFactor:       getEnvFloat("SPACING_FACTOR", 1.4),
		BatterySizingFactor: getEnvFloat("BATTERY_SIZING_FACTOR", 1.5),
		RecommendedCount:    getEnvInt("RECOMMENDED_COUNT", 3),
		AlternativeCount:    getEnvInt("ALTERNATIVE_COUNT", 3),
		ValidityDays:        getEnvInt("VALIDITY_DAYS", 30),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),
		LogDir:   getEnv("LOG_DIRECTORY", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if configuration is valid.
func (c *Config) Validate() error {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.ServerPort)
	}
	switch c.CatalogSource {
	case CatalogSeed, CatalogFile, CatalogSQLite:
	default:
		return fmt.Errorf("invalid CATALOG_SOURCE: %s (use 'seed', 'file' or 'sqlite')", c.CatalogSource)
	}
	if c.CatalogSource != CatalogSeed && c.CatalogPath == "" {
		return fmt.Errorf("CATALOG_PATH is required for source %s", c.CatalogSource)
	}
	if c.YieldFactor <= 0 {
		return fmt.Errorf("invalid YIELD_FACTOR: %.1f (must be positive)", c.YieldFactor)
	}
	if c.InstallationMarkup < 0 || c.InstallationMarkup > 1 {
		return fmt.Errorf("invalid INSTALLATION_MARKUP: %.2f (must be 0-1)", c.InstallationMarkup)
	}
	if c.SpacingFactor < 1 {
		return fmt.Errorf("invalid SPACING_FACTOR: %.2f (must be >= 1)", c.SpacingFactor)
	}
	if c.RecommendedCount < 1 || c.AlternativeCount < 0 {
		return fmt.Errorf("invalid recommendation counts: %d/%d", c.RecommendedCount, c.AlternativeCount)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
