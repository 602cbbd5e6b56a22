package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from variable names before lookup.
const EnvPrefix = "PARTBILL_"

// Config holds settings read from the environment and an optional .env file.
type Config struct {
	CatalogPath string
	ShopName    string
	Currency    string
	Theme       string
	LogLevel    string
	LogFormat   string
	LogFile     string
}

// Load reads PARTBILL_* variables. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	provider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	return &Config{
		CatalogPath: valueOrDefault(k.String("catalog_path"), "data/parts.json"),
		ShopName:    valueOrDefault(k.String("shop_name"), "Sagarmatha Earthmoving Spare Parts"),
		Currency:    valueOrDefault(k.String("currency"), "Rs."),
		Theme:       valueOrDefault(k.String("theme"), "classic"),
		LogLevel:    valueOrDefault(k.String("log_level"), "info"),
		LogFormat:   valueOrDefault(k.String("log_format"), "console"),
		LogFile:     strings.TrimSpace(k.String("log_file")),
	}, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
