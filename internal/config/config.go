package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime configuration, loaded from environment variables.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Store selects the ledger backend: "memory" or "sqlite".
	Store      string `env:"STORE" envDefault:"memory"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"rewear.db"`

	JWTSigningKey string        `env:"JWT_SIGNING_KEY,required"`
	JWTIssuer     string        `env:"JWT_ISSUER" envDefault:"rewear"`
	JWTTTL        time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// Seed populates demo accounts and listings at startup.
	Seed bool `env:"SEED" envDefault:"false"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
