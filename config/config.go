package config

import (
	"os"

	"github.com/pkg/errors"
)

// Config holds the values the process cannot start without.
type Config struct {
	DatabaseURL string
	Host        string
	Port        string
}

// Load reads the configuration from the environment. Every field is
// required; the first missing variable fails the load.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Host:        os.Getenv("HOST"),
		Port:        os.Getenv("PORT"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("Database connection URL not found in dotenv file.")
	}
	if cfg.Host == "" {
		return Config{}, errors.New("Host URL not found in dotenv file.")
	}
	if cfg.Port == "" {
		return Config{}, errors.New("Port number not found in dotenv file.")
	}

	return cfg, nil
}

// Addr returns the host:port the server binds to.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}
