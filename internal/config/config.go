package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Config is the process configuration, read from the environment.
type Config struct {
	DiscordToken string        `env:"DISCORD_TOKEN,required"`
	StoragePath  string        `env:"STORAGE_PATH" envDefault:"bgsbot.json"`
	EBGSAPIURL   string        `env:"EBGS_API_URL" envDefault:"https://elitebgs.app/api/ebgs/v4"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"15s"`
	FetchRate    float64       `env:"FETCH_RATE" envDefault:"10"`
	FetchBurst   int           `env:"FETCH_BURST" envDefault:"5"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// New parses the configuration and exits the process when it is invalid.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}
