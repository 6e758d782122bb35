package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads a local .env (if present) and then the process environment into
// the App config. Missing required keys fail here, at startup.
func Load() (App, error) {
	_ = godotenv.Load()

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return App{}, err
	}
	return cfg, nil
}
