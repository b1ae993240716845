// Package config loads provisioner configuration from the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries the environment-driven settings of the provisioner. AWS
// credentials are deliberately absent: the SDK's default chain resolves them
// (Lambda execution role in production, env vars or profiles locally).
type Config struct {
	// AWS
	Region   string `env:"AWS_REGION" env-default:"us-east-1"`
	Endpoint string `env:"AWS_ENDPOINT_URL" env-default:""`

	// Logging
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	// Local invocation harness
	ListenAddr string `env:"LISTEN_ADDR" env-default:":8080"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	return &cfg, nil
}
