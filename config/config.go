package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var embedded []byte

// Config holds application configuration
type Config struct {
	URL      string `yaml:"url"`
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log"`
}

// Load reads the embedded config.yaml and applies overrides from a local .env
// file and the environment. Shell variables take precedence over .env values.
func Load() (*Config, error) {
	return parse(embedded)
}

func parse(raw []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config.yaml: %w", err)
	}

	// godotenv.Load never overwrites variables that are already set.
	_ = godotenv.Load()

	if v := os.Getenv("FUND_API_URL"); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	cfg.URL = strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if cfg.URL == "" {
		return nil, fmt.Errorf("backend url is required (config.yaml url or FUND_API_URL)")
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Level returns the configured logrus level
func (c Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
