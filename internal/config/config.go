// Package config loads service configuration from an optional YAML file,
// with environment variables taking precedence for deploy-time settings.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string   `yaml:"port" validate:"required"`
	FixturesDir string   `yaml:"fixtures_dir"`
	CORSOrigins []string `yaml:"cors_origins"`
	LiveTTL     Duration `yaml:"live_cache_ttl"`
}

// Duration accepts "10m"-style strings in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

func defaults() *Config {
	return &Config{
		Port:        "8081",
		CORSOrigins: []string{"http://localhost:4200"},
		LiveTTL:     Duration(10 * time.Minute),
	}
}

// Load reads the config file at path when it exists and applies env
// overrides (PORT, FIXTURES_DIR, CORS_ORIGINS). A missing file is fine;
// defaults carry the service.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dir := os.Getenv("FIXTURES_DIR"); dir != "" {
		cfg.FixturesDir = dir
	}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
