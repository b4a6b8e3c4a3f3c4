package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config carries file- and environment-driven settings for the API process.
type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Postgres struct {
		DSN string `koanf:"dsn"`
	} `koanf:"postgres"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
	} `koanf:"redis"`

	Idempotency struct {
		TTL time.Duration `koanf:"ttl"`
	} `koanf:"idempotency"`

	Seed struct {
		SampleOrders bool `koanf:"sample_orders"`
	} `koanf:"seed"`
}

// LoadConfig layers configs/base.yaml, an optional per-environment file, and
// STOREFRONT_-prefixed environment variables (nested keys joined with __,
// e.g. STOREFRONT_POSTGRES__DSN).
func LoadConfig(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base config: %w", err)
	}
	// Per-environment overlay is optional for local runs.
	if envName != "" {
		_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())
	}
	if err := k.Load(env.Provider("STOREFRONT_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "STOREFRONT_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.App.HTTPAddr) == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Idempotency.TTL < 0 {
		return fmt.Errorf("idempotency.ttl must not be negative")
	}
	return nil
}
