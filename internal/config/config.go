package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config contains runtime configuration required by the service.
type Config struct {
	HTTPAddr    string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBURL       string     `env:"DB_URL"`
	APIKeysRaw  string     `env:"API_KEYS"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	ResourceDir string     `env:"RESOURCE_DIR"`

	APIKeys map[string]string // apiKey -> owner, filled from APIKeysRaw
}

// Load reads configuration from environment variables.
// API_KEYS format: "owner1:key1,owner2:key2"
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}

	keys, err := ParseAPIKeys(cfg.APIKeysRaw)
	if err != nil {
		return Config{}, err
	}

	// Local dev fallback so the service runs out-of-the-box.
	if len(keys) == 0 {
		keys["tenant-key-123"] = "geode"
	}
	cfg.APIKeys = keys

	return cfg, nil
}

// ParseAPIKeys turns "owner:key,owner:key" into a key -> owner map.
func ParseAPIKeys(raw string) (map[string]string, error) {
	keys := map[string]string{}
	for _, p := range strings.Split(strings.TrimSpace(raw), ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts := strings.SplitN(p, ":", 2)
		if len(parts) != 2 {
			return nil, errors.New(`API_KEYS must be "owner:key,owner:key"`)
		}
		owner := strings.TrimSpace(parts[0])
		key := strings.TrimSpace(parts[1])
		if owner == "" || key == "" {
			return nil, errors.New(`API_KEYS must be "owner:key,owner:key"`)
		}
		keys[key] = owner
	}
	return keys, nil
}
