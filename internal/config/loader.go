// internal/config/loader.go
//
// Layered configuration loader.
/*
Layers, lowest precedence first:

  1. Built-in defaults (see defaults()).
  2. Optional `.env` in the working directory; values land in the process
     environment and are picked up by layer 4.
  3. Optional YAML file: Options.File, else $RPICK_CONFIG, else
     $XDG_CONFIG_HOME/rpick/config.yaml when it exists.
  4. Environment variables prefixed `RPICK_`, where `__` maps to "."
     (e.g. `RPICK_CACHE__CAPACITY -> cache.capacity`).
  5. Options.Overrides, filled from command-line flags.

The merged tree is unmarshalled into Config and validated.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"github.com/kk-code-lab/rpick/internal/logging"
)

const envPrefix = "RPICK_"

// Options tells Load where to look and what the command line overrides.
type Options struct {
	File      string
	DotEnv    string
	Overrides map[string]any
}

func defaults() map[string]any {
	return map[string]any{
		"catalog.format":     "auto",
		"catalog.name_field": "name",
		"cache.capacity":     16,
		"cache.policy":       "fifo",
		"log.file":           logging.DefaultFile(),
		"log.level":          "info",
		"log.max_size_mb":    10,
		"log.max_backups":    3,
		"log.max_age_days":   14,
		"ui.print":           "name",
	}
}

// Load merges all layers and returns a validated Config.
func Load(opts Options) (*Config, error) {
	dotEnv := opts.DotEnv
	if dotEnv == "" {
		dotEnv = ".env"
	}
	if err := godotenv.Load(dotEnv); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", dotEnv, err)
	}

	k := koanf.New(".")
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("config default %s: %w", key, err)
		}
	}

	if path := configFile(opts.File); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, envPrefix), "__", "."))
	}), nil); err != nil {
		return nil, fmt.Errorf("config env overlay: %w", err)
	}

	for key, val := range opts.Overrides {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("config override %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}
	if err := validateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("config invalid: %w", err)
	}
	return &cfg, nil
}

// configFile resolves which YAML file to read, or "" for none. An explicit
// path must exist; the XDG default is optional.
func configFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("RPICK_CONFIG"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	candidate := filepath.Join(base, "rpick", "config.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}
