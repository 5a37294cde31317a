// Package config loads gamedata settings from gamedata.yaml, an optional
// .env file and GAME_DATA_* environment variables, in increasing order of
// precedence. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/gamedata/pkg/gamedata"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const (
	ConfigFileName = "gamedata.yaml"
	DotenvFileName = ".env"
)

// Config holds loader settings. Empty fields mean "use the default".
type Config struct {
	RootPath   string   `yaml:"root_path"   env:"GAME_DATA_ROOT_PATH"`
	LocalesDir string   `yaml:"locales_dir" env:"GAME_DATA_LOCALES_DIR"`
	Locales    []string `yaml:"locales"     env:"GAME_DATA_LOCALES"      envSeparator:","`
	Concurrent bool     `yaml:"concurrent"  env:"GAME_DATA_CONCURRENT"`
	LogFile    string   `yaml:"log_file"    env:"GAME_DATA_LOG_FILE"`
}

// Load reads gamedata.yaml from dir.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", gamedata.ErrConfiguration, configPath, err)
	}
	return &cfg, nil
}

// Resolve builds the effective configuration for dir: gamedata.yaml if
// present, then dir/.env (which never overrides variables already set),
// then the GAME_DATA_* environment.
func Resolve(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Is(err, ErrConfigNotFound) {
		cfg = &Config{}
	} else if err != nil {
		return nil, err
	}

	if err := LoadDotenvIfPresent(filepath.Join(dir, DotenvFileName)); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: parse env: %w", gamedata.ErrConfiguration, err)
	}
	return cfg, nil
}

// LoadDotenvIfPresent loads each existing path into the process environment.
// Missing files are skipped.
func LoadDotenvIfPresent(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("stat dotenv file %s: %w", path, err)
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("%w: load dotenv file %s: %w", gamedata.ErrConfiguration, path, err)
		}
	}
	return nil
}

// GameLocales parses Locales. An empty list selects every game locale.
// Unknown or repeated locales are configuration errors.
func (c *Config) GameLocales() ([]gamedata.GameLocale, error) {
	if len(c.Locales) == 0 {
		return gamedata.GameLocales(), nil
	}

	seen := make(map[gamedata.GameLocale]bool, len(c.Locales))
	out := make([]gamedata.GameLocale, 0, len(c.Locales))
	for _, s := range c.Locales {
		if strings.TrimSpace(s) == "" {
			continue
		}
		l, err := gamedata.ParseGameLocale(s)
		if err != nil {
			return nil, err
		}
		if seen[l] {
			return nil, fmt.Errorf("%w: locale %s listed twice", gamedata.ErrConfiguration, l)
		}
		seen[l] = true
		out = append(out, l)
	}
	if len(out) == 0 {
		return gamedata.GameLocales(), nil
	}
	return out, nil
}

// EffectiveLocalesDir returns LocalesDir or the default.
func (c *Config) EffectiveLocalesDir() string {
	if c.LocalesDir == "" {
		return gamedata.DefaultLocalesDir
	}
	return c.LocalesDir
}
