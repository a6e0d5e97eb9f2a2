// Package config loads layered settings for the automata command.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override settings, e.g.
// AUTOMATA_MATCH_ENGINE=dfa.
const EnvPrefix = "AUTOMATA_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// ErrInvalid reports a setting outside its allowed values.
var ErrInvalid = errors.New("invalid configuration")

// Config is the merged configuration. Field tags name the keys.
type Config struct {
	Log   LogConfig   `koanf:"log"`
	Match MatchConfig `koanf:"match"`
	Dot   DotConfig   `koanf:"dot"`
	Gen   GenConfig   `koanf:"gen"`
}

type LogConfig struct {
	Verbosity int    `koanf:"verbosity"`
	File      string `koanf:"file"`
}

// MatchConfig selects how inputs are matched. Engine "dfa" determinizes
// designs before matching.
type MatchConfig struct {
	Engine  string `koanf:"engine"`
	Workers int    `koanf:"workers"`
}

type DotConfig struct {
	RankDir string `koanf:"rankdir"`
}

type GenConfig struct {
	Package string `koanf:"package"`
	Func    string `koanf:"func"`
}

// rawBytesProvider implements koanf.Provider for in-memory bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// UserConfigPath is the per-user config file, which need not exist.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "automata", "config.toml")
}

// Load merges, lowest priority first: embedded defaults, the user config
// file, the file at path (when not empty) and AUTOMATA_* variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if user := UserConfigPath(); fileExists(user) {
		if err := k.Load(file.Provider(user), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load user config from %s: %w", user, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps AUTOMATA_MATCH_ENGINE to match.engine. Only the first
// underscore separates section from key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Validate rejects values outside their allowed ranges.
func (c *Config) Validate() error {
	switch c.Match.Engine {
	case "nfa", "dfa":
	default:
		return fmt.Errorf("%w: match.engine must be nfa or dfa, got %q", ErrInvalid, c.Match.Engine)
	}
	if c.Match.Workers < 0 {
		return fmt.Errorf("%w: match.workers must not be negative", ErrInvalid)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("%w: log.verbosity must not be negative", ErrInvalid)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
