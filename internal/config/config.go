// Package config loads and resolves the ecotrace configuration file.
//
// Configuration lives at ~/.ecotrace/config.yaml by default; the ECOTRACE_CONFIG
// environment variable or the --config flag point elsewhere. Sections merge
// shallowly: a key present in the file replaces the whole default section.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/greenloop/ecotrace/internal/logging"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "ECOTRACE_CONFIG"

// ErrNotFound reports a missing config file. Callers treat it as "use
// defaults" except for explicit --config paths.
var ErrNotFound = errors.New("config file not found")

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	EnableCORS bool   `yaml:"enable_cors"`
}

// OutputConfig configures CLI rendering defaults.
type OutputConfig struct {
	// Format is "table" or "json".
	Format string `yaml:"format"`
}

// Config is the full resolved configuration.
type Config struct {
	Logging logging.Config `yaml:"logging"`
	Server  ServerConfig   `yaml:"server"`
	Output  OutputConfig   `yaml:"output"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Logging: logging.Config{Level: "info", Format: "console"},
		Server:  ServerConfig{Host: "localhost", Port: 8080, EnableCORS: true},
		Output:  OutputConfig{Format: "table"},
	}
}

var (
	global   = Default() //nolint:gochecknoglobals // Resolved once at startup, read everywhere.
	globalMu sync.RWMutex //nolint:gochecknoglobals // Guards global.
)

// SetGlobal stores the resolved configuration for the process lifetime.
func SetGlobal(cfg Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = cfg
}

// GetGlobal returns a copy of the resolved configuration.
func GetGlobal() Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// DefaultPath returns the standard config file location, or an error when
// the home directory cannot be resolved.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".ecotrace", "config.yaml"), nil
}

// ResolvePath decides which config file to read: the flag value wins, then
// ECOTRACE_CONFIG, then the default location.
func ResolvePath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, nil
	}
	return DefaultPath()
}

// Load reads and merges the config file at path onto the defaults. A missing
// file returns the defaults together with ErrNotFound so callers can decide
// whether that is fatal.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := mergeYAML(&cfg, data); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Section key names used for shallow merge.
const (
	keyLogging = "logging"
	keyServer  = "server"
	keyOutput  = "output"
)

// mergeYAML replaces whole sections of cfg with the sections present in the
// YAML document. Unknown top-level keys are ignored, matching forward
// compatibility with newer config files.
func mergeYAML(cfg *Config, data []byte) error {
	var overlay map[string]yaml.Node
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return err
	}

	for key, node := range overlay {
		switch key {
		case keyLogging:
			var v logging.Config
			if err := node.Decode(&v); err != nil {
				return fmt.Errorf("section %q: %w", key, err)
			}
			cfg.Logging = v
		case keyServer:
			var v ServerConfig
			if err := node.Decode(&v); err != nil {
				return fmt.Errorf("section %q: %w", key, err)
			}
			cfg.Server = v
		case keyOutput:
			var v OutputConfig
			if err := node.Decode(&v); err != nil {
				return fmt.Errorf("section %q: %w", key, err)
			}
			cfg.Output = v
		}
	}
	return nil
}

// Validate checks field ranges after load.
func (c Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [0, 65535], got %d", c.Server.Port)
	}
	switch c.Output.Format {
	case "", "table", "json":
	default:
		return fmt.Errorf("output.format must be table or json, got %q", c.Output.Format)
	}
	return nil
}
