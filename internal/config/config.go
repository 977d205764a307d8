package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backend names for the key-value store.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

type Config struct {
	// StateDir holds the store, the log file, and anything else the app
	// persists. Defaults to ~/.trizen.
	StateDir string `yaml:"state_dir"`
	// Backend selects the key-value store implementation: "sqlite" or
	// "file".
	Backend string `yaml:"backend"`
	// PollIntervalSeconds drives the completed screen's refresh timer.
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
	// LogFile overrides the default <state_dir>/trizen.log location.
	LogFile string `yaml:"log_file"`
}

func Default() Config {
	return Config{
		StateDir:            defaultStateDir(),
		Backend:             BackendSQLite,
		PollIntervalSeconds: 1,
	}
}

// DefaultPath is the config file location: ~/.trizen/config.yaml.
func DefaultPath() string {
	return filepath.Join(defaultStateDir(), "config.yaml")
}

// Load reads the YAML config at path (a missing file is fine) and applies
// TRIZEN_* environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg = FromEnv(cfg)
	if cfg.Backend != BackendSQLite && cfg.Backend != BackendFile {
		return Config{}, fmt.Errorf("config: unknown backend %q", cfg.Backend)
	}
	if cfg.PollIntervalSeconds <= 0 {
		cfg.PollIntervalSeconds = 1
	}
	return cfg, nil
}

func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvStr("TRIZEN_STATE_DIR"); ok {
		cfg.StateDir = v
	}
	if v, ok := getEnvStr("TRIZEN_BACKEND"); ok {
		cfg.Backend = strings.ToLower(v)
	}
	if v, ok := getEnvInt("TRIZEN_POLL_INTERVAL_SECONDS"); ok && v > 0 {
		cfg.PollIntervalSeconds = v
	}
	if v, ok := getEnvStr("TRIZEN_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	return cfg
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".trizen"
	}
	return filepath.Join(home, ".trizen")
}

func getEnvStr(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
