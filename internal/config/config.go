package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const rcName = ".selectlistrc"

// Config holds the demo program settings. File values are overridden by
// SELECTLIST_* environment variables.
type Config struct {
	Path        string
	EntriesFile string
	Dev         bool
	LogFile     string
	LogLevel    string
	LogVerbose  bool
}

// DefaultPath returns ~/.selectlistrc, or ./.selectlistrc without a home dir.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return rcName
	}
	return filepath.Join(home, rcName)
}

// Load reads KEY=VALUE lines from path. A missing file is not an error; the
// returned config then only carries environment values.
func Load(path string) (Config, error) {
	cfg := Config{Path: path}
	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := parse(f, &cfg); err != nil {
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("open %s: %w", path, err)
	}
	applyEnv(&cfg)
	return cfg, nil
}

func parse(f *os.File, cfg *Config) error {
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		k, v, ok := strings.Cut(text, "=")
		if !ok {
			return fmt.Errorf("line %d: expected KEY=VALUE", line)
		}
		set(cfg, strings.TrimSpace(k), strings.TrimSpace(v))
	}
	return sc.Err()
}

func set(cfg *Config, key, val string) {
	switch strings.ToUpper(key) {
	case "ENTRIES_FILE":
		cfg.EntriesFile = val
	case "DEV":
		cfg.Dev = EnableFlag(val)
	case "LOG_FILE":
		cfg.LogFile = val
	case "LOG_LEVEL":
		cfg.LogLevel = val
	case "LOG_VERBOSE":
		cfg.LogVerbose = EnableFlag(val)
	}
}

func applyEnv(cfg *Config) {
	for _, key := range []string{"ENTRIES_FILE", "DEV", "LOG_FILE", "LOG_LEVEL", "LOG_VERBOSE"} {
		env := "SELECTLIST_" + key
		if key == "ENTRIES_FILE" {
			env = "SELECTLIST_ENTRIES"
		}
		if v, ok := os.LookupEnv(env); ok {
			set(cfg, key, strings.TrimSpace(v))
		}
	}
}

// EnableFlag returns true for common truthy values: 1, true, yes (case-insensitive)
func EnableFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "enable", "enabled":
		return true
	default:
		return false
	}
}
