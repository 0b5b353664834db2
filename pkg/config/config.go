// Package config provides configuration management.
package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration settings
type Config struct {
	// Documentation fields (present in JSON only)
	LoggingDoc string `json:"// logging,omitempty"`
	SeedDoc    string `json:"// seed,omitempty"`
	UIDoc      string `json:"// ui_settings,omitempty"`

	// Logging
	LogLevel string `json:"log_level" env:"LEMONADE_LOG_LEVEL"`
	LogDir   string `json:"log_dir" env:"LEMONADE_LOG_DIR"`

	// Seed for the squeeze-target draw. 0 uses system randomness.
	Seed uint64 `json:"seed,omitempty" env:"LEMONADE_SEED"`

	// UI settings
	UI UIConfig `json:"ui"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	ShowDescriptions bool   `json:"show_descriptions" env:"LEMONADE_SHOW_DESCRIPTIONS"` // Caption each illustration with its description
	Mouse            bool   `json:"mouse" env:"LEMONADE_MOUSE"`                         // Accept mouse presses as taps
	AltScreen        bool   `json:"alt_screen" env:"LEMONADE_ALT_SCREEN"`               // Draw edge-to-edge on the alternate screen
	TextColor        string `json:"text_color"`                                         // "#RRGGBB" or ANSI 0-255
	FrameColor       string `json:"frame_color"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LoggingDoc: "log_level: DEBUG, INFO, WARN or ERROR. Logs go to <log_dir>/lemonade.log",
		SeedDoc:    "Non-zero seed makes the squeeze count reproducible",
		UIDoc:      "Terminal UI colours and input settings",

		LogLevel: "INFO",
		LogDir:   ".lemonade",

		UI: UIConfig{
			ShowDescriptions: false,
			Mouse:            true,
			AltScreen:        true,
			TextColor:        "#4CAF50",
			FrameColor:       "#00FF00",
		},
	}
}

// GetConfigPaths returns a prioritized list of configuration file paths
func GetConfigPaths(cliPath string) []string {
	var paths []string

	// 1. CLI Override
	if cliPath != "" {
		paths = append(paths, cliPath)
		return paths // If explicit, only use that
	}

	// 2. Project local paths
	paths = append(paths, ".lemonade/config.json")
	paths = append(paths, "config.json")

	// 3. User global path
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".lemonade", "config.json"))
	}

	return paths
}

// Load loads configuration from the first available path in the prioritized
// list. The returned path is empty when defaults were used.
func Load(cliPath string) (*Config, string, error) {
	loadDotEnv(".env")

	for _, path := range GetConfigPaths(cliPath) {
		data, err := os.ReadFile(path)
		if err != nil {
			if cliPath != "" {
				return nil, path, fmt.Errorf("read config file %s: %w", path, err)
			}
			continue
		}
		cfg := DefaultConfig()
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, path, fmt.Errorf("invalid JSON in config file %s: %w", path, err)
		}
		if err := applyEnvOverrides(cfg); err != nil {
			return nil, path, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, path, fmt.Errorf("configuration validation failed in %s: %w", path, err)
		}
		return cfg, path, nil
	}

	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("default configuration validation failed: %w", err)
	}
	return cfg, "", nil
}

// loadDotEnv copies LEMONADE_* keys from a .env file into the environment
// without overriding variables that are already set.
func loadDotEnv(envFile string) {
	file, err := os.Open(envFile)
	if err != nil {
		return // .env doesn't exist, that's ok
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		// Only our own keys, to prevent env injection
		if !strings.HasPrefix(key, "LEMONADE_") {
			continue
		}

		if _, set := os.LookupEnv(key); !set {
			if err := os.Setenv(key, value); err != nil {
				fmt.Printf("Warning: failed to set environment variable %s: %v\n", key, err)
			}
		}
	}
}

func applyEnvOverrides(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// logLevels are the values Validate accepts.
var logLevels = map[string]bool{"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if !logLevels[strings.ToUpper(c.LogLevel)] {
		return fmt.Errorf("log_level must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel)
	}
	if strings.TrimSpace(c.LogDir) == "" {
		return fmt.Errorf("log_dir is required")
	}
	if err := validateColor(c.UI.TextColor); err != nil {
		return fmt.Errorf("invalid ui.text_color: %w", err)
	}
	if err := validateColor(c.UI.FrameColor); err != nil {
		return fmt.Errorf("invalid ui.frame_color: %w", err)
	}
	return nil
}

// validateColor accepts "#RRGGBB" or an ANSI 256 palette index.
func validateColor(s string) error {
	if s == "" {
		return fmt.Errorf("color is required")
	}
	if strings.HasPrefix(s, "#") {
		if !hexColor.MatchString(s) {
			return fmt.Errorf("%q is not a #RRGGBB color", s)
		}
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return fmt.Errorf("%q is neither #RRGGBB nor an ANSI index 0-255", s)
	}
	return nil
}
