// Package config provides configuration loading for searchbox using TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"searchbox/lineedit"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Editor settings
type Editor struct {
	Scheme string `toml:"scheme"` // "emacs" or "vim"
}

// Prompt settings
type Prompt struct {
	Symbol      string `toml:"symbol"`      // drawn before the input
	Placeholder string `toml:"placeholder"` // shown dimmed while the input is empty
}

// Input settings
type Input struct {
	ReadBuffer int `toml:"readBuffer"` // bytes read from the terminal per key event
}

// Config is the main configuration struct
type Config struct {
	Editor Editor `toml:"editor"`
	Prompt Prompt `toml:"prompt"`
	Input  Input  `toml:"input"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Editor: Editor{
			Scheme: "emacs",
		},
		Prompt: Prompt{
			Symbol:      "> ",
			Placeholder: "Search...",
		},
		Input: Input{
			ReadBuffer: 64,
		},
	}
}

// configDir returns the configuration directory path.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "searchbox"), nil
}

// ConfigPath returns the path to the user's config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads configuration, layering user config on top of defaults.
// Returns the default config if no user config exists.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return Default(), nil // Return defaults if we can't determine path
	}

	// Check if user config exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads the config at path on top of defaults and validates it.
func LoadFile(path string) (*Config, error) {
	userCfg, err := loadFromTOML(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	cfg := merge(Default(), userCfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	return cfg, nil
}

// loadFromTOML loads a TOML config file and returns the config.
func loadFromTOML(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	return &cfg, nil
}

// merge layers user config on top of defaults.
// Only non-zero values from user config override defaults.
func merge(defaults, user *Config) *Config {
	result := *defaults

	if user.Editor.Scheme != "" {
		result.Editor.Scheme = user.Editor.Scheme
	}
	if user.Prompt.Symbol != "" {
		result.Prompt.Symbol = user.Prompt.Symbol
	}
	if user.Prompt.Placeholder != "" {
		result.Prompt.Placeholder = user.Prompt.Placeholder
	}
	if user.Input.ReadBuffer != 0 {
		result.Input.ReadBuffer = user.Input.ReadBuffer
	}

	return &result
}

// Validate checks values the program cannot run with.
func (c *Config) Validate() error {
	if _, err := lineedit.SchemeByName(c.Editor.Scheme); err != nil {
		return fmt.Errorf("%w: editor.scheme: %w", ErrInvalid, err)
	}
	// Escape sequences such as ESC[3;5~ must fit in one read.
	if c.Input.ReadBuffer < 8 {
		return fmt.Errorf("%w: input.readBuffer must be at least 8, got %d", ErrInvalid, c.Input.ReadBuffer)
	}
	return nil
}

// DefaultTOML returns the default configuration as a TOML string.
// Used for --init-config to generate a user config file.
func DefaultTOML() string {
	return `# searchbox configuration
# Save to ~/.config/searchbox/config.toml and customize
# Only include settings you want to change from defaults

# Editor settings
[editor]
scheme = "emacs"              # "emacs" or "vim"

# Prompt settings
[prompt]
symbol = "> "                 # Drawn before the input
placeholder = "Search..."     # Shown dimmed while the input is empty

# Terminal input
[input]
readBuffer = 64               # Bytes read per key event (pastes larger than this arrive in pieces)
`
}

// FormatError formats a configuration error for user display.
func FormatError(err error) string {
	return fmt.Sprintf("Configuration error:\n\n%s", err.Error())
}
