package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the assembler's configuration
type Config struct {
	// Symtab settings
	Symtab struct {
		MnemonicBuckets uint32 `toml:"mnemonic_buckets"`
		RegisterBuckets uint32 `toml:"register_buckets"`
		LabelBuckets    uint32 `toml:"label_buckets"`
	} `toml:"symtab"`

	// Addressing settings
	Addressing struct {
		ByteMode      bool   `toml:"byte_mode"` // false: word addressing (default), true: byte addressing
		DefaultOrigin uint16 `toml:"default_origin"`
	} `toml:"addressing"`

	// Output settings
	Output struct {
		Format        string `toml:"format"` // currently only "ihex"
		EmitEOFRecord bool   `toml:"emit_eof_record"`
	} `toml:"output"`

	// Diagnostics settings
	Diagnostics struct {
		Verbose     bool `toml:"verbose"`
		ColorOutput bool `toml:"color_output"`
	} `toml:"diagnostics"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Symtab defaults
	cfg.Symtab.MnemonicBuckets = 64
	cfg.Symtab.RegisterBuckets = 64
	cfg.Symtab.LabelBuckets = 128

	// Addressing defaults
	cfg.Addressing.ByteMode = false
	cfg.Addressing.DefaultOrigin = 0x0000

	// Output defaults
	cfg.Output.Format = "ihex"
	cfg.Output.EmitEOFRecord = true

	// Diagnostics defaults
	cfg.Diagnostics.Verbose = false
	cfg.Diagnostics.ColorOutput = true

	return cfg
}

// GetConfigPath returns the platform-specific config file path
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\rvasm\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "rvasm")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/rvasm/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "rvasm")

	default:
		// Unknown platform: use current directory
		return "config.toml"
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0750); err != nil {
		// If we can't create the directory, fall back to current directory
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific log directory path
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\rvasm\logs
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "rvasm", "logs")

	case "darwin", "linux":
		// macOS/Linux: ~/.local/share/rvasm/logs
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "rvasm", "logs")

	default:
		return "logs"
	}

	// Ensure directory exists
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read and parse config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	// Encode to TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
