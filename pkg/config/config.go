package config

import (
	"github.com/mhermans/dirmimic/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Inventory   InventoryConfig   `yaml:"inventory"`
	Mirror      MirrorConfig      `yaml:"mirror"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// InventoryConfig holds inventory-creation settings
type InventoryConfig struct {
	// Level is the default identification level for new inventories
	Level int `yaml:"level"`
}

// MirrorConfig holds mirror-run settings
type MirrorConfig struct {
	// DeleteExtra removes target files the inventory does not demand
	DeleteExtra bool `yaml:"delete_extra"`
}

// PerformanceConfig holds performance-related settings
type PerformanceConfig struct {
	// BufferSize is the read buffer used when fingerprinting files
	BufferSize int `yaml:"buffer_size"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show a progress bar while hashing
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Format string `yaml:"format"` // "json" or "text"
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	File   string `yaml:"file"`   // Log file path (empty = logging disabled)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Inventory: InventoryConfig{
			Level: int(models.LevelNameSize),
		},
		Mirror: MirrorConfig{
			DeleteExtra: false,
		},
		Performance: PerformanceConfig{
			BufferSize: 65536,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Format: "text",
			Level:  "info",
			File:   "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !models.IdentityLevel(c.Inventory.Level).Valid() {
		return &models.ValidationError{
			Field:   "inventory.level",
			Message: "must be 1, 2 or 3",
		}
	}

	if c.Performance.BufferSize < 1024 {
		return &models.ValidationError{
			Field:   "performance.buffer_size",
			Message: "must be at least 1024 bytes",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
