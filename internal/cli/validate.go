package cli

import (
	"fmt"
	"os"

	"github.com/mhermans/dirmimic/pkg/config"
	"github.com/mhermans/dirmimic/pkg/logging"
	"github.com/mhermans/dirmimic/pkg/models"
)

// validateDirectory checks that a path exists and is a directory
func validateDirectory(role, path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s directory does not exist: %s", role, path)
	}
	if err != nil {
		return fmt.Errorf("failed to access %s directory: %w", role, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s path is not a directory: %s", role, path)
	}
	return nil
}

// validateLevel checks an explicit identification level flag.
// allowAuto permits 0, meaning infer from the inventory.
func validateLevel(level int, allowAuto bool) error {
	if allowAuto && level == int(models.LevelAuto) {
		return nil
	}
	if !models.IdentityLevel(level).Valid() {
		return fmt.Errorf("invalid identification level: %d (valid: 1, 2, 3)", level)
	}
	return nil
}

// validateOutputFormat checks an output format flag
func validateOutputFormat(format string) error {
	if format != "human" && format != "json" {
		return fmt.Errorf("invalid output format: %s (valid: human, json)", format)
	}
	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// createLogger creates a logger from the logging flags, falling back to
// the config file settings. Without a log file, logging is disabled.
func createLogger(logFile, logFormat, logLevel string, cfg *config.Config) (logging.Logger, error) {
	if logFile == "" {
		logFile = cfg.Logging.File
	}
	if logFile == "" {
		return logging.NewNullLogger(), nil
	}

	if logFormat == "" {
		logFormat = cfg.Logging.Format
	}
	if logLevel == "" {
		logLevel = cfg.Logging.Level
	}

	var format logging.Format
	switch logFormat {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       logFile,
		Format:     format,
		Level:      logging.ParseLevel(logLevel),
		MaxSize:    10 * 1024 * 1024, // 10 MB
		MaxBackups: 5,
	})
}
