package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhermans/dirmimic/pkg/inventory"
	"github.com/mhermans/dirmimic/pkg/logging"
	"github.com/mhermans/dirmimic/pkg/models"
	"github.com/mhermans/dirmimic/pkg/scan"
	"github.com/mhermans/dirmimic/pkg/storage"
)

// InventoryFlags holds inventory command flags
type InventoryFlags struct {
	Output string
	Level  int

	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var inventoryFlags InventoryFlags

// NewInventoryCommand creates the inventory command
func NewInventoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory <source_dir>",
		Short: "Record the contents of a directory tree",
		Long: `Scan a source directory and write its inventory: one JSON line per
file recording where it lives and how to identify it. The identification
level controls precision: 1 = name+size, 2 = +sample hash of the first
and last 64KiB, 3 = +full content hash.`,
		Args: cobra.ExactArgs(1),
		RunE: runInventory,
	}

	cmd.Flags().StringVarP(&inventoryFlags.Output, "output", "o", "", "output inventory file (default: inventory-<timestamp>.jsonl, \"-\" for stdout)")
	cmd.Flags().IntVarP(&inventoryFlags.Level, "level", "L", 0, "identification level: 1, 2 or 3 (default from config)")

	cmd.Flags().StringVar(&inventoryFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&inventoryFlags.LogFormat, "log-format", "", "log format: text, json")
	cmd.Flags().StringVar(&inventoryFlags.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

func runInventory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sourceDir := args[0]
	if err := validateDirectory("source", sourceDir); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := models.IdentityLevel(inventoryFlags.Level)
	if level == models.LevelAuto {
		level = models.IdentityLevel(cfg.Inventory.Level)
	}
	if err := validateLevel(int(level), false); err != nil {
		return err
	}

	logger, err := createLogger(inventoryFlags.LogFile, inventoryFlags.LogFormat, inventoryFlags.LogLevel, cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	source, err := storage.NewLocal(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to open source directory: %w", err)
	}
	defer source.Close()

	if globalFlags.Verbose {
		fmt.Fprintf(os.Stderr, "Scanning %s with %s identification...\n", source.Root(), level)
	}

	scanner, err := scan.NewScanner(source, level, logger, scan.Options{
		BufferSize:   cfg.Performance.BufferSize,
		ShowProgress: cfg.Output.Progress && !globalFlags.Quiet,
	})
	if err != nil {
		return err
	}

	records, err := scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	outputPath := inventoryFlags.Output
	writer := os.Stdout
	if outputPath != "-" {
		if outputPath == "" {
			outputPath = time.Now().Format("inventory-20060102-150405.jsonl")
		}
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		writer = file
	}

	if err := inventory.Write(writer, records, level); err != nil {
		return err
	}

	logger.Info(ctx, "inventory written", logging.Fields{
		"source": source.Root(),
		"files":  len(records),
		"level":  int(level),
	})

	if !globalFlags.Quiet && outputPath != "-" {
		fmt.Printf("Inventory complete: %d files processed\n", len(records))
		fmt.Printf("Output written to: %s\n", outputPath)
	}

	return nil
}
