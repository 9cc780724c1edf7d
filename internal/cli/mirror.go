package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mhermans/dirmimic/pkg/exec"
	"github.com/mhermans/dirmimic/pkg/inventory"
	"github.com/mhermans/dirmimic/pkg/logging"
	"github.com/mhermans/dirmimic/pkg/models"
	"github.com/mhermans/dirmimic/pkg/output"
	"github.com/mhermans/dirmimic/pkg/reconcile"
	"github.com/mhermans/dirmimic/pkg/scan"
	"github.com/mhermans/dirmimic/pkg/storage"
)

// MirrorFlags holds mirror command flags
type MirrorFlags struct {
	Inventory   string
	Level       int
	DoIt        bool
	DeleteExtra bool
	Output      string

	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var mirrorFlags MirrorFlags

// NewMirrorCommand creates the mirror command
func NewMirrorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror <target_dir>",
		Short: "Reconcile a target directory against an inventory",
		Long: `Scan the target directory, compare it against a recorded inventory and
compute the minimal set of move, copy and delete operations restoring
the recorded layout. By default the plan is printed as shell-equivalent
commands; --doit applies it to the filesystem.`,
		Args: cobra.ExactArgs(1),
		RunE: runMirror,
	}

	cmd.Flags().StringVar(&mirrorFlags.Inventory, "inventory", "", "inventory file to mirror from (required)")
	cmd.MarkFlagRequired("inventory")

	cmd.Flags().IntVarP(&mirrorFlags.Level, "level", "L", 0, "identification level: 1, 2 or 3 (default: infer from inventory)")
	cmd.Flags().BoolVar(&mirrorFlags.DoIt, "doit", false, "actually perform file operations (default is dry-run)")
	cmd.Flags().BoolVar(&mirrorFlags.DeleteExtra, "delete-extra", false, "delete files in target that are not in the inventory")
	cmd.Flags().StringVarP(&mirrorFlags.Output, "output", "o", "", "report format: human, json")

	cmd.Flags().StringVar(&mirrorFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&mirrorFlags.LogFormat, "log-format", "", "log format: text, json")
	cmd.Flags().StringVar(&mirrorFlags.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

func runMirror(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	targetDir := args[0]
	if err := validateDirectory("target", targetDir); err != nil {
		return err
	}
	if err := validateLevel(mirrorFlags.Level, true); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	format := mirrorFlags.Output
	if format == "" {
		format = cfg.Output.Format
	}
	if err := validateOutputFormat(format); err != nil {
		return err
	}

	logger, err := createLogger(mirrorFlags.LogFile, mirrorFlags.LogFormat, mirrorFlags.LogLevel, cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	runID := uuid.New().String()
	logger = logger.WithFields(logging.Fields{"run_id": runID})
	startTime := time.Now()

	// Load the inventory. Malformed lines are skipped with a warning;
	// only an unreadable file aborts the run.
	invFile, err := os.Open(mirrorFlags.Inventory)
	if err != nil {
		return fmt.Errorf("failed to open inventory file: %w", err)
	}
	invRecords, err := inventory.Load(invFile, func(line int, warnErr error) {
		fmt.Fprintf(os.Stderr, "Warning: skipping inventory line %d: %v\n", line, warnErr)
		logger.Warn(ctx, "skipping malformed inventory line", logging.Fields{
			"line":  line,
			"error": warnErr.Error(),
		})
	})
	invFile.Close()
	if err != nil {
		return err
	}

	// Resolve the identification level: an explicit flag wins, otherwise
	// infer it from the inventory's own fields. Without either the run
	// cannot proceed.
	level := models.IdentityLevel(mirrorFlags.Level)
	if level == models.LevelAuto {
		level, err = inventory.InferLevel(invRecords)
		if err != nil {
			return fmt.Errorf("failed to determine identification level: %w (use --level)", err)
		}
		if globalFlags.Verbose {
			fmt.Fprintf(os.Stderr, "Inferred identification level from inventory: %d\n", int(level))
		}
	}

	invSet, err := reconcile.NewRecordSet(invRecords, level)
	if err != nil {
		return fmt.Errorf("invalid inventory for level %d: %w", int(level), err)
	}

	// Scan the target at the same level
	target, err := storage.NewLocal(targetDir)
	if err != nil {
		return fmt.Errorf("failed to open target directory: %w", err)
	}
	defer target.Close()

	scanner, err := scan.NewScanner(target, level, logger, scan.Options{
		BufferSize:   cfg.Performance.BufferSize,
		ShowProgress: cfg.Output.Progress && !globalFlags.Quiet,
	})
	if err != nil {
		return err
	}

	tgtRecords, err := scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("target scan failed: %w", err)
	}

	tgtSet, err := reconcile.NewRecordSet(tgtRecords, level)
	if err != nil {
		return fmt.Errorf("target scan produced invalid records: %w", err)
	}

	// Reconcile: classify, fold copy+delete pairs into moves, assemble
	// the plan
	result := reconcile.Classify(invSet, tgtSet)
	planSet := reconcile.Optimize(result)

	deleteExtra := mirrorFlags.DeleteExtra || cfg.Mirror.DeleteExtra
	plan := reconcile.BuildPlan(result, planSet, reconcile.PlanOptions{
		EchoUnchanged: globalFlags.Verbose,
		DeleteExtras:  deleteExtra,
	})

	unchanged, _, missing, extras := result.Counts()
	report := &models.MirrorReport{
		RunID:          runID,
		InventoryPath:  mirrorFlags.Inventory,
		TargetPath:     target.Root(),
		Level:          level,
		DryRun:         !mirrorFlags.DoIt,
		StartTime:      startTime,
		InventoryFiles: invSet.Len(),
		TargetFiles:    tgtSet.Len(),
		Summary: models.Summary{
			Unchanged: unchanged,
			Missing:   missing,
			Extra:     extras,
			Moves:     len(planSet.Moves),
			Copies:    len(planSet.Copies),
		},
		Status: models.StatusSuccess,
	}
	if deleteExtra {
		report.Summary.Deletes = len(planSet.Deletes)
	}

	logger.Info(ctx, "reconciliation complete", logging.Fields{
		"unchanged": unchanged,
		"moves":     len(planSet.Moves),
		"copies":    len(planSet.Copies),
		"missing":   missing,
		"extra":     extras,
	})

	if mirrorFlags.DoIt {
		applier := exec.NewApplier(target, logger)
		failures := applier.Apply(ctx, plan)

		report.Errors = failures
		switch {
		case len(failures) == 0:
			report.Status = models.StatusSuccess
		case len(failures) < len(plan.Operations):
			report.Status = models.StatusPartial
		default:
			report.Status = models.StatusFailed
		}
	} else {
		if err := exec.Render(os.Stdout, plan); err != nil {
			return fmt.Errorf("failed to render plan: %w", err)
		}
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	var formatter output.Formatter
	switch format {
	case "json":
		formatter = output.NewJSONFormatter()
	default:
		formatter = output.NewHumanFormatter()
	}

	if !globalFlags.Quiet || report.Status != models.StatusSuccess {
		if err := formatter.Write(os.Stdout, report); err != nil {
			return err
		}
	}

	if code := report.Status.ExitCode(); code != 0 {
		logger.Close()
		os.Exit(code)
	}

	return nil
}
