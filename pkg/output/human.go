package output

import (
	"fmt"
	"io"
	"time"

	"github.com/mhermans/dirmimic/pkg/models"
)

// HumanFormatter renders a mirror report in human-readable form
type HumanFormatter struct{}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Write renders the report
func (f *HumanFormatter) Write(w io.Writer, report *models.MirrorReport) error {
	fmt.Fprintf(w, "File analysis complete:\n")
	fmt.Fprintf(w, "  Unchanged:           %d\n", report.Summary.Unchanged)
	fmt.Fprintf(w, "  Moves:               %d\n", report.Summary.Moves)
	fmt.Fprintf(w, "  Copies:              %d\n", report.Summary.Copies)
	fmt.Fprintf(w, "  Missing from target: %d\n", report.Summary.Missing)
	fmt.Fprintf(w, "  Extra in target:     %d", report.Summary.Extra)
	if report.Summary.Extra > 0 && report.Summary.Deletes == 0 {
		fmt.Fprintf(w, " (kept, use --delete-extra to remove)")
	}
	fmt.Fprintf(w, "\n")

	if report.Summary.Deletes > 0 {
		fmt.Fprintf(w, "  Deletes:             %d\n", report.Summary.Deletes)
	}

	if !report.DryRun {
		fmt.Fprintf(w, "\nMirror completed in %s\n", report.Duration.Round(time.Millisecond))
	}

	if len(report.Errors) > 0 {
		fmt.Fprintf(w, "\nErrors:\n")
		for _, opErr := range report.Errors {
			fmt.Fprintf(w, "  %s %s: %s\n", opErr.Op.Kind, describeOp(opErr.Op), opErr.Error)
		}
	}

	fmt.Fprintf(w, "\nStatus: %s\n", report.Status)

	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// describeOp summarizes an operation's paths for error listings
func describeOp(op models.Operation) string {
	switch op.Kind {
	case models.OpMove, models.OpCopy:
		return op.From + " -> " + op.To
	case models.OpEnsureDir:
		return op.To
	default:
		return op.From
	}
}
