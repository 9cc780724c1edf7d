package models

import (
	"time"
)

// MirrorStatus represents the overall result of a mirror run
type MirrorStatus string

const (
	// StatusSuccess indicates all operations completed successfully
	StatusSuccess MirrorStatus = "success"
	// StatusPartial indicates some operations failed
	StatusPartial MirrorStatus = "partial"
	// StatusFailed indicates the run failed
	StatusFailed MirrorStatus = "failed"
)

// ExitCode returns the process exit code for the status
func (s MirrorStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	default:
		return 2
	}
}

// Summary holds the classification and plan counts of a mirror run
type Summary struct {
	// Classification outcome, per path
	Unchanged int `json:"unchanged"`
	Missing   int `json:"missing"`
	Extra     int `json:"extra"`

	// Planned operations after move folding
	Moves   int `json:"moves"`
	Copies  int `json:"copies"`
	Deletes int `json:"deletes"`
}

// OperationError records one failed operation during plan execution
type OperationError struct {
	Op        Operation `json:"operation"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

// MirrorReport represents the results of one mirror run
type MirrorReport struct {
	// Run details
	RunID         string        `json:"run_id"`
	InventoryPath string        `json:"inventory"`
	TargetPath    string        `json:"target"`
	Level         IdentityLevel `json:"level"`
	DryRun        bool          `json:"dry_run"`

	// Timing
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"-"`

	// Record counts per side
	InventoryFiles int `json:"inventory_files"`
	TargetFiles    int `json:"target_files"`

	// Outcome
	Summary Summary          `json:"summary"`
	Errors  []OperationError `json:"errors,omitempty"`
	Status  MirrorStatus     `json:"status"`
}
