package reconcile

import (
	"sort"

	"github.com/mhermans/dirmimic/internal/platform"
	"github.com/mhermans/dirmimic/pkg/models"
)

// Plan is the ordered, side-effect-free list of abstract operations
// needed to restore the recorded layout. It carries no dry-run vs.
// execute decision; that belongs to the consumer.
type Plan struct {
	// Operations in execution order: ensure-directory entries first
	// (deduplicated), then copies, then moves, then deletes. Copies run
	// before moves because a residual copy keeps the source the
	// classifier chose, and a move of the same identity may consume that
	// very path; moves precede deletes for the same reason.
	Operations []models.Operation

	// Unchanged paths, echoed by renderers when EchoUnchanged is set
	Unchanged []string

	// Missing paths are diagnostics only; no operation can satisfy them
	Missing []string

	// EchoUnchanged requests that renderers list unchanged files
	EchoUnchanged bool
}

// PlanOptions control plan assembly
type PlanOptions struct {
	// EchoUnchanged lists unchanged files in rendered output
	EchoUnchanged bool

	// DeleteExtras includes residual deletes in the plan. Move folding
	// happens regardless; only plain deletes are gated.
	DeleteExtras bool
}

// BuildPlan assembles the final operation plan from a classification
// result and its optimized operation sets
func BuildPlan(result *Result, set *PlanSet, opts PlanOptions) *Plan {
	plan := &Plan{EchoUnchanged: opts.EchoUnchanged}

	for _, group := range result.Groups {
		plan.Unchanged = append(plan.Unchanged, group.Unchanged...)
		plan.Missing = append(plan.Missing, group.Missing...)
	}
	sort.Strings(plan.Unchanged)
	sort.Strings(plan.Missing)

	// One ensure-directory per distinct destination parent. The empty
	// parent (tree root) is kept as a documented no-op.
	seen := make(map[string]bool)
	var parents []string
	addParent := func(dest string) {
		parent := platform.Parent(dest)
		if !seen[parent] {
			seen[parent] = true
			parents = append(parents, parent)
		}
	}
	for _, move := range set.Moves {
		addParent(move.Dest)
	}
	for _, entry := range set.Copies {
		addParent(entry.Dest)
	}
	sort.Strings(parents)

	for _, parent := range parents {
		plan.Operations = append(plan.Operations, models.EnsureDir(parent))
	}
	for _, entry := range set.Copies {
		plan.Operations = append(plan.Operations, models.Copy(entry.Source, entry.Dest))
	}
	for _, move := range set.Moves {
		plan.Operations = append(plan.Operations, models.Move(move.Source, move.Dest))
	}
	if opts.DeleteExtras {
		for _, path := range set.Deletes {
			plan.Operations = append(plan.Operations, models.Delete(path))
		}
	}

	return plan
}

// Empty reports whether the plan contains no actionable operation
func (p *Plan) Empty() bool {
	for _, op := range p.Operations {
		if op.Kind != models.OpEnsureDir {
			return false
		}
	}
	return true
}
