package exec

import (
	"fmt"
	"io"

	"github.com/mhermans/dirmimic/pkg/models"
	"github.com/mhermans/dirmimic/pkg/reconcile"
)

// Render prints a plan as shell-equivalent commands in plan order
// without touching the filesystem. Unchanged files are echoed first when
// the plan requests it; missing files are emitted as comments since no
// command can satisfy them.
func Render(w io.Writer, plan *reconcile.Plan) error {
	if plan.EchoUnchanged {
		for _, path := range plan.Unchanged {
			if _, err := fmt.Fprintf(w, "echo %s unchanged\n", path); err != nil {
				return err
			}
		}
	}

	for _, op := range plan.Operations {
		line, ok := renderOp(op)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	for _, path := range plan.Missing {
		if _, err := fmt.Fprintf(w, "# missing (no source available): %s\n", path); err != nil {
			return err
		}
	}

	return nil
}

// renderOp formats one operation as a command string. Ensuring the tree
// root produces no command.
func renderOp(op models.Operation) (string, bool) {
	switch op.Kind {
	case models.OpEnsureDir:
		if op.To == "" {
			return "", false
		}
		return "mkdir -p " + op.To, true
	case models.OpMove:
		return "mv " + op.From + " " + op.To, true
	case models.OpCopy:
		return "cp " + op.From + " " + op.To, true
	case models.OpDelete:
		return "rm " + op.From, true
	default:
		return "", false
	}
}
