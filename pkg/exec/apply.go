package exec

import (
	"context"
	"fmt"
	"time"

	"github.com/mhermans/dirmimic/pkg/logging"
	"github.com/mhermans/dirmimic/pkg/models"
	"github.com/mhermans/dirmimic/pkg/reconcile"
	"github.com/mhermans/dirmimic/pkg/storage"
)

// Applier executes a plan against a target backend. A failed operation
// is recorded and execution continues with the remaining operations;
// there is no rollback.
type Applier struct {
	backend storage.Backend
	logger  logging.Logger
}

// NewApplier creates an applier for the given target backend
func NewApplier(backend storage.Backend, logger logging.Logger) *Applier {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Applier{backend: backend, logger: logger}
}

// Apply performs every operation in plan order and returns the failures.
// A nil-length result means the whole plan succeeded.
func (a *Applier) Apply(ctx context.Context, plan *reconcile.Plan) []models.OperationError {
	var failures []models.OperationError

	for _, op := range plan.Operations {
		select {
		case <-ctx.Done():
			failures = append(failures, models.OperationError{
				Op:        op,
				Error:     ctx.Err().Error(),
				Timestamp: time.Now(),
			})
			return failures
		default:
		}

		if err := a.apply(ctx, op); err != nil {
			a.logger.Error(ctx, "operation failed", err, logging.Fields{
				"kind": string(op.Kind),
				"from": op.From,
				"to":   op.To,
			})
			failures = append(failures, models.OperationError{
				Op:        op,
				Error:     err.Error(),
				Timestamp: time.Now(),
			})
			continue
		}

		a.logger.Debug(ctx, "operation applied", logging.Fields{
			"kind": string(op.Kind),
			"from": op.From,
			"to":   op.To,
		})
	}

	return failures
}

// apply executes a single operation
func (a *Applier) apply(ctx context.Context, op models.Operation) error {
	switch op.Kind {
	case models.OpEnsureDir:
		return a.backend.MkdirAll(ctx, op.To)

	case models.OpMove:
		return a.backend.Rename(ctx, op.From, op.To)

	case models.OpCopy:
		reader, err := a.backend.Open(ctx, op.From)
		if err != nil {
			return err
		}
		defer reader.Close()
		return a.backend.Write(ctx, op.To, reader)

	case models.OpDelete:
		return a.backend.Delete(ctx, op.From)

	default:
		return fmt.Errorf("unknown operation kind: %s", op.Kind)
	}
}
