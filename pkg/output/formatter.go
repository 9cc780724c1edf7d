package output

import (
	"io"

	"github.com/mhermans/dirmimic/pkg/models"
)

// Formatter defines the interface for mirror report output.
// Implementations include human-readable and JSON formatters.
type Formatter interface {
	// Write renders the report to the writer
	Write(w io.Writer, report *models.MirrorReport) error

	// Name returns the formatter name
	Name() string
}
