package output

import (
	"encoding/json"
	"io"

	"github.com/mhermans/dirmimic/pkg/models"
)

// JSONFormatter renders a mirror report as JSON for automation
type JSONFormatter struct{}

// jsonReport wraps the report with fields that need custom encoding
type jsonReport struct {
	*models.MirrorReport
	DurationMs int64 `json:"duration_ms"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Write renders the report as indented JSON
func (f *JSONFormatter) Write(w io.Writer, report *models.MirrorReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&jsonReport{
		MirrorReport: report,
		DurationMs:   report.Duration.Milliseconds(),
	})
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
