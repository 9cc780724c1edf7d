package inventory

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mhermans/dirmimic/pkg/models"
)

// Write serializes records as newline-delimited JSON, one object per
// line. Fingerprint fields above the given level are stripped, so an
// inventory never carries more identity data than its level implies.
func Write(w io.Writer, records []models.FileRecord, level models.IdentityLevel) error {
	if !level.Valid() {
		return fmt.Errorf("invalid identity level: %d", level)
	}

	enc := json.NewEncoder(w)
	for i := range records {
		record := records[i]
		if level < models.LevelSampleHash {
			record.SampleSHA1 = ""
		}
		if level < models.LevelFullHash {
			record.FullSHA1 = ""
		}

		if err := enc.Encode(&record); err != nil {
			return fmt.Errorf("failed to write inventory record: %w", err)
		}
	}

	return nil
}
