package inventory

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mhermans/dirmimic/pkg/models"
)

// maxLineSize bounds a single inventory line (1MiB); folder paths never
// come close to this
const maxLineSize = 1024 * 1024

// WarnFunc receives a warning for each malformed inventory line.
// The line is skipped and loading continues.
type WarnFunc func(line int, err error)

// Load reads a newline-delimited JSON inventory. Malformed lines are
// reported through warn and skipped rather than aborting the load;
// only an unreadable stream is an error.
func Load(r io.Reader, warn WarnFunc) ([]models.FileRecord, error) {
	var records []models.FileRecord

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var record models.FileRecord
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			if warn != nil {
				warn(lineNum, fmt.Errorf("malformed JSON: %w", err))
			}
			continue
		}
		if record.Filename == "" {
			if warn != nil {
				warn(lineNum, fmt.Errorf("record has no filename"))
			}
			continue
		}
		if record.Size < 0 {
			if warn != nil {
				warn(lineNum, fmt.Errorf("record has negative size"))
			}
			continue
		}

		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}

	return records, nil
}

// InferLevel determines the identity level an inventory was written at
// from its first record: a full fingerprint means level 3, a sample
// fingerprint level 2, neither level 1. It fails on an empty inventory,
// where no level marker exists.
func InferLevel(records []models.FileRecord) (models.IdentityLevel, error) {
	if len(records) == 0 {
		return models.LevelAuto, fmt.Errorf("inventory contains no records, cannot infer identity level")
	}

	first := &records[0]
	switch {
	case first.FullSHA1 != "":
		return models.LevelFullHash, nil
	case first.SampleSHA1 != "":
		return models.LevelSampleHash, nil
	default:
		return models.LevelNameSize, nil
	}
}
