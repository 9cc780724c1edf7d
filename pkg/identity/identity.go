package identity

import (
	"fmt"
	"strconv"

	"github.com/mhermans/dirmimic/pkg/models"
)

// Key is the comparable identity of a file at a given level.
// Two records are "the same file" under a level if and only if their
// keys at that level are equal. At level 1 Digest is empty; at levels
// 2 and 3 it carries the sample or full fingerprint respectively.
type Key struct {
	Filename string
	Size     int64
	Digest   string
}

// KeyFor derives the identity key of a record at the given level.
// It fails when the record lacks the fingerprint the level requires,
// which means the record was built at a lower level than requested.
func KeyFor(r *models.FileRecord, level models.IdentityLevel) (Key, error) {
	switch level {
	case models.LevelNameSize:
		return Key{Filename: r.Filename, Size: r.Size}, nil
	case models.LevelSampleHash:
		if r.SampleSHA1 == "" {
			return Key{}, fmt.Errorf("record %s has no sample fingerprint (required at level 2)", r.Path())
		}
		return Key{Filename: r.Filename, Size: r.Size, Digest: r.SampleSHA1}, nil
	case models.LevelFullHash:
		if r.FullSHA1 == "" {
			return Key{}, fmt.Errorf("record %s has no full fingerprint (required at level 3)", r.Path())
		}
		return Key{Filename: r.Filename, Size: r.Size, Digest: r.FullSHA1}, nil
	default:
		return Key{}, fmt.Errorf("invalid identity level: %d", level)
	}
}

// Less orders keys by filename, then size, then digest.
// Classification visits keys in this order so plans are reproducible.
func (k Key) Less(other Key) bool {
	if k.Filename != other.Filename {
		return k.Filename < other.Filename
	}
	if k.Size != other.Size {
		return k.Size < other.Size
	}
	return k.Digest < other.Digest
}

// String returns a compact form for logs and diagnostics
func (k Key) String() string {
	s := k.Filename + ":" + strconv.FormatInt(k.Size, 10)
	if k.Digest != "" {
		s += ":" + k.Digest
	}
	return s
}
