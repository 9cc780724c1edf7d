package models

// IdentityLevel selects which file attributes form an identity key
type IdentityLevel int

const (
	// LevelAuto lets the inventory loader infer the level from stored data
	LevelAuto IdentityLevel = 0
	// LevelNameSize identifies files by filename and size only
	LevelNameSize IdentityLevel = 1
	// LevelSampleHash adds a SHA-1 of the first and last 64KiB
	LevelSampleHash IdentityLevel = 2
	// LevelFullHash adds a SHA-1 of the entire file content
	LevelFullHash IdentityLevel = 3
)

// Valid reports whether the level is a concrete identification level
func (l IdentityLevel) Valid() bool {
	return l >= LevelNameSize && l <= LevelFullHash
}

// String returns a short description of the level
func (l IdentityLevel) String() string {
	switch l {
	case LevelAuto:
		return "auto"
	case LevelNameSize:
		return "name+size"
	case LevelSampleHash:
		return "name+size+sample_sha1"
	case LevelFullHash:
		return "name+size+full_sha1"
	default:
		return "invalid"
	}
}

// FileRecord represents one observed or recorded file.
// Folder and Filename combine into a unique relative path; folder paths
// always use forward slashes so inventories are portable across platforms.
// Records are built once by a scan or an inventory load and never mutated.
type FileRecord struct {
	// Folder is the directory-relative folder path, empty for the tree root
	Folder string `json:"folder"`

	// Filename is the base name of the file
	Filename string `json:"filename"`

	// Size in bytes
	Size int64 `json:"size"`

	// SampleSHA1 is the fingerprint of the first (and, for files larger
	// than 64KiB, also the last) 64KiB; populated at level 2 and above
	SampleSHA1 string `json:"sample_sha1,omitempty"`

	// FullSHA1 is the fingerprint of the entire byte stream; level 3 only
	FullSHA1 string `json:"full_sha1,omitempty"`
}

// Path returns the folder and filename combined into a relative path
func (r *FileRecord) Path() string {
	if r.Folder == "" {
		return r.Filename
	}
	return r.Folder + "/" + r.Filename
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
