package platform

import (
	"path"
	"path/filepath"
	"strings"
)

// Inventories store folder paths with forward slashes regardless of the
// platform they were written on. These helpers convert between that
// portable form and native filesystem paths.

// SlashRel converts a filesystem-relative path to portable slash form
func SlashRel(rel string) string {
	rel = filepath.ToSlash(rel)
	if rel == "." {
		return ""
	}
	return strings.TrimPrefix(rel, "./")
}

// NativeRel converts a portable relative path to the platform separator
func NativeRel(rel string) string {
	return filepath.FromSlash(rel)
}

// Parent returns the portable parent folder of a relative path,
// empty for paths directly under the root
func Parent(rel string) string {
	dir := path.Dir(rel)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}

// SplitRel splits a portable relative path into folder and filename
func SplitRel(rel string) (folder, filename string) {
	return Parent(rel), path.Base(rel)
}

// JoinRel joins a portable folder and filename into a relative path
func JoinRel(folder, filename string) string {
	if folder == "" {
		return filename
	}
	return folder + "/" + filename
}

// ValidateRel rejects relative paths that would escape the tree root
func ValidateRel(rel string) error {
	if path.IsAbs(rel) {
		return &PathError{Path: rel, Message: "path is absolute"}
	}
	clean := path.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return &PathError{Path: rel, Message: "path escapes the root"}
	}
	return nil
}

// PathError represents a relative path validation error
type PathError struct {
	Path    string
	Message string
}

func (e *PathError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Message
}
