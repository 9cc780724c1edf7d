package storage

import (
	"context"
	"io"
	"time"
)

// FileInfo represents metadata about a file
type FileInfo struct {
	Path         string
	Size         int64
	ModTime      time.Time
	IsDir        bool
	RelativePath string
}

// Backend defines the interface for target-tree operations.
// The scanner reads through it and the plan applier mutates through it;
// the reconciliation core itself never touches a Backend.
type Backend interface {
	// List returns all files under the root recursively
	List(ctx context.Context) ([]FileInfo, error)

	// Open opens a file for reading; the returned reader supports
	// seeking so sample fingerprints can hash the tail of the file
	Open(ctx context.Context, path string) (io.ReadSeekCloser, error)

	// Write creates or overwrites a file with the given content,
	// creating parent directories as needed
	Write(ctx context.Context, path string, reader io.Reader) error

	// Rename moves a file within the root
	Rename(ctx context.Context, oldPath, newPath string) error

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// Exists checks if a file or directory exists
	Exists(ctx context.Context, path string) (bool, error)

	// Stat returns file metadata
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// MkdirAll creates a directory and all necessary parents
	MkdirAll(ctx context.Context, path string) error

	// Root returns the absolute root path of the backend
	Root() string

	// Close releases any resources held by the backend
	Close() error
}
