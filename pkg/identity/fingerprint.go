package identity

import (
	"crypto/sha1"
	"fmt"
	"io"
)

// sampleChunkSize is the window hashed at each end of a file for the
// sample fingerprint (64KiB)
const sampleChunkSize = 64 * 1024

// SampleSHA1 computes the sample fingerprint of a file: a SHA-1 over the
// first 64KiB and, only when the file exceeds 64KiB, also the last 64KiB,
// concatenated in that order into a single digest.
func SampleSHA1(r io.ReadSeeker, size int64) (string, error) {
	hasher := sha1.New()

	if _, err := io.CopyN(hasher, r, min64(size, sampleChunkSize)); err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read leading chunk: %w", err)
	}

	if size > sampleChunkSize {
		if _, err := r.Seek(-sampleChunkSize, io.SeekEnd); err != nil {
			return "", fmt.Errorf("failed to seek to trailing chunk: %w", err)
		}
		if _, err := io.CopyN(hasher, r, sampleChunkSize); err != nil && err != io.EOF {
			return "", fmt.Errorf("failed to read trailing chunk: %w", err)
		}
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// FullSHA1 computes the SHA-1 of the entire stream using the given
// buffer size for sequential reads
func FullSHA1(r io.Reader, bufferSize int) (string, error) {
	if bufferSize < 4096 {
		bufferSize = 4096
	}

	hasher := sha1.New()
	buffer := make([]byte, bufferSize)

	if _, err := io.CopyBuffer(hasher, r, buffer); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
