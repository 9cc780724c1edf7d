package scan

import (
	"context"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mhermans/dirmimic/pkg/models"
	"github.com/mhermans/dirmimic/pkg/storage"
)

func newTestTree(t *testing.T, files map[string]string) storage.Backend {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	backend, err := storage.NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal failed: %v", err)
	}
	return backend
}

func scanTree(t *testing.T, backend storage.Backend, level models.IdentityLevel) map[string]models.FileRecord {
	t.Helper()
	scanner, err := NewScanner(backend, level, nil, Options{})
	if err != nil {
		t.Fatalf("NewScanner failed: %v", err)
	}
	records, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	byPath := make(map[string]models.FileRecord, len(records))
	for _, r := range records {
		byPath[r.Path()] = r
	}
	return byPath
}

func TestScan(t *testing.T) {
	t.Run("RecordsFoldersAndSizes", func(t *testing.T) {
		backend := newTestTree(t, map[string]string{
			"a.txt":          "aaa",
			"docs/b.txt":     "bbbbb",
			"docs/sub/c.txt": "c",
		})

		records := scanTree(t, backend, models.LevelNameSize)

		if len(records) != 3 {
			t.Fatalf("got %d records, want 3", len(records))
		}

		a := records["a.txt"]
		if a.Folder != "" || a.Filename != "a.txt" || a.Size != 3 {
			t.Errorf("a.txt record = %+v", a)
		}

		c := records["docs/sub/c.txt"]
		if c.Folder != "docs/sub" || c.Filename != "c.txt" || c.Size != 1 {
			t.Errorf("c.txt record = %+v", c)
		}
	})

	t.Run("Level1SkipsFingerprints", func(t *testing.T) {
		backend := newTestTree(t, map[string]string{"a.txt": "aaa"})

		records := scanTree(t, backend, models.LevelNameSize)

		a := records["a.txt"]
		if a.SampleSHA1 != "" || a.FullSHA1 != "" {
			t.Errorf("level 1 record carries fingerprints: %+v", a)
		}
	})

	t.Run("Level2ComputesSampleFingerprint", func(t *testing.T) {
		content := "fingerprint me"
		backend := newTestTree(t, map[string]string{"a.txt": content})

		records := scanTree(t, backend, models.LevelSampleHash)

		a := records["a.txt"]
		// Small file: the sample digest covers the whole content
		want := fmt.Sprintf("%x", sha1.Sum([]byte(content)))
		if a.SampleSHA1 != want {
			t.Errorf("sample digest = %s, want %s", a.SampleSHA1, want)
		}
		if a.FullSHA1 != "" {
			t.Errorf("level 2 record carries full fingerprint: %+v", a)
		}
	})

	t.Run("Level3ComputesBothFingerprints", func(t *testing.T) {
		content := "fingerprint me fully"
		backend := newTestTree(t, map[string]string{"a.txt": content})

		records := scanTree(t, backend, models.LevelFullHash)

		a := records["a.txt"]
		want := fmt.Sprintf("%x", sha1.Sum([]byte(content)))
		if a.SampleSHA1 != want {
			t.Errorf("sample digest = %s, want %s", a.SampleSHA1, want)
		}
		if a.FullSHA1 != want {
			t.Errorf("full digest = %s, want %s", a.FullSHA1, want)
		}
	})

	t.Run("EmptyTree", func(t *testing.T) {
		backend := newTestTree(t, nil)

		records := scanTree(t, backend, models.LevelNameSize)
		if len(records) != 0 {
			t.Errorf("got %d records from empty tree, want 0", len(records))
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		backend := newTestTree(t, map[string]string{"a.txt": "x"})

		scanner, err := NewScanner(backend, models.LevelNameSize, nil, Options{})
		if err != nil {
			t.Fatalf("NewScanner failed: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := scanner.Scan(ctx); err == nil {
			t.Error("expected error from cancelled context")
		}
	})
}

func TestNewScanner(t *testing.T) {
	backend := newTestTree(t, nil)

	t.Run("RejectsInvalidLevel", func(t *testing.T) {
		if _, err := NewScanner(backend, models.LevelAuto, nil, Options{}); err == nil {
			t.Error("expected error for level 0")
		}
	})

	t.Run("DefaultsBufferSize", func(t *testing.T) {
		scanner, err := NewScanner(backend, models.LevelFullHash, nil, Options{BufferSize: 1})
		if err != nil {
			t.Fatalf("NewScanner failed: %v", err)
		}
		if scanner.opts.BufferSize != 65536 {
			t.Errorf("buffer size = %d, want 65536", scanner.opts.BufferSize)
		}
	})
}
