package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLocal(t *testing.T) (*Local, string) {
	t.Helper()
	dir := t.TempDir()
	backend, err := NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal failed: %v", err)
	}
	return backend, dir
}

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestNewLocal(t *testing.T) {
	t.Run("RejectsMissingPath", func(t *testing.T) {
		if _, err := NewLocal(filepath.Join(t.TempDir(), "nonexistent")); err == nil {
			t.Error("expected error for missing directory")
		}
	})

	t.Run("RejectsRegularFile", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "file.txt", "x")
		if _, err := NewLocal(filepath.Join(dir, "file.txt")); err == nil {
			t.Error("expected error for non-directory path")
		}
	})
}

func TestLocalList(t *testing.T) {
	backend, dir := newTestLocal(t)
	writeTestFile(t, dir, "a.txt", "aaa")
	writeTestFile(t, dir, "docs/b.txt", "bbbbb")

	files, err := backend.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	byRel := make(map[string]FileInfo)
	for _, f := range files {
		byRel[f.RelativePath] = f
	}

	a, ok := byRel["a.txt"]
	if !ok {
		t.Fatal("a.txt missing from listing")
	}
	if a.Size != 3 || a.IsDir {
		t.Errorf("a.txt info = %+v", a)
	}

	b, ok := byRel["docs/b.txt"]
	if !ok {
		t.Fatal("docs/b.txt missing from listing; relative paths must use forward slashes")
	}
	if b.Size != 5 {
		t.Errorf("docs/b.txt size = %d, want 5", b.Size)
	}

	docs, ok := byRel["docs"]
	if !ok || !docs.IsDir {
		t.Errorf("docs directory entry = %+v, ok=%t", docs, ok)
	}
}

func TestLocalListCancellation(t *testing.T) {
	backend, dir := newTestLocal(t)
	writeTestFile(t, dir, "a.txt", "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := backend.List(ctx); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestLocalReadWrite(t *testing.T) {
	backend, _ := newTestLocal(t)
	ctx := context.Background()

	if err := backend.Write(ctx, "sub/new.txt", strings.NewReader("content")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	file, err := backend.Open(ctx, "sub/new.txt")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("content = %q, want %q", data, "content")
	}
}

func TestLocalRename(t *testing.T) {
	backend, dir := newTestLocal(t)
	ctx := context.Background()
	writeTestFile(t, dir, "old/a.txt", "move me")

	if err := backend.MkdirAll(ctx, "new"); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := backend.Rename(ctx, "old/a.txt", "new/a.txt"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	if exists, _ := backend.Exists(ctx, "old/a.txt"); exists {
		t.Error("source still exists after rename")
	}
	if exists, _ := backend.Exists(ctx, "new/a.txt"); !exists {
		t.Error("destination missing after rename")
	}
}

func TestLocalDelete(t *testing.T) {
	backend, dir := newTestLocal(t)
	ctx := context.Background()
	writeTestFile(t, dir, "junk.txt", "x")

	if err := backend.Delete(ctx, "junk.txt"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if exists, _ := backend.Exists(ctx, "junk.txt"); exists {
		t.Error("file still exists after delete")
	}

	if err := backend.Delete(ctx, "junk.txt"); err == nil {
		t.Error("expected error deleting a missing file")
	}
}

func TestLocalMkdirAll(t *testing.T) {
	backend, _ := newTestLocal(t)
	ctx := context.Background()

	t.Run("EmptyPathIsRootNoOp", func(t *testing.T) {
		if err := backend.MkdirAll(ctx, ""); err != nil {
			t.Errorf("MkdirAll(\"\") = %v, want nil", err)
		}
	})

	t.Run("CreatesNestedDirectories", func(t *testing.T) {
		if err := backend.MkdirAll(ctx, "a/b/c"); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}

		info, err := backend.Stat(ctx, "a/b/c")
		if err != nil {
			t.Fatalf("Stat failed: %v", err)
		}
		if !info.IsDir {
			t.Error("created path is not a directory")
		}
	})
}

func TestLocalStat(t *testing.T) {
	backend, dir := newTestLocal(t)
	writeTestFile(t, dir, "docs/a.txt", "12345")

	info, err := backend.Stat(context.Background(), "docs/a.txt")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size != 5 || info.IsDir || info.RelativePath != "docs/a.txt" {
		t.Errorf("info = %+v", info)
	}
}
