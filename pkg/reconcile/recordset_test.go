package reconcile

import (
	"testing"

	"github.com/mhermans/dirmimic/pkg/models"
)

func TestNewRecordSet(t *testing.T) {
	t.Run("GroupsDuplicatesByIdentity", func(t *testing.T) {
		records := []models.FileRecord{
			{Folder: "b", Filename: "x.txt", Size: 10},
			{Folder: "a", Filename: "x.txt", Size: 10},
			{Folder: "", Filename: "y.txt", Size: 20},
		}

		set, err := NewRecordSet(records, models.LevelNameSize)
		if err != nil {
			t.Fatalf("NewRecordSet failed: %v", err)
		}

		if set.Len() != 3 {
			t.Errorf("Len() = %d, want 3", set.Len())
		}
		if len(set.Keys()) != 2 {
			t.Fatalf("Keys() has %d entries, want 2", len(set.Keys()))
		}

		// Keys sorted by filename
		if set.Keys()[0].Filename != "x.txt" || set.Keys()[1].Filename != "y.txt" {
			t.Errorf("keys not sorted: %v", set.Keys())
		}

		// Paths within a group sorted lexicographically
		paths := set.Paths(set.Keys()[0])
		if len(paths) != 2 || paths[0] != "a/x.txt" || paths[1] != "b/x.txt" {
			t.Errorf("duplicate paths = %v, want [a/x.txt b/x.txt]", paths)
		}
	})

	t.Run("SizeDistinguishesIdentity", func(t *testing.T) {
		records := []models.FileRecord{
			{Filename: "x.txt", Size: 10},
			{Filename: "x.txt", Size: 11},
		}

		set, err := NewRecordSet(records, models.LevelNameSize)
		if err != nil {
			t.Fatalf("NewRecordSet failed: %v", err)
		}

		if len(set.Keys()) != 2 {
			t.Errorf("same name, different size should be two identities, got %d", len(set.Keys()))
		}
	})

	t.Run("FingerprintRequiredAtLevel2", func(t *testing.T) {
		records := []models.FileRecord{
			{Filename: "x.txt", Size: 10},
		}

		if _, err := NewRecordSet(records, models.LevelSampleHash); err == nil {
			t.Error("expected error for level 2 set built from unfingerprinted records")
		}
	})

	t.Run("InvalidLevelRejected", func(t *testing.T) {
		if _, err := NewRecordSet(nil, models.LevelAuto); err == nil {
			t.Error("expected error for level 0")
		}
		if _, err := NewRecordSet(nil, models.IdentityLevel(4)); err == nil {
			t.Error("expected error for level 4")
		}
	})

	t.Run("DigestDistinguishesIdentityAtLevel2", func(t *testing.T) {
		records := []models.FileRecord{
			{Folder: "a", Filename: "x.txt", Size: 10, SampleSHA1: "aaaa"},
			{Folder: "b", Filename: "x.txt", Size: 10, SampleSHA1: "bbbb"},
		}

		set, err := NewRecordSet(records, models.LevelSampleHash)
		if err != nil {
			t.Fatalf("NewRecordSet failed: %v", err)
		}

		if len(set.Keys()) != 2 {
			t.Errorf("different digests should be two identities, got %d", len(set.Keys()))
		}
	})
}
