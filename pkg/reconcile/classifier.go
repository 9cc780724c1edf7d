package reconcile

import (
	"github.com/mhermans/dirmimic/pkg/identity"
)

// CopyEntry pairs a demanded destination path with an existing target
// occurrence of the same identity to copy from
type CopyEntry struct {
	Source string
	Dest   string
}

// Group holds the classification outcome for a single identity key.
// Every inventory path and every target path of the identity lands in
// exactly one of the four buckets.
type Group struct {
	Key identity.Key

	// Unchanged are paths present, identical, on both sides
	Unchanged []string

	// Copies are inventory-demanded paths absent from the target, each
	// paired with an existing occurrence to source the content from
	Copies []CopyEntry

	// Missing are demanded paths with no target occurrence anywhere;
	// they cannot be satisfied without external data
	Missing []string

	// Extras are target paths the inventory does not demand
	Extras []string
}

// Result is the full classification outcome, grouped per identity key
// in sorted key order
type Result struct {
	Groups []Group
}

// Classify partitions the union of an inventory record set and a target
// record set into the four outcome classes. Both sets must have been
// built at the same identity level; classification itself performs no
// I/O and never fails on well-formed sets.
func Classify(inventory, target *RecordSet) *Result {
	result := &Result{}

	for _, key := range mergeKeys(inventory.Keys(), target.Keys()) {
		demanded := inventory.Paths(key)
		observed := target.Paths(key)

		group := Group{Key: key}

		unchanged, wantOnly, haveOnly := splitPaths(demanded, observed)
		group.Unchanged = unchanged
		group.Extras = haveOnly

		if len(observed) == 0 {
			// No occurrence of this identity exists in the target
			group.Missing = wantOnly
		} else {
			// Any existing occurrence is interchangeable as a copy
			// source; the first sorted one keeps plans deterministic.
			// One source may serve several destinations.
			source := observed[0]
			for _, dest := range wantOnly {
				group.Copies = append(group.Copies, CopyEntry{Source: source, Dest: dest})
			}
		}

		if len(group.Unchanged) > 0 || len(group.Copies) > 0 ||
			len(group.Missing) > 0 || len(group.Extras) > 0 {
			result.Groups = append(result.Groups, group)
		}
	}

	return result
}

// Counts returns the per-path totals across all groups
func (r *Result) Counts() (unchanged, copies, missing, extras int) {
	for _, g := range r.Groups {
		unchanged += len(g.Unchanged)
		copies += len(g.Copies)
		missing += len(g.Missing)
		extras += len(g.Extras)
	}
	return
}

// mergeKeys merges two sorted key slices into one sorted slice
// without duplicates
func mergeKeys(a, b []identity.Key) []identity.Key {
	merged := make([]identity.Key, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			merged = append(merged, a[i])
			i++
			j++
		case a[i].Less(b[j]):
			merged = append(merged, a[i])
			i++
		default:
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged
}

// splitPaths partitions two sorted path slices into the intersection,
// the paths only in the first, and the paths only in the second
func splitPaths(demanded, observed []string) (both, firstOnly, secondOnly []string) {
	i, j := 0, 0
	for i < len(demanded) && j < len(observed) {
		switch {
		case demanded[i] == observed[j]:
			both = append(both, demanded[i])
			i++
			j++
		case demanded[i] < observed[j]:
			firstOnly = append(firstOnly, demanded[i])
			i++
		default:
			secondOnly = append(secondOnly, observed[j])
			j++
		}
	}
	firstOnly = append(firstOnly, demanded[i:]...)
	secondOnly = append(secondOnly, observed[j:]...)
	return
}
