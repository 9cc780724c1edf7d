package reconcile

// MoveEntry is a copy+delete pair of the same identity folded into a
// single rename
type MoveEntry struct {
	Source string
	Dest   string
}

// PlanSet holds the optimized operation sets derived from a
// classification result, in group (sorted key) order
type PlanSet struct {
	Moves   []MoveEntry
	Copies  []CopyEntry
	Deletes []string
}

// Optimize folds copy+delete pairs into moves. Within each identity, the
// i-th pending copy destination is paired with the i-th unused extra
// occurrence; both lists are already in sorted order, so the pairing is
// deterministic. Destinations that cannot be paired remain copies from
// their originally chosen source, and extras not consumed as move
// sources remain deletes.
//
// The multiset of final destinations equals the classifier's copy
// destinations, and the multiset of final deletions equals the extras
// minus those consumed as move sources.
func Optimize(result *Result) *PlanSet {
	set := &PlanSet{}

	for _, group := range result.Groups {
		paired := len(group.Copies)
		if len(group.Extras) < paired {
			paired = len(group.Extras)
		}

		for i := 0; i < paired; i++ {
			set.Moves = append(set.Moves, MoveEntry{
				Source: group.Extras[i],
				Dest:   group.Copies[i].Dest,
			})
		}

		set.Copies = append(set.Copies, group.Copies[paired:]...)
		set.Deletes = append(set.Deletes, group.Extras[paired:]...)
	}

	return set
}
