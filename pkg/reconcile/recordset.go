package reconcile

import (
	"fmt"
	"sort"

	"github.com/mhermans/dirmimic/pkg/identity"
	"github.com/mhermans/dirmimic/pkg/models"
)

// RecordSet maps identity keys to the ordered list of relative paths
// sharing that key. Duplicates are preserved, not collapsed. Both the
// key order and each path list are sorted lexicographically at
// construction so classification is reproducible across runs; nothing
// is mutated afterwards.
type RecordSet struct {
	level  models.IdentityLevel
	keys   []identity.Key
	groups map[identity.Key][]string
	count  int
}

// NewRecordSet builds a record set from scanned or loaded records at the
// given level. It fails when a record lacks the fingerprint the level
// requires, i.e. the records were produced at a lower level.
func NewRecordSet(records []models.FileRecord, level models.IdentityLevel) (*RecordSet, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("invalid identity level: %d", level)
	}

	groups := make(map[identity.Key][]string)
	for i := range records {
		key, err := identity.KeyFor(&records[i], level)
		if err != nil {
			return nil, err
		}
		groups[key] = append(groups[key], records[i].Path())
	}

	keys := make([]identity.Key, 0, len(groups))
	for key, paths := range groups {
		sort.Strings(paths)
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	return &RecordSet{
		level:  level,
		keys:   keys,
		groups: groups,
		count:  len(records),
	}, nil
}

// Level returns the identity level the set was built at
func (s *RecordSet) Level() models.IdentityLevel {
	return s.level
}

// Keys returns all identity keys in sorted order
func (s *RecordSet) Keys() []identity.Key {
	return s.keys
}

// Paths returns the sorted relative paths recorded for a key
func (s *RecordSet) Paths(key identity.Key) []string {
	return s.groups[key]
}

// Len returns the total number of records in the set
func (s *RecordSet) Len() int {
	return s.count
}
