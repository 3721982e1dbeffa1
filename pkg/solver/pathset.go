package solver

import "slices"

// PathSet is a deduplicated collection of paths keyed by their full slot
// sequence. The expansion engine double-buffers two instances per round and
// never inserts into the set it is iterating.
type PathSet struct {
	members map[string]Path
}

func NewPathSet() *PathSet {
	return &PathSet{members: make(map[string]Path)}
}

// Insert adds the path and reports whether it was newly added; inserting a
// path equal to an existing member is a no-op.
func (set *PathSet) Insert(path Path) bool {
	key := path.Key()
	if _, ok := set.members[key]; ok {
		return false
	}
	set.members[key] = path
	return true
}

func (set *PathSet) Contains(path Path) bool {
	_, ok := set.members[path.Key()]
	return ok
}

func (set *PathSet) Len() int {
	return len(set.members)
}

// Paths returns the members in arbitrary order.
func (set *PathSet) Paths() []Path {
	paths := make([]Path, 0, len(set.members))
	for _, path := range set.members {
		paths = append(paths, path)
	}
	return paths
}

// Sorted returns the members in canonical ascending order, making results
// deterministic regardless of iteration order within a round.
func (set *PathSet) Sorted() []Path {
	paths := set.Paths()
	slices.SortFunc(paths, func(a, b Path) int {
		return a.Compare(b)
	})
	return paths
}
