package topology

import (
	"github.com/emirpasic/gods/sets/hashset"
)

// Island is the connected region a path session is pinned to. It is computed
// once from the first accepted click and consulted for every later click.
type Island struct {
	kind Kind
	set  *hashset.Set
}

// NewIsland collects elems into a membership set. Elements of another kind
// than the seed's are ignored.
func NewIsland(kind Kind, elems []ElementRef) *Island {
	is := &Island{kind: kind, set: hashset.New()}
	for _, e := range elems {
		if e.Kind == kind {
			is.set.Add(e)
		}
	}
	return is
}

// Kind of the island's elements.
func (is *Island) Kind() Kind { return is.kind }

// Contains reports whether e belongs to the island. A nil island contains everything.
func (is *Island) Contains(e ElementRef) bool {
	if is == nil {
		return true
	}
	return e.Kind == is.kind && is.set.Contains(e)
}

// Size returns the number of elements in the island.
func (is *Island) Size() int {
	if is == nil {
		return 0
	}
	return is.set.Size()
}
