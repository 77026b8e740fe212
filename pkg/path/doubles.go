package path

import "github.com/philipparndt/meshpath/pkg/topology"

// Doubles is the outcome of a doubles check.
type Doubles int

const (
	// DoublesNone: every control point is distinct.
	DoublesNone Doubles = iota

	// DoublesClosed: the last point re-clicked the first one; it was dropped
	// and the gap fill enabled instead.
	DoublesClosed

	// DoublesMerged: a redundant neighbouring duplicate was dropped.
	DoublesMerged

	// DoublesRejected: an interior point repeats a non-neighbouring one. The
	// model is left untouched; the caller rolls the edit back.
	DoublesRejected
)

func (d Doubles) String() string {
	switch d {
	case DoublesNone:
		return "none"
	case DoublesClosed:
		return "closed"
	case DoublesMerged:
		return "merged"
	case DoublesRejected:
		return "rejected"
	}
	return "unknown"
}

// FindDouble returns the first two positions p1 < p2 of the first element
// value that occurs more than once.
func (m *Model) FindDouble() (p1, p2 int, found bool) {
	seen := make(map[topology.ElementRef]int, len(m.points))
	first := -1
	for i, p := range m.points {
		if j, ok := seen[p]; ok {
			if first < 0 || j < first {
				first, p2 = j, i
			}
			continue
		}
		seen[p] = i
	}
	if first < 0 {
		return 0, 0, false
	}
	return first, p2, true
}

// ResolveDoubles handles at most one duplicate pair. Further duplicates are
// left for the next check, which runs after every edit anyway.
func (m *Model) ResolveDoubles() Doubles {
	p1, p2, found := m.FindDouble()
	if !found {
		return DoublesNone
	}
	last := len(m.points) - 1
	looped := p1 == 0 && p2 == last

	switch {
	case looped && !m.gapFill && last > 2:
		m.RemoveAt(p2)
		m.SetGapFill(true)
		return DoublesClosed
	case p2 == p1+1 || looped:
		m.RemoveAt(p2)
		return DoublesMerged
	}
	return DoublesRejected
}
