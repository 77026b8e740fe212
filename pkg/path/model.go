// Package path holds the editable path model: the ordered control points a
// user placed on a mesh, the shortest-path fills between them, the optional
// gap fill closing the loop, and a bounded undo history of control point
// snapshots.
package path

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/plan-systems/klog"
)

// Model is the path being edited in one session.
//
// fills[i] always connects points[i] to points[i+1], endpoints included, so
// len(fills) == max(len(points)-1, 0) after every operation.
type Model struct {
	topo   topology.Adapter
	island *topology.Island
	kind   topology.Kind

	points  []topology.ElementRef
	fills   [][]topology.ElementRef
	gap     []topology.ElementRef
	gapFill bool

	queries int
}

// NewModel returns an empty path over topo. Shortest-path queries never leave island.
func NewModel(topo topology.Adapter, kind topology.Kind, island *topology.Island) *Model {
	return &Model{
		topo:   topo,
		island: island,
		kind:   kind,
	}
}

// Kind of the path's elements.
func (m *Model) Kind() topology.Kind { return m.kind }

// Len returns the number of control points.
func (m *Model) Len() int { return len(m.points) }

// Point returns control point i.
func (m *Model) Point(i int) topology.ElementRef { return m.points[i] }

// Points returns a copy of the control points.
func (m *Model) Points() []topology.ElementRef {
	return cloneRefs(m.points)
}

// Fills returns a copy of the fill segments.
func (m *Model) Fills() [][]topology.ElementRef {
	out := make([][]topology.ElementRef, len(m.fills))
	for i, f := range m.fills {
		out[i] = cloneRefs(f)
	}
	return out
}

// GapFill returns a copy of the segment closing the path, empty when there is none.
func (m *Model) GapFill() []topology.ElementRef { return cloneRefs(m.gap) }

// GapFillEnabled reports whether the path is closed from last to first point.
func (m *Model) GapFillEnabled() bool { return m.gapFill }

// Queries returns the number of shortest-path queries issued so far.
func (m *Model) Queries() int { return m.queries }

// IndexOf returns the position of e among the control points or -1.
func (m *Model) IndexOf(e topology.ElementRef) int {
	for i, p := range m.points {
		if p == e {
			return i
		}
	}
	return -1
}

// FillIndexOf returns the first fill segment containing e or -1.
func (m *Model) FillIndexOf(e topology.ElementRef) int {
	for i, fill := range m.fills {
		for _, f := range fill {
			if f == e {
				return i
			}
		}
	}
	return -1
}

// Insert adds e as a control point and returns its index.
//
// A point lying on an existing fill splits that fill; any other point is
// appended. Inserting an existing control point does nothing and returns -1.
func (m *Model) Insert(e topology.ElementRef) int {
	if m.IndexOf(e) >= 0 {
		return -1
	}
	if fi := m.FillIndexOf(e); fi >= 0 {
		return m.InsertAfterFill(e, fi)
	}

	m.points = append(m.points, e)
	if len(m.points) > 1 {
		m.fills = append(m.fills, nil)
	}
	idx := len(m.points) - 1
	m.RecomputeSegment(idx)
	return idx
}

// InsertAfterFill places e right after the start of fill fi, splitting the
// fill in two, and refills both halves.
func (m *Model) InsertAfterFill(e topology.ElementRef, fi int) int {
	if fi < 0 || fi >= len(m.fills) {
		return m.Insert(e)
	}
	idx := fi + 1
	m.points = insertRef(m.points, idx, e)
	m.fills = append(m.fills, nil)
	copy(m.fills[fi+1:], m.fills[fi:])
	m.fills[fi] = nil
	m.RecomputeSegment(idx)
	return idx
}

// Remove drops control point e. Returns false when e is not a control point.
func (m *Model) Remove(e topology.ElementRef) bool {
	idx := m.IndexOf(e)
	if idx < 0 {
		return false
	}
	m.RemoveAt(idx)
	return true
}

// RemoveAt drops the control point at idx and recomputes the whole path.
func (m *Model) RemoveAt(idx int) {
	if idx < 0 || idx >= len(m.points) {
		return
	}
	m.points = append(m.points[:idx], m.points[idx+1:]...)
	m.FullRecompute()
}

// Replace moves control point idx onto e and refreshes only the fills
// touching it. This is the drag primitive.
func (m *Model) Replace(idx int, e topology.ElementRef) {
	if idx < 0 || idx >= len(m.points) || m.points[idx] == e {
		return
	}
	m.points[idx] = e
	m.RecomputeSegment(idx)
}

// RecomputeSegment refills the (at most two) fills touching control point
// idx. The gap fill is refreshed only when idx is an endpoint.
func (m *Model) RecomputeSegment(idx int) {
	n := len(m.points)
	if idx < 0 || idx >= n {
		return
	}
	if idx > 0 {
		m.fills[idx-1] = m.computeFill(m.points[idx-1], m.points[idx])
	}
	if idx < n-1 {
		m.fills[idx] = m.computeFill(m.points[idx], m.points[idx+1])
	}
	if idx == 0 || idx == n-1 {
		m.updateGap()
	}
}

// FullRecompute rebuilds every fill. Starting from every second control point
// touches each pair exactly once.
func (m *Model) FullRecompute() {
	n := len(m.points)
	m.fills = make([][]topology.ElementRef, max(n-1, 0))
	for i := 0; i < n; i += 2 {
		if i > 0 {
			m.fills[i-1] = m.computeFill(m.points[i-1], m.points[i])
		}
		if i < n-1 {
			m.fills[i] = m.computeFill(m.points[i], m.points[i+1])
		}
	}
	m.updateGap()
}

// Reverse flips the path direction: control point order, fill order and the
// element order inside every fill.
func (m *Model) Reverse() {
	reverseRefs(m.points)
	for i, j := 0, len(m.fills)-1; i < j; i, j = i+1, j-1 {
		m.fills[i], m.fills[j] = m.fills[j], m.fills[i]
	}
	for _, f := range m.fills {
		reverseRefs(f)
	}
	m.updateGap()
}

// SetGapFill enables or disables the fill from the last control point back to the first.
func (m *Model) SetGapFill(enabled bool) {
	m.gapFill = enabled
	m.updateGap()
}

// ResolvedPath flattens the path for attribute application: fills in order,
// then the gap fill, then (face paths) the control points themselves.
func (m *Model) ResolvedPath() topology.Resolved {
	elems := linkedhashset.New()
	links := linkedhashset.New()

	collect := func(seg []topology.ElementRef) {
		for i, e := range seg {
			elems.Add(e)
			if i > 0 {
				links.Add(linkKey(seg[i-1], e))
			}
		}
	}
	for _, f := range m.fills {
		collect(f)
	}
	collect(m.gap)
	if m.kind == topology.Face {
		for _, p := range m.points {
			elems.Add(p)
		}
	}

	res := topology.Resolved{
		Kind:     m.kind,
		Elements: make([]topology.ElementRef, 0, elems.Size()),
		Links:    make([][2]topology.ElementRef, 0, links.Size()),
	}
	for _, v := range elems.Values() {
		res.Elements = append(res.Elements, v.(topology.ElementRef))
	}
	for _, v := range links.Values() {
		res.Links = append(res.Links, v.([2]topology.ElementRef))
	}
	return res
}

func (m *Model) updateGap() {
	n := len(m.points)
	if !m.gapFill || n < 3 || m.points[0] == m.points[n-1] {
		m.gap = nil
		return
	}
	m.gap = m.computeFill(m.points[n-1], m.points[0])
}

// computeFill asks the host for the route from a to b. Hosts may decline to
// return a one-step vertex path, so adjacent vertices fall back to the
// connecting edge.
func (m *Model) computeFill(a, b topology.ElementRef) []topology.ElementRef {
	if a == b {
		return nil
	}
	m.queries++
	fill := m.topo.ShortestPath(a, b, m.island)
	if len(fill) == 0 && m.kind == topology.Vertex && m.topo.Adjacent(a, b) {
		fill = []topology.ElementRef{a, b}
	}
	klog.V(3).Infof("fill %v -> %v: %d elements", a, b, len(fill))
	return cloneRefs(fill)
}

// linkKey orders a pair so a link and its reverse collapse to one key.
func linkKey(a, b topology.ElementRef) [2]topology.ElementRef {
	if b.Kind < a.Kind || (b.Kind == a.Kind && b.ID < a.ID) {
		a, b = b, a
	}
	return [2]topology.ElementRef{a, b}
}

func cloneRefs(refs []topology.ElementRef) []topology.ElementRef {
	if len(refs) == 0 {
		return nil
	}
	out := make([]topology.ElementRef, len(refs))
	copy(out, refs)
	return out
}

func reverseRefs(refs []topology.ElementRef) {
	for i, j := 0, len(refs)-1; i < j; i, j = i+1, j-1 {
		refs[i], refs[j] = refs[j], refs[i]
	}
}

func insertRef(refs []topology.ElementRef, idx int, e topology.ElementRef) []topology.ElementRef {
	refs = append(refs, topology.ElementRef{})
	copy(refs[idx+1:], refs[idx:])
	refs[idx] = e
	return refs
}
