package mesh

import (
	"sort"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/philipparndt/meshpath/pkg/topology"
)

var (
	_ topology.Adapter = (*Mesh)(nil)
	_ topology.Applier = (*Mesh)(nil)
)

// ShortestPath runs a breadth-first search from a to b over vertex edges or
// face adjacency. Neighbours are visited in id order, so equal-length routes
// always resolve the same way.
func (m *Mesh) ShortestPath(a, b topology.ElementRef, within *topology.Island) []topology.ElementRef {
	if a == b || a.Kind != b.Kind || !m.Contains(a) || !m.Contains(b) {
		return nil
	}
	if !within.Contains(a) || !within.Contains(b) {
		return nil
	}

	prev := map[int]int{a.ID: -1}
	queue := linkedlistqueue.New()
	queue.Enqueue(a.ID)
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		cur := v.(int)
		if cur == b.ID {
			break
		}
		for _, n := range m.neighbours(topology.ElementRef{Kind: a.Kind, ID: cur}) {
			if _, seen := prev[n]; seen {
				continue
			}
			if !within.Contains(topology.ElementRef{Kind: a.Kind, ID: n}) {
				continue
			}
			prev[n] = cur
			queue.Enqueue(n)
		}
	}

	if _, ok := prev[b.ID]; !ok {
		return nil
	}
	var out []topology.ElementRef
	for id := b.ID; id != -1; id = prev[id] {
		out = append(out, topology.ElementRef{Kind: a.Kind, ID: id})
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ConnectedComponent returns every element reachable from seed, in id order.
func (m *Mesh) ConnectedComponent(seed topology.ElementRef) []topology.ElementRef {
	if !m.Contains(seed) {
		return nil
	}
	seen := map[int]bool{seed.ID: true}
	queue := linkedlistqueue.New()
	queue.Enqueue(seed.ID)
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		for _, n := range m.neighbours(topology.ElementRef{Kind: seed.Kind, ID: v.(int)}) {
			if !seen[n] {
				seen[n] = true
				queue.Enqueue(n)
			}
		}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]topology.ElementRef, len(ids))
	for i, id := range ids {
		out[i] = topology.ElementRef{Kind: seed.Kind, ID: id}
	}
	return out
}

// Islands partitions all elements of kind into connected components,
// ordered by their lowest id.
func (m *Mesh) Islands(kind topology.Kind) [][]topology.ElementRef {
	count := len(m.positions)
	if kind == topology.Face {
		count = len(m.faces)
	}
	done := make([]bool, count)
	var out [][]topology.ElementRef
	for id := 0; id < count; id++ {
		if done[id] {
			continue
		}
		island := m.ConnectedComponent(topology.ElementRef{Kind: kind, ID: id})
		for _, e := range island {
			done[e.ID] = true
		}
		out = append(out, island)
	}
	return out
}

// Adjacent reports whether a and b share an edge (vertices) or a boundary
// edge (faces).
func (m *Mesh) Adjacent(a, b topology.ElementRef) bool {
	if a == b || a.Kind != b.Kind || !m.Contains(a) || !m.Contains(b) {
		return false
	}
	if a.Kind == topology.Vertex {
		_, ok := m.EdgeBetween(a.ID, b.ID)
		return ok
	}
	for _, ei := range m.faceEdges[a.ID] {
		for _, f := range m.edges[ei].Faces {
			if f == b.ID {
				return true
			}
		}
	}
	return false
}

// Selection returns the selected elements of kind in id order.
func (m *Mesh) Selection(kind topology.Kind) []topology.ElementRef {
	flags := m.flags(kind)
	var out []topology.ElementRef
	for id, sel := range flags {
		if sel {
			out = append(out, topology.ElementRef{Kind: kind, ID: id})
		}
	}
	return out
}

// SetSelection sets the selection flag of every known element in elems.
func (m *Mesh) SetSelection(elems []topology.ElementRef, selected bool) {
	for _, e := range elems {
		if m.Contains(e) {
			m.flags(e.Kind)[e.ID] = selected
		}
	}
}

// SelectedEdges returns the ids of the selected edges.
func (m *Mesh) SelectedEdges() []int {
	var out []int
	for i, e := range m.edges {
		if e.Selected {
			out = append(out, i)
		}
	}
	return out
}

// ClearSelection deselects every vertex, face and edge.
func (m *Mesh) ClearSelection() {
	for i := range m.vertSelected {
		m.vertSelected[i] = false
	}
	for i := range m.faceSelected {
		m.faceSelected[i] = false
	}
	for i := range m.edges {
		m.edges[i].Selected = false
	}
}

func (m *Mesh) flags(kind topology.Kind) []bool {
	if kind == topology.Face {
		return m.faceSelected
	}
	return m.vertSelected
}
