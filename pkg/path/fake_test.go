package path

import (
	"sort"

	"github.com/philipparndt/meshpath/pkg/topology"
)

// graphTopo is a small in-memory adjacency graph standing in for a mesh.
type graphTopo struct {
	kind           topology.Kind
	adj            map[int][]int
	declineTrivial bool
	selected       map[topology.ElementRef]bool
}

func newGraph(kind topology.Kind, edges ...[2]int) *graphTopo {
	g := &graphTopo{kind: kind, adj: map[int][]int{}, selected: map[topology.ElementRef]bool{}}
	for _, e := range edges {
		g.adj[e[0]] = append(g.adj[e[0]], e[1])
		g.adj[e[1]] = append(g.adj[e[1]], e[0])
	}
	for k := range g.adj {
		sort.Ints(g.adj[k])
	}
	return g
}

// chain links 0-1-2-...-(n-1).
func chain(kind topology.Kind, n int) *graphTopo {
	var edges [][2]int
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	return newGraph(kind, edges...)
}

func (g *graphTopo) ref(id int) topology.ElementRef {
	return topology.ElementRef{Kind: g.kind, ID: id}
}

func (g *graphTopo) ShortestPath(a, b topology.ElementRef, within *topology.Island) []topology.ElementRef {
	if a == b {
		return nil
	}
	prev := map[int]int{a.ID: -1}
	queue := []int{a.ID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == b.ID {
			break
		}
		for _, n := range g.adj[cur] {
			if _, ok := prev[n]; ok || !within.Contains(g.ref(n)) {
				continue
			}
			prev[n] = cur
			queue = append(queue, n)
		}
	}
	if _, ok := prev[b.ID]; !ok {
		return nil
	}
	var out []topology.ElementRef
	for id := b.ID; id != -1; id = prev[id] {
		out = append([]topology.ElementRef{g.ref(id)}, out...)
	}
	if g.declineTrivial && len(out) == 2 {
		return nil
	}
	return out
}

func (g *graphTopo) ConnectedComponent(seed topology.ElementRef) []topology.ElementRef {
	seen := map[int]bool{seed.ID: true}
	stack := []int{seed.ID}
	out := []topology.ElementRef{seed}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range g.adj[cur] {
			if !seen[n] {
				seen[n] = true
				stack = append(stack, n)
				out = append(out, g.ref(n))
			}
		}
	}
	return out
}

func (g *graphTopo) Adjacent(a, b topology.ElementRef) bool {
	for _, n := range g.adj[a.ID] {
		if n == b.ID {
			return true
		}
	}
	return false
}

func (g *graphTopo) Selection(kind topology.Kind) []topology.ElementRef {
	var out []topology.ElementRef
	for e, sel := range g.selected {
		if sel && e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func (g *graphTopo) SetSelection(elems []topology.ElementRef, selected bool) {
	for _, e := range elems {
		g.selected[e] = selected
	}
}

func vs(ids ...int) []topology.ElementRef {
	out := make([]topology.ElementRef, len(ids))
	for i, id := range ids {
		out[i] = topology.V(id)
	}
	return out
}

func fs(ids ...int) []topology.ElementRef {
	out := make([]topology.ElementRef, len(ids))
	for i, id := range ids {
		out[i] = topology.F(id)
	}
	return out
}

// newChainModel builds a vertex path over a 10 vertex chain and clicks ids in order.
func newChainModel(ids ...int) (*Model, *graphTopo) {
	g := chain(topology.Vertex, 10)
	island := topology.NewIsland(topology.Vertex, g.ConnectedComponent(topology.V(0)))
	m := NewModel(g, topology.Vertex, island)
	for _, id := range ids {
		m.Insert(topology.V(id))
	}
	return m, g
}
