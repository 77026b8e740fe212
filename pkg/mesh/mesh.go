// Package mesh is an indexed polygon mesh with per-element selection flags
// and per-edge seam/sharp attributes. It implements the topology contracts
// a path session runs against.
package mesh

import (
	"sort"

	"github.com/philipparndt/meshpath/pkg/geometry"
	"github.com/philipparndt/meshpath/pkg/stl"
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/pkg/errors"
)

var (
	ErrBadFace        = errors.New("bad face")
	ErrUnknownElement = errors.New("element not in mesh")
)

// Edge joins two vertices; V[0] < V[1].
type Edge struct {
	V     [2]int
	Faces []int

	Selected bool
	Seam     bool
	Sharp    bool
}

// Boundary reports whether the edge borders fewer than two faces.
func (e Edge) Boundary() bool { return len(e.Faces) < 2 }

// Mesh is an indexed polygon mesh.
type Mesh struct {
	Name string

	positions []geometry.Vector3
	faces     [][]int
	edges     []Edge
	edgeIndex map[[2]int]int

	vertEdges [][]int
	faceEdges [][]int

	vertSelected []bool
	faceSelected []bool
}

// New builds a mesh from vertex positions and faces given as vertex loops.
func New(name string, positions []geometry.Vector3, faces [][]int) (*Mesh, error) {
	m := &Mesh{
		Name:         name,
		positions:    append([]geometry.Vector3(nil), positions...),
		edgeIndex:    make(map[[2]int]int),
		vertEdges:    make([][]int, len(positions)),
		vertSelected: make([]bool, len(positions)),
	}
	for i, loop := range faces {
		if err := m.addFace(loop); err != nil {
			return nil, errors.Wrapf(err, "face %d", i)
		}
	}
	m.faceSelected = make([]bool, len(m.faces))
	return m, nil
}

// FromSTL welds the triangle soup of an STL model into an indexed mesh.
// Corners with identical coordinates become one vertex; degenerate facets
// are dropped.
func FromSTL(model *stl.Model) *Mesh {
	index := make(map[geometry.Vector3]int)
	var positions []geometry.Vector3
	var faces [][]int

	weld := func(p geometry.Vector3) int {
		if i, ok := index[p]; ok {
			return i
		}
		index[p] = len(positions)
		positions = append(positions, p)
		return len(positions) - 1
	}

	for _, tri := range model.Triangles {
		if tri.IsDegenerate() {
			continue
		}
		corners := tri.Vertices()
		faces = append(faces, []int{weld(corners[0]), weld(corners[1]), weld(corners[2])})
	}

	// Welded, non-degenerate triangles always form valid loops.
	m, _ := New(model.Name, positions, faces)
	return m
}

func (m *Mesh) addFace(loop []int) error {
	if len(loop) < 3 {
		return errors.Wrapf(ErrBadFace, "%d corners", len(loop))
	}
	seen := make(map[int]bool, len(loop))
	for _, v := range loop {
		if v < 0 || v >= len(m.positions) {
			return errors.Wrapf(ErrBadFace, "vertex %d out of range", v)
		}
		if seen[v] {
			return errors.Wrapf(ErrBadFace, "vertex %d repeated", v)
		}
		seen[v] = true
	}

	fi := len(m.faces)
	m.faces = append(m.faces, append([]int(nil), loop...))
	m.faceEdges = append(m.faceEdges, make([]int, 0, len(loop)))
	for i, a := range loop {
		b := loop[(i+1)%len(loop)]
		ei := m.ensureEdge(a, b)
		m.edges[ei].Faces = append(m.edges[ei].Faces, fi)
		m.faceEdges[fi] = append(m.faceEdges[fi], ei)
	}
	return nil
}

func (m *Mesh) ensureEdge(a, b int) int {
	key := edgeKey(a, b)
	if ei, ok := m.edgeIndex[key]; ok {
		return ei
	}
	ei := len(m.edges)
	m.edges = append(m.edges, Edge{V: key})
	m.edgeIndex[key] = ei
	m.vertEdges[a] = append(m.vertEdges[a], ei)
	m.vertEdges[b] = append(m.vertEdges[b], ei)
	return ei
}

func edgeKey(a, b int) [2]int {
	if b < a {
		a, b = b, a
	}
	return [2]int{a, b}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.positions) }

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// EdgeCount returns the number of distinct edges.
func (m *Mesh) EdgeCount() int { return len(m.edges) }

// Position returns the coordinates of vertex v.
func (m *Mesh) Position(v int) geometry.Vector3 { return m.positions[v] }

// FaceVertices returns a copy of face f's vertex loop.
func (m *Mesh) FaceVertices(f int) []int { return append([]int(nil), m.faces[f]...) }

// FaceCenter returns the median point of face f's corners.
func (m *Mesh) FaceCenter(f int) geometry.Vector3 {
	corners := make([]geometry.Vector3, len(m.faces[f]))
	for i, v := range m.faces[f] {
		corners[i] = m.positions[v]
	}
	return geometry.Centroid(corners...)
}

// Edge returns a copy of edge ei.
func (m *Mesh) Edge(ei int) Edge {
	e := m.edges[ei]
	e.Faces = append([]int(nil), e.Faces...)
	return e
}

// EdgeBetween returns the edge joining vertices a and b.
func (m *Mesh) EdgeBetween(a, b int) (int, bool) {
	ei, ok := m.edgeIndex[edgeKey(a, b)]
	return ei, ok
}

// FaceEdges returns the edges bounding face f.
func (m *Mesh) FaceEdges(f int) []int { return append([]int(nil), m.faceEdges[f]...) }

// Contains reports whether e names an element of this mesh.
func (m *Mesh) Contains(e topology.ElementRef) bool {
	switch e.Kind {
	case topology.Vertex:
		return e.ID >= 0 && e.ID < len(m.positions)
	case topology.Face:
		return e.ID >= 0 && e.ID < len(m.faces)
	}
	return false
}

// neighbours returns the sorted ids of elements linked to e: vertices
// sharing an edge, or faces sharing a boundary edge.
func (m *Mesh) neighbours(e topology.ElementRef) []int {
	var out []int
	switch e.Kind {
	case topology.Vertex:
		for _, ei := range m.vertEdges[e.ID] {
			v := m.edges[ei].V
			if v[0] == e.ID {
				out = append(out, v[1])
			} else {
				out = append(out, v[0])
			}
		}
	case topology.Face:
		seen := map[int]bool{e.ID: true}
		for _, ei := range m.faceEdges[e.ID] {
			for _, f := range m.edges[ei].Faces {
				if !seen[f] {
					seen[f] = true
					out = append(out, f)
				}
			}
		}
	}
	sort.Ints(out)
	return out
}
