package mesh

import (
	"fmt"
	"math"

	"github.com/philipparndt/meshpath/pkg/geometry"
	"github.com/philipparndt/meshpath/pkg/topology"
)

// Stats summarises a mesh for the info command.
type Stats struct {
	Vertices      int
	Faces         int
	Edges         int
	BoundaryEdges int
	Islands       int

	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Analyze computes the statistics of m.
func Analyze(m *Mesh) *Stats {
	s := &Stats{
		Vertices:    m.VertexCount(),
		Faces:       m.FaceCount(),
		Edges:       m.EdgeCount(),
		Islands:     len(m.Islands(topology.Vertex)),
		BoundingBox: geometry.NewBoundingBox(),
	}

	for _, p := range m.positions {
		s.BoundingBox.Extend(p)
	}
	if s.Vertices > 0 {
		s.Dimensions = s.BoundingBox.Size()
	}

	for f := range m.faces {
		s.SurfaceArea += m.FaceArea(f)
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	for _, e := range m.edges {
		if e.Boundary() {
			s.BoundaryEdges++
		}
		length := m.positions[e.V[0]].Distance(m.positions[e.V[1]])
		totalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}
	if s.Edges > 0 {
		s.MinEdgeLength = minLength
		s.MaxEdgeLength = maxLength
		s.AvgEdgeLength = totalLength / float64(s.Edges)
	}

	return s
}

// FaceArea returns the area of face f, fanned into triangles from its first corner.
func (m *Mesh) FaceArea(f int) float64 {
	loop := m.faces[f]
	area := 0.0
	for i := 1; i+1 < len(loop); i++ {
		tri := geometry.Triangle{V1: m.positions[loop[0]], V2: m.positions[loop[i]], V3: m.positions[loop[i+1]]}
		area += tri.Area()
	}
	return area
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
