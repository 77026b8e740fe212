package mesh

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Apply converts a confirmed path into selection, seam and sharp edits.
//
// Vertex paths edit their vertices and the edges between consecutive path
// vertices. Face paths edit their faces; seam and sharp go to every boundary
// edge of every path face, each edge changed once even when two path faces
// share it.
func (m *Mesh) Apply(path topology.Resolved, d topology.Directives) error {
	if err := d.Validate(); err != nil {
		return err
	}
	for _, e := range path.Elements {
		if e.Kind != path.Kind || !m.Contains(e) {
			return errors.Wrapf(ErrUnknownElement, "%v", e)
		}
	}

	flags := m.flags(path.Kind)
	for _, e := range path.Elements {
		flags[e.ID] = d.Select.Apply(flags[e.ID])
	}

	edges := linkedhashset.New()
	switch path.Kind {
	case topology.Vertex:
		for _, link := range path.Links {
			ei, ok := m.EdgeBetween(link[0].ID, link[1].ID)
			if !ok {
				return errors.Wrapf(ErrUnknownElement, "edge %v-%v", link[0], link[1])
			}
			edges.Add(ei)
		}
	case topology.Face:
		for _, e := range path.Elements {
			for _, ei := range m.faceEdges[e.ID] {
				edges.Add(ei)
			}
		}
	}

	it := edges.Iterator()
	for it.Next() {
		edge := &m.edges[it.Value().(int)]
		if path.Kind == topology.Vertex {
			edge.Selected = d.Select.Apply(edge.Selected)
		}
		edge.Seam = d.Seam.Apply(edge.Seam)
		edge.Sharp = d.Sharp.Apply(edge.Sharp)
	}

	klog.V(2).Infof("applied %v to %d %vs and %d edges of %q", d, len(path.Elements), path.Kind, edges.Size(), m.Name)
	return nil
}

// Seams returns the ids of the edges marked as seams.
func (m *Mesh) Seams() []int {
	var out []int
	for i, e := range m.edges {
		if e.Seam {
			out = append(out, i)
		}
	}
	return out
}

// SharpEdges returns the ids of the edges marked sharp.
func (m *Mesh) SharpEdges() []int {
	var out []int
	for i, e := range m.edges {
		if e.Sharp {
			out = append(out, i)
		}
	}
	return out
}
