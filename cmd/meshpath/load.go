package main

import (
	"fmt"
	"strings"

	"github.com/philipparndt/meshpath/pkg/mesh"
	"github.com/philipparndt/meshpath/pkg/stl"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

const gridPrefix = "grid:"

// loadMesh reads an STL file, or builds a grid for "grid:COLSxROWS".
func loadMesh(source string) (*mesh.Mesh, error) {
	if strings.HasPrefix(source, gridPrefix) {
		var cols, rows int
		if _, err := fmt.Sscanf(strings.TrimPrefix(source, gridPrefix), "%dx%d", &cols, &rows); err != nil {
			return nil, errors.Errorf("bad grid %q, expected grid:COLSxROWS", source)
		}
		return mesh.NewGrid(cols, rows)
	}

	model, err := stl.Parse(source)
	if err != nil {
		return nil, errors.Wrap(err, "parse STL file")
	}
	m := mesh.FromSTL(model)
	if m.Name == "" {
		m.Name = source
	}
	klog.V(1).Infof("loaded %s: %d triangles welded into %d vertices", source, model.TriangleCount(), m.VertexCount())
	return m, nil
}
