package mesh

import (
	"github.com/philipparndt/meshpath/pkg/geometry"
	"github.com/pkg/errors"
)

// NewGrid builds a flat cols x rows quad grid in the XY plane with unit cells.
//
// Vertex (x, y) has id y*(cols+1)+x and face (x, y) has id y*cols+x, which
// makes grids handy fixtures for path sessions.
func NewGrid(cols, rows int) (*Mesh, error) {
	if cols < 1 || rows < 1 {
		return nil, errors.Errorf("grid needs at least one cell, got %dx%d", cols, rows)
	}
	positions := make([]geometry.Vector3, 0, (cols+1)*(rows+1))
	for y := 0; y <= rows; y++ {
		for x := 0; x <= cols; x++ {
			positions = append(positions, geometry.NewVector3(float64(x), float64(y), 0))
		}
	}
	faces := make([][]int, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := y*(cols+1) + x
			faces = append(faces, []int{v, v + 1, v + cols + 2, v + cols + 1})
		}
	}
	return New("grid", positions, faces)
}
