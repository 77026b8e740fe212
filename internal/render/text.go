// Package render draws session frames as plain text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/meshpath/internal/session"
	"github.com/philipparndt/meshpath/pkg/geometry"
	"github.com/philipparndt/meshpath/pkg/topology"
)

// Centers locates face centre markers.
type Centers interface {
	FaceCenter(f int) geometry.Vector3
}

// Text writes one block per frame.
type Text struct {
	w       io.Writer
	centers Centers
	frame   int
}

// NewText returns a renderer writing to w. When centers is nil face centre
// markers are listed without coordinates.
func NewText(w io.Writer, centers Centers) *Text {
	return &Text{w: w, centers: centers}
}

// Draw implements session.Renderer.
func (t *Text) Draw(f session.Frame) {
	t.frame++
	fmt.Fprintf(t.w, "#%d %s %s path:", t.frame, f.State, f.Kind)
	for _, p := range f.ControlPoints {
		if p.Active {
			fmt.Fprintf(t.w, " [%s]", p.Element)
		} else {
			fmt.Fprintf(t.w, " %s", p.Element)
		}
	}
	fmt.Fprintln(t.w)

	for i, fill := range f.Fills {
		fmt.Fprintf(t.w, "  fill %d: %s\n", i, Elements(fill))
	}
	if len(f.GapFill) > 0 {
		fmt.Fprintf(t.w, "  gap: %s\n", Elements(f.GapFill))
	}
	for _, face := range f.FaceCenters {
		if t.centers == nil {
			fmt.Fprintf(t.w, "  centre %s\n", face)
			continue
		}
		c := t.centers.FaceCenter(face.ID)
		fmt.Fprintf(t.w, "  centre %s (%.3f, %.3f, %.3f)\n", face, c.X, c.Y, c.Z)
	}
}

// Elements joins refs with spaces.
func Elements(refs []topology.ElementRef) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}

// Printer writes notices on their own line.
type Printer struct {
	W io.Writer
}

// Notify implements session.Notifier.
func (p Printer) Notify(msg string) {
	fmt.Fprintf(p.W, "! %s\n", msg)
}
