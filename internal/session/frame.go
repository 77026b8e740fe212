package session

import (
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/plan-systems/klog"
)

// ControlPoint is a control point as drawn. The active point is where the
// next click extends the path.
type ControlPoint struct {
	Element topology.ElementRef
	Active  bool
}

// Frame is everything a renderer needs to draw the current path.
type Frame struct {
	Kind          topology.Kind
	State         State
	ControlPoints []ControlPoint
	Fills         [][]topology.ElementRef
	GapFill       []topology.ElementRef

	// FaceCenters lists the control faces that get a marker at their centre.
	// Empty for vertex paths.
	FaceCenters []topology.ElementRef
}

// Renderer draws a frame after every handled event.
type Renderer interface {
	Draw(frame Frame)
}

// Notifier shows short messages to the user.
type Notifier interface {
	Notify(msg string)
}

// ToolDefaults stores directives as the defaults of the next session.
type ToolDefaults interface {
	SetDefaults(d topology.Directives) error
}

// User facing notices.
const (
	NoticeFillGap       = "Fill gap"
	NoticeMerged        = "Merged 2 overlapping control points"
	NoticeDuplicate     = "Duplicate control points are not allowed, undo"
	NoticeOtherIsland   = "Can't make path on another part of mesh"
	NoticeNothingToUndo = "Can't undo anymore"
	NoticeNothingToRedo = "Can't redo anymore"
)

type logNotifier struct{}

func (logNotifier) Notify(msg string) { klog.Info(msg) }

type nopRenderer struct{}

func (nopRenderer) Draw(Frame) {}
