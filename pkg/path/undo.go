package path

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/pkg/errors"
)

// DefaultUndoDepth bounds both the undo and the redo history.
const DefaultUndoDepth = 10

var (
	ErrNothingToUndo  = errors.New("can't undo anymore")
	ErrAtSessionStart = errors.New("no state before the session start")
	ErrNothingToRedo  = errors.New("can't redo anymore")
)

// Snapshot is an immutable copy of a control point sequence.
type Snapshot struct {
	points []topology.ElementRef
}

// Snapshot captures the current control points. Fills are derived and are
// recomputed on restore.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{points: cloneRefs(m.points)}
}

// Restore replaces the control points with s and recomputes every fill.
func (m *Model) Restore(s Snapshot) {
	m.points = cloneRefs(s.points)
	m.FullRecompute()
}

// Points returns a copy of the captured control points.
func (s Snapshot) Points() []topology.ElementRef { return cloneRefs(s.points) }

// Len returns the number of captured control points.
func (s Snapshot) Len() int { return len(s.points) }

// Equal reports whether both snapshots hold the same sequence.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.points) != len(other.points) {
		return false
	}
	for i, p := range s.points {
		if other.points[i] != p {
			return false
		}
	}
	return true
}

// UndoStack keeps the bounded undo and redo histories of a session.
// The top of the undo history is always the current state.
type UndoStack struct {
	depth int
	undo  *doublylinkedlist.List
	redo  *doublylinkedlist.List
}

// NewUndoStack creates empty histories holding at most depth entries each.
// A depth below 1 selects DefaultUndoDepth.
func NewUndoStack(depth int) *UndoStack {
	if depth < 1 {
		depth = DefaultUndoDepth
	}
	return &UndoStack{
		depth: depth,
		undo:  doublylinkedlist.New(),
		redo:  doublylinkedlist.New(),
	}
}

// Depth returns the history bound.
func (s *UndoStack) Depth() int { return s.depth }

// UndoLen returns the number of undo entries, the current state included.
func (s *UndoStack) UndoLen() int { return s.undo.Size() }

// RedoLen returns the number of redo entries.
func (s *UndoStack) RedoLen() int { return s.redo.Size() }

// Push records a new state after a user edit and invalidates the redo history.
func (s *UndoStack) Push(snap Snapshot) {
	pushBounded(s.undo, snap, s.depth)
	s.redo.Clear()
}

// Top returns the current state.
func (s *UndoStack) Top() (Snapshot, bool) {
	return peek(s.undo)
}

// Undo moves the current state to the redo history and returns the state to restore.
//
// With a single entry there is nothing before the session's first click:
// ErrAtSessionStart tells the caller to cancel the session.
func (s *UndoStack) Undo() (Snapshot, error) {
	switch s.undo.Size() {
	case 0:
		return Snapshot{}, ErrNothingToUndo
	case 1:
		return Snapshot{}, ErrAtSessionStart
	}
	step, _ := pop(s.undo)
	pushBounded(s.redo, step, s.depth)
	top, _ := peek(s.undo)
	return top, nil
}

// Redo moves the last undone state back on the undo history and returns it.
func (s *UndoStack) Redo() (Snapshot, error) {
	step, ok := pop(s.redo)
	if !ok {
		return Snapshot{}, ErrNothingToRedo
	}
	pushBounded(s.undo, step, s.depth)
	return step, nil
}

func pushBounded(l *doublylinkedlist.List, snap Snapshot, depth int) {
	l.Add(snap)
	for l.Size() > depth {
		l.Remove(0)
	}
}

func peek(l *doublylinkedlist.List) (Snapshot, bool) {
	v, ok := l.Get(l.Size() - 1)
	if !ok {
		return Snapshot{}, false
	}
	return v.(Snapshot), true
}

func pop(l *doublylinkedlist.List) (Snapshot, bool) {
	snap, ok := peek(l)
	if ok {
		l.Remove(l.Size() - 1)
	}
	return snap, ok
}
