// Package session runs an interactive path editing session: it turns user
// events into path model edits, keeps the undo history, pins the path to the
// island of the first click and applies the confirmed path to the mesh.
package session

import (
	"github.com/philipparndt/meshpath/pkg/path"
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

var (
	// ErrEmptyClick is returned by Start when the first click hits nothing.
	ErrEmptyClick = errors.New("first click must hit the mesh")
	// ErrWrongKind is returned by Start when the first click picks another element kind.
	ErrWrongKind = errors.New("element kind does not match the session")
	// ErrSessionOver is returned for events after Finished or Cancelled.
	ErrSessionOver = errors.New("session is over")
	// ErrNoApplier is returned on confirm when nothing can apply the path.
	ErrNoApplier = errors.New("no attribute applier")
)

// Controller is the state machine of one path session.
type Controller struct {
	topo     topology.Adapter
	applier  topology.Applier
	renderer Renderer
	notifier Notifier
	defaults ToolDefaults

	cfg      Config
	kind     topology.Kind
	island   *topology.Island
	model    *path.Model
	history  *path.UndoStack
	original []topology.ElementRef

	state State
	drag  int
}

// Option customises a Controller.
type Option func(*Controller)

// WithApplier sets the applier used on confirm. By default the adapter is
// used when it also implements topology.Applier.
func WithApplier(a topology.Applier) Option {
	return func(c *Controller) { c.applier = a }
}

// WithRenderer sets the renderer that receives a frame after each event.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithNotifier sets where notices go. The default logs them.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithToolDefaults sets where directives are stored when ApplyToToolDefaults is on.
func WithToolDefaults(d ToolDefaults) Option {
	return func(c *Controller) { c.defaults = d }
}

// Start begins a session with the first click. A click on empty space never
// starts a session.
func Start(topo topology.Adapter, kind topology.Kind, first Event, cfg Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !first.Hit {
		return nil, ErrEmptyClick
	}
	if first.Element.Kind != kind {
		return nil, errors.Wrapf(ErrWrongKind, "%v in a %v session", first.Element, kind)
	}

	c := &Controller{
		topo:     topo,
		renderer: nopRenderer{},
		notifier: logNotifier{},
		cfg:      cfg,
		kind:     kind,
		history:  path.NewUndoStack(path.DefaultUndoDepth),
		drag:     -1,
	}
	if a, ok := topo.(topology.Applier); ok {
		c.applier = a
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cfg.ReverseDirection = false

	c.original = topo.Selection(kind)
	c.island = topology.NewIsland(kind, topo.ConnectedComponent(first.Element))
	if !c.island.Contains(first.Element) {
		return nil, errors.Wrapf(ErrEmptyClick, "%v is not part of the mesh", first.Element)
	}
	c.model = path.NewModel(topo, kind, c.island)
	c.model.SetGapFill(cfg.GapFill)
	c.model.Insert(first.Element)
	c.history.Push(c.model.Snapshot())
	c.state = Pressed
	c.drag = 0

	klog.V(2).Infof("session started at %v, island of %d %vs", first.Element, c.island.Size(), kind)
	c.draw()
	return c, nil
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Model returns the path being edited.
func (c *Controller) Model() *path.Model { return c.model }

// History returns the undo history.
func (c *Controller) History() *path.UndoStack { return c.history }

// Config returns the current options.
// Config returns the current options. GapFill always reports the path
// model, which turns it on by itself when a drag closes the loop.
func (c *Controller) Config() Config {
	cfg := c.cfg
	cfg.GapFill = c.model.GapFillEnabled()
	return cfg
}

// Island returns the region the path is pinned to.
func (c *Controller) Island() *topology.Island { return c.island }

// Handle processes one event. Notices never surface as errors; an error
// means the event could not be processed at all.
func (c *Controller) Handle(ev Event) error {
	if c.state.Terminal() {
		return ErrSessionOver
	}
	klog.V(2).Infof("%v: %v", c.state, ev)

	if c.state == Menu {
		switch ev.Kind {
		case OpenMenu:
			c.state = Idle
		case Confirm:
			return c.confirm()
		case Cancel:
			c.cancel()
			return nil
		case Undo:
			c.undo()
			if c.state.Terminal() {
				return nil
			}
		case Redo:
			c.redo()
		default:
			klog.V(2).Infof("menu open, %v ignored", ev.Kind)
		}
		c.draw()
		return nil
	}

	switch ev.Kind {
	case Press:
		c.press(ev)
	case Move:
		c.move(ev)
	case Release:
		c.release()
	case Remove:
		c.remove(ev)
	case Reverse:
		c.reverse()
	case ToggleGap:
		c.setGapFill(!c.model.GapFillEnabled())
	case Undo:
		c.undo()
	case Redo:
		c.redo()
	case Confirm:
		return c.confirm()
	case Cancel:
		c.cancel()
	case OpenMenu:
		c.endDrag()
		c.state = Menu
	}

	if !c.state.Terminal() {
		c.draw()
	}
	return nil
}

// Configure changes the session options while it runs. Gap fill follows
// cfg.GapFill and ReverseDirection reverses the path once.
func (c *Controller) Configure(cfg Config) error {
	if c.state.Terminal() {
		return ErrSessionOver
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.GapFill != c.model.GapFillEnabled() {
		c.setGapFill(cfg.GapFill)
	}
	if cfg.ReverseDirection {
		c.reverse()
		cfg.ReverseDirection = false
	}
	c.cfg = cfg

	var err error
	if cfg.ApplyToToolDefaults {
		err = c.storeDefaults()
	}
	c.draw()
	return err
}

func (c *Controller) setGapFill(on bool) {
	c.model.SetGapFill(on)
	c.cfg.GapFill = on
}

func (c *Controller) press(ev Event) {
	if !c.accept(ev) {
		return
	}
	idx := c.model.IndexOf(ev.Element)
	if idx < 0 {
		idx = c.model.Insert(ev.Element)
	}
	c.drag = idx
	c.state = Pressed
}

func (c *Controller) move(ev Event) {
	if c.state != Pressed && c.state != Dragging {
		return
	}
	if !ev.Hit || !c.island.Contains(ev.Element) {
		return
	}
	if c.drag < 0 || c.drag >= c.model.Len() {
		return
	}
	c.state = Dragging
	if c.model.Point(c.drag) == ev.Element {
		return
	}
	c.model.Replace(c.drag, ev.Element)
}

func (c *Controller) release() {
	if c.state != Pressed && c.state != Dragging {
		return
	}
	c.endDrag()
	c.commit()
}

func (c *Controller) remove(ev Event) {
	if !c.accept(ev) {
		return
	}
	c.endDrag()
	if !c.model.Remove(ev.Element) {
		return
	}
	c.commit()
}

func (c *Controller) reverse() {
	c.endDrag()
	if c.model.GapFillEnabled() {
		klog.V(2).Info("reverse ignored while the gap is filled")
		return
	}
	c.model.Reverse()
	c.push()
}

func (c *Controller) undo() {
	c.endDrag()
	snap, err := c.history.Undo()
	switch {
	case errors.Is(err, path.ErrAtSessionStart):
		c.cancel()
	case err != nil:
		c.notifier.Notify(NoticeNothingToUndo)
	default:
		c.model.Restore(snap)
	}
}

func (c *Controller) redo() {
	c.endDrag()
	snap, err := c.history.Redo()
	if err != nil {
		c.notifier.Notify(NoticeNothingToRedo)
		return
	}
	c.model.Restore(snap)
}

func (c *Controller) confirm() error {
	if c.applier == nil {
		return ErrNoApplier
	}
	resolved := c.model.ResolvedPath()
	c.restoreSelection()
	if err := c.applier.Apply(resolved, c.cfg.Directives); err != nil {
		return errors.Wrap(err, "apply path")
	}

	var err error
	if c.cfg.ApplyToToolDefaults {
		err = c.storeDefaults()
	}
	c.state = Finished
	klog.V(2).Infof("session finished with %d %vs", len(resolved.Elements), c.kind)
	return err
}

func (c *Controller) cancel() {
	c.restoreSelection()
	c.state = Cancelled
	klog.V(2).Info("session cancelled")
}

// commit settles duplicates left by the last edit and records the result.
// A rejected duplicate rolls back to the last recorded state.
func (c *Controller) commit() {
	switch c.model.ResolveDoubles() {
	case path.DoublesClosed:
		c.cfg.GapFill = true
		c.notifier.Notify(NoticeFillGap)
	case path.DoublesMerged:
		c.notifier.Notify(NoticeMerged)
	case path.DoublesRejected:
		if top, ok := c.history.Top(); ok {
			c.model.Restore(top)
		}
		c.notifier.Notify(NoticeDuplicate)
		return
	}
	c.push()
}

// push records the current control points unless they equal the last record.
func (c *Controller) push() {
	snap := c.model.Snapshot()
	if top, ok := c.history.Top(); ok && top.Equal(snap) {
		return
	}
	c.history.Push(snap)
}

// accept reports whether a pointer event may edit the path.
func (c *Controller) accept(ev Event) bool {
	if !ev.Hit {
		return false
	}
	if !c.island.Contains(ev.Element) {
		c.notifier.Notify(NoticeOtherIsland)
		return false
	}
	return true
}

func (c *Controller) endDrag() {
	c.drag = -1
	if c.state == Pressed || c.state == Dragging {
		c.state = Idle
	}
}

func (c *Controller) restoreSelection() {
	c.topo.SetSelection(c.topo.Selection(c.kind), false)
	c.topo.SetSelection(c.original, true)
}

func (c *Controller) storeDefaults() error {
	if c.defaults == nil {
		return nil
	}
	return errors.Wrap(c.defaults.SetDefaults(c.cfg.Directives), "store tool defaults")
}

func (c *Controller) draw() {
	c.renderer.Draw(c.Frame())
}

// Frame returns the drawable state of the path.
func (c *Controller) Frame() Frame {
	points := c.model.Points()
	f := Frame{
		Kind:          c.kind,
		State:         c.state,
		ControlPoints: make([]ControlPoint, len(points)),
		Fills:         c.model.Fills(),
		GapFill:       c.model.GapFill(),
	}
	activeLast := !c.model.GapFillEnabled() || len(points) < 3
	for i, p := range points {
		f.ControlPoints[i] = ControlPoint{Element: p, Active: activeLast && i == len(points)-1}
	}
	if c.kind == topology.Face {
		f.FaceCenters = points
	}
	return f
}
