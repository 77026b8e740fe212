package script

import (
	"strconv"

	"github.com/philipparndt/meshpath/internal/session"
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// ErrNoStart is returned when a script does not begin with a click or press.
var ErrNoStart = errors.New("script must start with a click or press on the mesh")

// Command is a single session input: either an event or an option change.
type Command struct {
	Line  int
	Event session.Event
	Set   *Setting
}

var keys = map[string]session.EventKind{
	"release": session.Release,
	"reverse": session.Reverse,
	"gap":     session.ToggleGap,
	"undo":    session.Undo,
	"redo":    session.Redo,
	"confirm": session.Confirm,
	"cancel":  session.Cancel,
	"menu":    session.OpenMenu,
}

// Commands expands the script into session inputs. A click becomes a press
// and a release; a drag becomes a press, one move per target and a release.
func (s *Script) Commands() []Command {
	var out []Command
	for _, st := range s.Steps {
		line := st.Pos.Line
		ev := func(e session.Event) {
			out = append(out, Command{Line: line, Event: e})
		}
		switch {
		case st.Click != nil:
			ev(session.PressOn(st.Click.ElementRef))
			ev(session.Key(session.Release))
		case st.Press != nil:
			ev(session.PressOn(st.Press.ElementRef))
		case st.Move != nil:
			ev(session.MoveTo(st.Move.ElementRef))
		case st.Remove != nil:
			ev(session.RemoveOn(st.Remove.ElementRef))
			ev(session.Key(session.Release))
		case st.Drag != nil:
			ev(session.PressOn(st.Drag.From.ElementRef))
			for _, to := range st.Drag.To {
				ev(session.MoveTo(to.At.ElementRef))
			}
			ev(session.Key(session.Release))
		case st.Miss:
			ev(session.Event{Kind: session.Press})
			ev(session.Key(session.Release))
		case st.Set != nil:
			out = append(out, Command{Line: line, Set: st.Set})
		default:
			ev(session.Key(keys[st.Key]))
		}
	}
	return out
}

// Apply writes the setting into cfg.
func (s Setting) Apply(cfg *session.Config) error {
	switch s.Key {
	case "select":
		cfg.Select = topology.SelectMode(s.Value)
	case "seam":
		cfg.Seam = topology.EdgeMode(s.Value)
	case "sharp":
		cfg.Sharp = topology.EdgeMode(s.Value)
	case "gap_fill", "reverse_direction", "apply_to_tool_defaults":
		b, err := strconv.ParseBool(s.Value)
		if err != nil {
			return errors.Errorf("%s needs true or false, got %q", s.Key, s.Value)
		}
		switch s.Key {
		case "gap_fill":
			cfg.GapFill = b
		case "reverse_direction":
			cfg.ReverseDirection = b
		default:
			cfg.ApplyToToolDefaults = b
		}
	default:
		return errors.Errorf("unknown setting %q", s.Key)
	}
	return cfg.Validate()
}

// Play runs cmds as one session on host. The first command starts the
// session; options set before it go into cfg. Commands after the session
// ends are ignored.
func Play(host topology.Adapter, cmds []Command, cfg session.Config, opts ...session.Option) (*session.Controller, error) {
	i := 0
	for ; i < len(cmds) && cmds[i].Set != nil; i++ {
		if err := cmds[i].Set.Apply(&cfg); err != nil {
			return nil, errors.Wrapf(err, "line %d", cmds[i].Line)
		}
	}
	if i == len(cmds) || cmds[i].Event.Kind != session.Press {
		return nil, ErrNoStart
	}

	first := cmds[i]
	c, err := session.Start(host, first.Event.Element.Kind, first.Event, cfg, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", first.Line)
	}

	for _, cmd := range cmds[i+1:] {
		if c.State().Terminal() {
			klog.V(1).Infof("session %v, ignoring line %d", c.State(), cmd.Line)
			break
		}
		if cmd.Set != nil {
			next := c.Config()
			if err := cmd.Set.Apply(&next); err != nil {
				return c, errors.Wrapf(err, "line %d", cmd.Line)
			}
			if err := c.Configure(next); err != nil {
				return c, errors.Wrapf(err, "line %d", cmd.Line)
			}
			continue
		}
		if err := c.Handle(cmd.Event); err != nil {
			return c, errors.Wrapf(err, "line %d", cmd.Line)
		}
	}
	return c, nil
}
