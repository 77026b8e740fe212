package script

import (
	"testing"

	"github.com/philipparndt/meshpath/internal/session"
	"github.com/philipparndt/meshpath/pkg/mesh"
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse("test", `
# build and fix a path
click v0
drag v3 v4 f5   # mixed kinds parse, the session decides
set seam Mark
undo redo
miss
`)
	require.NoError(t, err)
	require.Len(t, s.Steps, 6)

	assert.Equal(t, topology.V(0), s.Steps[0].Click.ElementRef)
	assert.Equal(t, 3, s.Steps[0].Pos.Line)
	assert.Equal(t, topology.V(3), s.Steps[1].Drag.From.ElementRef)
	require.Len(t, s.Steps[1].Drag.To, 2)
	assert.Equal(t, topology.F(5), s.Steps[1].Drag.To[1].At.ElementRef)
	assert.Equal(t, &Setting{Key: "seam", Value: "Mark"}, s.Steps[2].Set)
	assert.Equal(t, "undo", s.Steps[3].Key)
	assert.Equal(t, "redo", s.Steps[4].Key)
	assert.True(t, s.Steps[5].Miss)
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"click",
		"click x3",
		"jump v1",
		"drag v1",
		"set seam",
	} {
		_, err := Parse("bad", src)
		assert.Error(t, err, src)
	}
}

func TestCommands(t *testing.T) {
	s, err := Parse("test", "click v1\ndrag v1 v2 v3\nremove v2\nmiss\ngap\nset gap_fill true")
	require.NoError(t, err)

	cmds := s.Commands()
	var events []string
	for _, c := range cmds {
		if c.Set != nil {
			events = append(events, "set "+c.Set.Key)
			continue
		}
		events = append(events, c.Event.String())
	}
	assert.Equal(t, []string{
		"press v1", "release",
		"press v1", "move v2", "move v3", "release",
		"remove v2", "release",
		"press <miss>", "release",
		"gap",
		"set gap_fill",
	}, events)
	assert.Equal(t, 2, cmds[2].Line)
}

func TestSettingApply(t *testing.T) {
	cfg := session.DefaultConfig()

	require.NoError(t, Setting{Key: "sharp", Value: "Toggle"}.Apply(&cfg))
	require.NoError(t, Setting{Key: "apply_to_tool_defaults", Value: "false"}.Apply(&cfg))
	assert.Equal(t, topology.EdgeToggle, cfg.Sharp)
	assert.False(t, cfg.ApplyToToolDefaults)

	assert.Error(t, Setting{Key: "gap_fill", Value: "sometimes"}.Apply(&cfg))
	assert.Error(t, Setting{Key: "colour", Value: "red"}.Apply(&cfg))
	assert.True(t, errors.Is(Setting{Key: "select", Value: "All"}.Apply(&cfg), topology.ErrBadDirective))
}

func play(t *testing.T, m *mesh.Mesh, src string) (*session.Controller, error) {
	t.Helper()
	s, err := Parse("test", src)
	require.NoError(t, err)
	return Play(m, s.Commands(), session.DefaultConfig())
}

func TestPlay(t *testing.T) {
	m, err := mesh.NewGrid(5, 1)
	require.NoError(t, err)

	c, err := play(t, m, `
set seam Mark
click v0
click v3
drag v3 v4
confirm
click v5
`)
	require.NoError(t, err)
	assert.Equal(t, session.Finished, c.State())
	assert.Equal(t, []topology.ElementRef{
		topology.V(0), topology.V(1), topology.V(2), topology.V(3), topology.V(4),
	}, m.Selection(topology.Vertex))
	assert.Len(t, m.Seams(), 4)
}

func TestPlayConfigureMidSession(t *testing.T) {
	m, _ := mesh.NewGrid(5, 1)

	c, err := play(t, m, "click v0\nclick v3\nset reverse_direction true\nset gap_fill true")
	require.NoError(t, err)
	assert.Equal(t, []topology.ElementRef{topology.V(3), topology.V(0)}, c.Model().Points())
	assert.True(t, c.Model().GapFillEnabled())
	assert.False(t, c.Config().ReverseDirection)
}

func TestPlayNeedsAStart(t *testing.T) {
	m, _ := mesh.NewGrid(1, 1)

	_, err := play(t, m, "undo\nclick v0")
	assert.Equal(t, ErrNoStart, err)

	_, err = play(t, m, "miss\nclick v0")
	assert.True(t, errors.Is(err, session.ErrEmptyClick))

	_, err = play(t, m, "set seam Sometimes\nclick v0")
	assert.True(t, errors.Is(err, topology.ErrBadDirective))
}
