package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/meshpath/internal/session"
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))
	return filename
}

func TestLoadYAMLKeepsDefaults(t *testing.T) {
	filename := write(t, "path.yaml", "seam: Mark\ngap_fill: true\n")

	cfg, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, topology.SelectExtend, cfg.Select)
	assert.Equal(t, topology.EdgeMark, cfg.Seam)
	assert.Equal(t, topology.EdgeNone, cfg.Sharp)
	assert.True(t, cfg.GapFill)
	assert.True(t, cfg.ApplyToToolDefaults)
}

func TestLoadTOML(t *testing.T) {
	filename := write(t, "path.toml", "select = \"Invert\"\nsharp = \"Toggle\"\napply_to_tool_defaults = false\n")

	cfg, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, topology.SelectInvert, cfg.Select)
	assert.Equal(t, topology.EdgeToggle, cfg.Sharp)
	assert.False(t, cfg.ApplyToToolDefaults)
}

func TestLoadRejectsBadInput(t *testing.T) {
	_, err := Load(write(t, "path.yaml", "select: Everything\n"))
	assert.True(t, errors.Is(err, topology.ErrBadDirective))

	_, err = Load(write(t, "path.json", "{}"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = Load(write(t, "path.toml", "select = [\n"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, session.DefaultConfig(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Seam = topology.EdgeClear
	cfg.ReverseDirection = true

	for _, name := range []string{"tool.yaml", "tool.toml"} {
		filename := filepath.Join(t.TempDir(), name)
		require.NoError(t, Save(filename, cfg))

		loaded, err := Load(filename)
		require.NoError(t, err, name)
		assert.Equal(t, cfg, loaded, name)
	}
}

func TestToolDefaults(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "tool.yaml")
	td := &ToolDefaults{Filename: filename, Config: session.DefaultConfig()}

	d := topology.Directives{Select: topology.SelectNone, Seam: topology.EdgeMark, Sharp: topology.EdgeMark}
	require.NoError(t, td.SetDefaults(d))

	cfg, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, d, cfg.Directives)
}
