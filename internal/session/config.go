package session

import (
	"github.com/philipparndt/meshpath/pkg/topology"
)

// Config holds the options of a path session. The embedded directives are
// applied on confirm; the remaining fields steer the session itself.
type Config struct {
	topology.Directives `yaml:",inline"`

	// ApplyToToolDefaults writes the directives back to the tool defaults
	// whenever they are changed or applied.
	ApplyToToolDefaults bool `yaml:"apply_to_tool_defaults" toml:"apply_to_tool_defaults"`

	// GapFill closes the path from the last control point to the first.
	GapFill bool `yaml:"gap_fill" toml:"gap_fill"`

	// ReverseDirection reverses the path once when passed to Configure.
	ReverseDirection bool `yaml:"reverse_direction" toml:"reverse_direction"`
}

// DefaultConfig extends the selection, leaves edges alone and remembers the
// directives as tool defaults.
func DefaultConfig() Config {
	return Config{
		Directives:          topology.DefaultDirectives(),
		ApplyToToolDefaults: true,
	}
}

// Validate checks the directives.
func (c Config) Validate() error {
	return c.Directives.Validate()
}
