package topology

import (
	"github.com/pkg/errors"
)

// SelectMode says how path elements change the existing selection.
type SelectMode string

const (
	SelectExtend   SelectMode = "Extend"
	SelectNone     SelectMode = "None"
	SelectSubtract SelectMode = "Subtract"
	SelectInvert   SelectMode = "Invert"
)

// EdgeMode says how a boolean edge attribute (seam, sharp) changes along the path.
type EdgeMode string

const (
	EdgeMark   EdgeMode = "Mark"
	EdgeNone   EdgeMode = "None"
	EdgeClear  EdgeMode = "Clear"
	EdgeToggle EdgeMode = "Toggle"
)

// ErrBadDirective is returned for an unknown select, seam or sharp mode.
var ErrBadDirective = errors.New("unknown directive")

// Directives are the three independent edits applied on confirm.
type Directives struct {
	Select SelectMode `yaml:"select" toml:"select"`
	Seam   EdgeMode   `yaml:"seam" toml:"seam"`
	Sharp  EdgeMode   `yaml:"sharp" toml:"sharp"`
}

// DefaultDirectives extends the selection and leaves seams and sharpness alone.
func DefaultDirectives() Directives {
	return Directives{Select: SelectExtend, Seam: EdgeNone, Sharp: EdgeNone}
}

// Validate checks every mode against its known values.
func (d Directives) Validate() error {
	switch d.Select {
	case SelectExtend, SelectNone, SelectSubtract, SelectInvert:
	default:
		return errors.Wrapf(ErrBadDirective, "select mode %q", d.Select)
	}
	if !d.Seam.valid() {
		return errors.Wrapf(ErrBadDirective, "seam mode %q", d.Seam)
	}
	if !d.Sharp.valid() {
		return errors.Wrapf(ErrBadDirective, "sharp mode %q", d.Sharp)
	}
	return nil
}

// Apply returns the new selection flag for an element currently flagged cur.
func (m SelectMode) Apply(cur bool) bool {
	switch m {
	case SelectExtend:
		return true
	case SelectSubtract:
		return false
	case SelectInvert:
		return !cur
	}
	return cur
}

// Apply returns the new attribute value for an edge currently flagged cur.
func (m EdgeMode) Apply(cur bool) bool {
	switch m {
	case EdgeMark:
		return true
	case EdgeClear:
		return false
	case EdgeToggle:
		return !cur
	}
	return cur
}

func (m EdgeMode) valid() bool {
	switch m {
	case EdgeMark, EdgeNone, EdgeClear, EdgeToggle:
		return true
	}
	return false
}
