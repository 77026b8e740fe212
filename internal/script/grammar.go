// Package script reads interaction scripts: plain-text recordings of the
// clicks, drags and keys of a path session, one command per line.
//
//	# close a loop around the hole
//	click v0
//	click v4
//	drag v4 v5 v9
//	set seam Mark
//	gap
//	confirm
package script

import (
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/pkg/errors"
)

// Script is a parsed interaction script.
type Script struct {
	Steps []*Step `parser:"@@*"`
}

// Step is one command of a script.
type Step struct {
	Pos lexer.Position

	Click  *Element `parser:"  'click' @Element"`
	Press  *Element `parser:"| 'press' @Element"`
	Move   *Element `parser:"| 'move' @Element"`
	Remove *Element `parser:"| 'remove' @Element"`
	Drag   *Drag    `parser:"| 'drag' @@"`
	Miss   bool     `parser:"| @'miss'"`
	Set    *Setting `parser:"| 'set' @@"`
	Key    string   `parser:"| @('release' | 'reverse' | 'gap' | 'undo' | 'redo' | 'confirm' | 'cancel' | 'menu')"`
}

// Drag presses From and moves through every element of To before releasing.
type Drag struct {
	From Element   `parser:"@Element"`
	To   []*Target `parser:"@@+"`
}

// Target is one pointer position of a drag.
type Target struct {
	At Element `parser:"@Element"`
}

// Setting changes one session option.
type Setting struct {
	Key   string `parser:"@Ident"`
	Value string `parser:"@Ident"`
}

// Element is a mesh element written as v<n> or f<n>.
type Element struct {
	topology.ElementRef
}

// Capture implements participle.Capture.
func (e *Element) Capture(values []string) error {
	ref, err := topology.ParseElement(values[0])
	if err != nil {
		return err
	}
	e.ElementRef = ref
	return nil
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Element", Pattern: `[vVfF][0-9]+\b`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var scriptParser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads a script from src; name is used in error positions.
func Parse(name, src string) (*Script, error) {
	s, err := scriptParser.ParseString(name, src)
	if err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	return s, nil
}

// ParseFile reads a script file.
func ParseFile(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	return Parse(filename, string(data))
}
