// Package topology defines the mesh element references a path is built from
// and the contracts the host mesh has to fulfil: shortest-path and island
// queries, selection flags and the final attribute edits.
package topology

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind tells which mesh elements a path is made of.
type Kind uint8

const (
	Vertex Kind = iota
	Face
)

func (k Kind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Face:
		return "face"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Prefix is the one-letter tag used when an element is written as text ("v12", "f3").
func (k Kind) Prefix() byte {
	if k == Face {
		return 'f'
	}
	return 'v'
}

// ParseKind accepts "vertex", "vert", "v", "face" and "f". Edge names map to
// Vertex since a vertex path is edited through its edges.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "vertex", "vert", "v", "edge", "edges":
		return Vertex, nil
	case "face", "faces", "f":
		return Face, nil
	}
	return 0, errors.Errorf("unknown element kind %q", s)
}

// ElementRef identifies one vertex or face of the mesh being edited.
// Refs are only meaningful for the mesh of the session that produced them.
type ElementRef struct {
	Kind Kind
	ID   int
}

// V returns a vertex reference.
func V(id int) ElementRef { return ElementRef{Kind: Vertex, ID: id} }

// F returns a face reference.
func F(id int) ElementRef { return ElementRef{Kind: Face, ID: id} }

func (e ElementRef) String() string {
	return fmt.Sprintf("%c%d", e.Kind.Prefix(), e.ID)
}

// ParseElement parses the textual form produced by String.
func ParseElement(s string) (ElementRef, error) {
	if len(s) < 2 {
		return ElementRef{}, errors.Errorf("bad element %q", s)
	}
	var kind Kind
	switch s[0] {
	case 'v', 'V':
		kind = Vertex
	case 'f', 'F':
		kind = Face
	default:
		return ElementRef{}, errors.Errorf("bad element %q: expected v<n> or f<n>", s)
	}
	id, err := strconv.Atoi(s[1:])
	if err != nil || id < 0 {
		return ElementRef{}, errors.Errorf("bad element index in %q", s)
	}
	return ElementRef{Kind: kind, ID: id}, nil
}
