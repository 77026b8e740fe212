package topology

// Adapter is the host mesh as seen by a path session. The path model never
// searches the mesh itself; it only issues these queries.
type Adapter interface {
	// ShortestPath returns the element chain from a to b, both endpoints
	// included, staying inside within when it is non-nil. The result is empty
	// when a == b or when no route exists. Hosts may also decline to return a
	// trivial one-step vertex path.
	ShortestPath(a, b ElementRef, within *Island) []ElementRef

	// ConnectedComponent returns every element linked to seed, seed included.
	ConnectedComponent(seed ElementRef) []ElementRef

	// Adjacent reports whether a and b share an edge (vertices) or an edge
	// of their boundaries (faces).
	Adjacent(a, b ElementRef) bool

	// Selection returns the currently selected elements of the given kind.
	Selection(kind Kind) []ElementRef

	// SetSelection sets the selection flag of every element in elems.
	SetSelection(elems []ElementRef, selected bool)
}

// Resolved is a confirmed path ready for attribute application.
type Resolved struct {
	Kind Kind

	// Elements in path order, without repeats.
	Elements []ElementRef

	// Links are the consecutive element pairs of every fill, without
	// repeats. For vertex paths these are the path's edges.
	Links [][2]ElementRef
}

// Applier converts a resolved path into mesh edits.
type Applier interface {
	Apply(path Resolved, directives Directives) error
}
