package path

import (
	"math/rand"
	"testing"

	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertConsistent(t *testing.T, m *Model) {
	t.Helper()
	points := m.Points()
	fills := m.Fills()
	require.Len(t, fills, max(len(points)-1, 0))
	for i, f := range fills {
		if len(f) == 0 {
			continue
		}
		assert.Equal(t, points[i], f[0], "fill %d start", i)
		assert.Equal(t, points[i+1], f[len(f)-1], "fill %d end", i)
	}
}

func TestInsertAppends(t *testing.T) {
	m, _ := newChainModel(1, 4, 7)

	assert.Equal(t, vs(1, 4, 7), m.Points())
	assert.Equal(t, [][]topology.ElementRef{vs(1, 2, 3, 4), vs(4, 5, 6, 7)}, m.Fills())
	assertConsistent(t, m)

	assert.Equal(t, 3, m.Insert(topology.V(9)))
	assert.Equal(t, vs(7, 8, 9), m.Fills()[2])
}

func TestInsertExistingPointIsNoop(t *testing.T) {
	m, _ := newChainModel(1, 4)
	q := m.Queries()

	assert.Equal(t, -1, m.Insert(topology.V(4)))
	assert.Equal(t, vs(1, 4), m.Points())
	assert.Equal(t, q, m.Queries())
}

func TestInsertOnFillSplits(t *testing.T) {
	m, _ := newChainModel(1, 7)

	idx := m.Insert(topology.V(4))

	assert.Equal(t, 1, idx)
	assert.Equal(t, vs(1, 4, 7), m.Points())
	assert.Equal(t, [][]topology.ElementRef{vs(1, 2, 3, 4), vs(4, 5, 6, 7)}, m.Fills())

	m2, _ := newChainModel(5, 1)
	assert.Equal(t, 1, m2.Insert(topology.V(3)))
	assert.Equal(t, vs(5, 3, 1), m2.Points())
	assertConsistent(t, m2)
}

func TestInsertKeepsSegmentInvariant(t *testing.T) {
	m, _ := newChainModel()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 40; i++ {
		m.Insert(topology.V(rng.Intn(10)))
		assertConsistent(t, m)
	}
}

func TestRemove(t *testing.T) {
	m, _ := newChainModel(1, 4, 7)

	assert.False(t, m.Remove(topology.V(5)))
	require.True(t, m.Remove(topology.V(4)))

	assert.Equal(t, vs(1, 7), m.Points())
	assert.Equal(t, [][]topology.ElementRef{vs(1, 2, 3, 4, 5, 6, 7)}, m.Fills())

	require.True(t, m.Remove(topology.V(1)))
	require.True(t, m.Remove(topology.V(7)))
	assert.Empty(t, m.Fills())
}

func TestReplaceTouchesAtMostTwoFills(t *testing.T) {
	m, _ := newChainModel(1, 4, 7)

	q := m.Queries()
	m.Replace(1, topology.V(5))
	assert.Equal(t, q+2, m.Queries())
	assert.Equal(t, [][]topology.ElementRef{vs(1, 2, 3, 4, 5), vs(5, 6, 7)}, m.Fills())

	q = m.Queries()
	m.Replace(0, topology.V(0))
	assert.Equal(t, q+1, m.Queries())

	m.SetGapFill(true)
	q = m.Queries()
	m.Replace(2, topology.V(8))
	assert.Equal(t, q+2, m.Queries(), "endpoint drag refreshes its fill and the gap fill")
	assert.Equal(t, vs(8, 7, 6, 5, 4, 3, 2, 1, 0), m.GapFill())
	assertConsistent(t, m)
}

func TestReplaceOntoNeighbourEmptiesFill(t *testing.T) {
	m, _ := newChainModel(1, 4, 7)

	m.Replace(1, topology.V(1))

	assert.Empty(t, m.Fills()[0])
	assert.Equal(t, vs(1, 2, 3, 4, 5, 6, 7), m.Fills()[1])
}

func TestFullRecomputeQueriesEachPairOnce(t *testing.T) {
	m, _ := newChainModel(0, 2, 4, 6, 8)
	before := m.Fills()

	q := m.Queries()
	m.FullRecompute()

	assert.Equal(t, q+4, m.Queries())
	assert.Equal(t, before, m.Fills())
}

func TestReverseIsInvolution(t *testing.T) {
	m, _ := newChainModel(1, 4, 7)
	points, fills := m.Points(), m.Fills()

	m.Reverse()
	assert.Equal(t, vs(7, 4, 1), m.Points())
	assert.Equal(t, [][]topology.ElementRef{vs(7, 6, 5, 4), vs(4, 3, 2, 1)}, m.Fills())

	m.Reverse()
	assert.Equal(t, points, m.Points())
	assert.Equal(t, fills, m.Fills())
}

func TestGapFill(t *testing.T) {
	m, _ := newChainModel(1, 4)

	m.SetGapFill(true)
	assert.True(t, m.GapFillEnabled())
	assert.Empty(t, m.GapFill(), "two points leave no gap")

	m.Insert(topology.V(7))
	assert.Equal(t, vs(7, 6, 5, 4, 3, 2, 1), m.GapFill())

	m.SetGapFill(false)
	assert.Empty(t, m.GapFill())
}

func TestAdjacentVertexFallback(t *testing.T) {
	g := chain(topology.Vertex, 5)
	g.declineTrivial = true
	m := NewModel(g, topology.Vertex, nil)

	m.Insert(topology.V(2))
	m.Insert(topology.V(3))
	m.Insert(topology.V(0))

	assert.Equal(t, [][]topology.ElementRef{vs(2, 3), vs(3, 2, 1, 0)}, m.Fills())
}

func TestAdjacentFaceHasNoFallback(t *testing.T) {
	g := chain(topology.Face, 5)
	g.declineTrivial = true
	m := NewModel(g, topology.Face, nil)

	m.Insert(topology.F(2))
	m.Insert(topology.F(3))

	require.Len(t, m.Fills(), 1)
	assert.Empty(t, m.Fills()[0])
	assert.Equal(t, fs(2, 3), m.ResolvedPath().Elements, "face paths keep their control points")
}

func TestIslandBoundsQueries(t *testing.T) {
	// 0-3-2 is the short way round but 3 lies outside the island.
	g := newGraph(topology.Vertex, [2]int{0, 1}, [2]int{1, 5}, [2]int{5, 2}, [2]int{0, 3}, [2]int{3, 2})
	island := topology.NewIsland(topology.Vertex, vs(0, 1, 2, 5))
	m := NewModel(g, topology.Vertex, island)

	m.Insert(topology.V(0))
	m.Insert(topology.V(2))
	assert.Equal(t, vs(0, 1, 5, 2), m.Fills()[0])

	open := NewModel(g, topology.Vertex, nil)
	open.Insert(topology.V(0))
	open.Insert(topology.V(2))
	assert.Equal(t, vs(0, 3, 2), open.Fills()[0])
}

func TestResolvedPath(t *testing.T) {
	m, _ := newChainModel(1, 3, 5)
	m.SetGapFill(true)

	res := m.ResolvedPath()

	assert.Equal(t, topology.Vertex, res.Kind)
	assert.Equal(t, vs(1, 2, 3, 4, 5), res.Elements)
	assert.ElementsMatch(t, [][2]topology.ElementRef{
		{topology.V(1), topology.V(2)},
		{topology.V(2), topology.V(3)},
		{topology.V(3), topology.V(4)},
		{topology.V(4), topology.V(5)},
	}, res.Links)
}

func TestResolvedPathSingleFace(t *testing.T) {
	g := chain(topology.Face, 4)
	m := NewModel(g, topology.Face, nil)
	m.Insert(topology.F(2))

	res := m.ResolvedPath()
	assert.Equal(t, fs(2), res.Elements)
	assert.Empty(t, res.Links)
}
