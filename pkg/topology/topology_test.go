package topology

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseElement(t *testing.T) {
	e, err := ParseElement("v12")
	require.NoError(t, err)
	assert.Equal(t, V(12), e)
	assert.Equal(t, "v12", e.String())

	e, err = ParseElement("F3")
	require.NoError(t, err)
	assert.Equal(t, F(3), e)

	for _, bad := range []string{"", "v", "x4", "v-1", "f1a"} {
		_, err := ParseElement(bad)
		assert.Error(t, err, bad)
	}
}

func TestIslandMembership(t *testing.T) {
	is := NewIsland(Vertex, []ElementRef{V(0), V(1), F(2)})

	assert.Equal(t, 2, is.Size())
	assert.True(t, is.Contains(V(1)))
	assert.False(t, is.Contains(V(2)))
	assert.False(t, is.Contains(F(2)))

	var none *Island
	assert.True(t, none.Contains(F(9)))
}

func TestDirectivesValidate(t *testing.T) {
	require.NoError(t, DefaultDirectives().Validate())

	d := DefaultDirectives()
	d.Seam = "Toogle"
	err := d.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadDirective))
	assert.Contains(t, err.Error(), "seam")
}

func TestModesApply(t *testing.T) {
	assert.True(t, SelectExtend.Apply(false))
	assert.False(t, SelectSubtract.Apply(true))
	assert.True(t, SelectInvert.Apply(false))
	assert.True(t, SelectNone.Apply(true))

	assert.True(t, EdgeMark.Apply(false))
	assert.False(t, EdgeClear.Apply(true))
	assert.False(t, EdgeToggle.Apply(true))
	assert.False(t, EdgeNone.Apply(false))
}
