package ezgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadingIndexAdd(t *testing.T) {
	x := NewHeadingIndex[string](RowAxis)

	for i, h := range []string{"a", "b", "c"} {
		pos, err := x.Add(h)
		require.NoError(t, err)
		assert.Equal(t, i, pos)
	}

	_, err := x.Add("b")
	assert.ErrorIs(t, err, ErrDuplicateHeading)
	assert.Equal(t, 3, x.Len())
	assert.Equal(t, []string{"a", "b", "c"}, x.Headings())
}

func TestHeadingIndexPositionOf(t *testing.T) {
	x := NewHeadingIndex[int](ColAxis)
	x.Add(10)
	x.Add(20)

	pos, err := x.PositionOf(20)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	_, err = x.PositionOf(30)
	var he *HeadingError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, ColAxis, he.Axis)
	assert.Equal(t, 30, he.Heading)
	assert.False(t, x.Has(30))
}

func TestHeadingIndexSwap(t *testing.T) {
	x := NewHeadingIndex[string](RowAxis)
	for _, h := range []string{"a", "b", "c", "d"} {
		x.Add(h)
	}

	x.Swap(0, 2)

	assert.Equal(t, []string{"c", "b", "a", "d"}, x.Headings())
	for pos, h := range x.Headings() {
		got, err := x.PositionOf(h)
		require.NoError(t, err)
		assert.Equal(t, pos, got, h)
		assert.Equal(t, h, x.HeadingAt(pos))
	}

	// Slots stay with their heading.
	slot, err := x.SlotOf("a")
	require.NoError(t, err)
	assert.Equal(t, 0, slot)
	assert.Equal(t, 2, x.SlotAt(0))

	x.Swap(1, 1)
	assert.Equal(t, []string{"c", "b", "a", "d"}, x.Headings())

	pos, err := x.Add("e")
	require.NoError(t, err)
	assert.Equal(t, 4, pos)
	assert.Equal(t, 4, x.SlotAt(4))
}

func TestHeadingsIsCopy(t *testing.T) {
	x := NewHeadingIndex[string](RowAxis)
	x.Add("a")

	hs := x.Headings()
	hs[0] = "z"

	assert.Equal(t, "a", x.HeadingAt(0))
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "row", RowAxis.String())
	assert.Equal(t, "column", ColAxis.String())
	assert.Equal(t, "axis(7)", Axis(7).String())
}

func TestOptions(t *testing.T) {
	o := DefaultOptions[int]()
	assert.Equal(t, DefaultName, o.GridName())
	assert.Equal(t, 0, o.DefaultValue())

	o = o.WithDefault(5)
	assert.Equal(t, 5, o.DefaultValue())

	assert.Equal(t, "Named", Options[int]{Name: "Named"}.GridName())
}
