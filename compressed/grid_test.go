package compressed_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagoon/compressed"
)

// denseGrid expands a grid into rows of cells, top to bottom.
func denseGrid[T comparable](g *compressed.Grid[T]) [][]T {
	out := make([][]T, 0, g.Height())
	for row, height := range g.Rows() {
		cells := dense(row)
		for range height {
			out = append(out, append([]T(nil), cells...))
		}
	}
	return out
}

// TestNewGridBadExtent verifies extent validation.
func TestNewGridBadExtent(t *testing.T) {
	_, err := compressed.NewGrid(0, 3, 0)
	assert.ErrorIs(t, err, compressed.ErrBadLength)
	_, err = compressed.NewGrid(3, 0, 0)
	assert.ErrorIs(t, err, compressed.ErrBadLength)
}

// TestGridAtBounds checks out-of-range reads and writes.
func TestGridAtBounds(t *testing.T) {
	g, err := compressed.NewGrid(4, 3, byte('.'))
	require.NoError(t, err)

	v, err := g.At(3, 2)
	require.NoError(t, err)
	assert.Equal(t, byte('.'), v)

	_, err = g.At(4, 0)
	assert.ErrorIs(t, err, compressed.ErrOutOfRange)
	_, err = g.At(0, 3)
	assert.ErrorIs(t, err, compressed.ErrOutOfRange)
	assert.ErrorIs(t, g.Set(-1, 0, 'x'), compressed.ErrOutOfRange)
	assert.ErrorIs(t, g.SetRect(0, 0, 5, 1, 'x'), compressed.ErrOutOfRange)
	assert.ErrorIs(t, g.SetRect(2, 0, 1, 1, 'x'), compressed.ErrOutOfRange)
}

// TestSetRectRowsDoNotAlias writes into part of a band and requires that
// rows outside the rectangle keep their content.
func TestSetRectRowsDoNotAlias(t *testing.T) {
	g, err := compressed.NewGrid(5, 6, 0)
	require.NoError(t, err)
	require.Equal(t, 1, g.NumBands())

	require.NoError(t, g.SetRect(1, 2, 3, 4, 7))
	require.Equal(t, 3, g.NumBands())

	require.NoError(t, g.Set(0, 0, 1))
	require.NoError(t, g.Set(4, 5, 2))
	require.NoError(t, g.SetRect(2, 3, 5, 4, 9))

	want := [][]int{
		{1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 7, 7, 0, 0},
		{0, 7, 9, 9, 9},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 2},
	}
	assert.Equal(t, want, denseGrid(g))
}

// TestSetRectEmptyIsNoop checks that degenerate rectangles do not split.
func TestSetRectEmptyIsNoop(t *testing.T) {
	g, err := compressed.NewGrid(5, 5, 0)
	require.NoError(t, err)
	require.NoError(t, g.SetRect(2, 1, 2, 4, 3))
	require.NoError(t, g.SetRect(0, 5, 5, 5, 3))
	assert.Equal(t, 1, g.NumBands())
}

// TestGridMatchesDense replays random rectangle writes on a compressed and a
// dense grid.
func TestGridMatchesDense(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const w, h = 13, 11
	g, err := compressed.NewGrid(w, h, 0)
	require.NoError(t, err)
	want := make([][]int, h)
	for y := range want {
		want[y] = make([]int, w)
	}

	for step := 0; step < 200; step++ {
		x1 := rng.Intn(w + 1)
		x2 := x1 + rng.Intn(w-x1+1)
		y1 := rng.Intn(h + 1)
		y2 := y1 + rng.Intn(h-y1+1)
		v := rng.Intn(5)
		require.NoError(t, g.SetRect(x1, y1, x2, y2, v))
		for y := y1; y < y2; y++ {
			for x := x1; x < x2; x++ {
				want[y][x] = v
			}
		}
		require.Equal(t, want, denseGrid(g), "step %d", step)
	}

	before := denseGrid(g)
	g.Compact()
	assert.Equal(t, before, denseGrid(g))
}

// TestCloneIsDeep mutates a clone and checks the source is untouched.
func TestCloneIsDeep(t *testing.T) {
	g, err := compressed.NewGrid(3, 3, 'a')
	require.NoError(t, err)
	c := g.Clone()
	require.NoError(t, c.SetRect(0, 0, 3, 3, 'b'))

	v, err := g.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 'a', v)
}

// TestCompactMergesBands verifies that identical neighbouring bands merge.
func TestCompactMergesBands(t *testing.T) {
	g, err := compressed.NewGrid(4, 4, 0)
	require.NoError(t, err)
	require.NoError(t, g.SetRect(0, 1, 4, 3, 0))
	require.Equal(t, 3, g.NumBands())

	assert.Equal(t, 2, g.Compact())
	assert.Equal(t, 1, g.NumBands())
}

// TestRender prints a small grid.
func TestRender(t *testing.T) {
	g, err := compressed.NewGrid(3, 2, false)
	require.NoError(t, err)
	require.NoError(t, g.Set(1, 1, true))

	var buf bytes.Buffer
	require.NoError(t, g.Render(&buf, func(v bool) rune {
		if v {
			return '#'
		}
		return '.'
	}))
	assert.Equal(t, "...\n.#.\n", buf.String())
}
