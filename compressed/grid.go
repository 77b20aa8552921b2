package compressed

import (
	"bufio"
	"io"
	"iter"
)

// Grid is a width×height grid stored as an Axis of row bands, each band
// holding one row Axis shared by all rows of the band. Bands are split, and
// their row deep-copied, whenever a write covers only part of a band.
type Grid[T comparable] struct {
	width, height int
	rows          *Axis[*Axis[T]]
}

// NewGrid returns a width×height grid with every cell set to fill.
// Returns ErrBadLength if either extent is <= 0.
// Complexity: O(1).
func NewGrid[T comparable](width, height int, fill T) (*Grid[T], error) {
	row, err := NewAxis(fill, width)
	if err != nil {
		return nil, err
	}
	rows, err := NewAxis(row, height, WithCloner(cloneRow[T]))
	if err != nil {
		return nil, err
	}

	return &Grid[T]{width: width, height: height, rows: rows}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.height
}

// NumBands returns the current number of row bands.
func (g *Grid[T]) NumBands() int {
	return g.rows.NumSegments()
}

// At returns the value of cell (x, y).
// Returns ErrOutOfRange if the cell lies outside the grid.
// Complexity: O(R + C).
func (g *Grid[T]) At(x, y int) (T, error) {
	var zero T
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return zero, rangeErrorf("Grid.At", x, y)
	}
	seg, _, err := g.rows.Locate(y)
	if err != nil {
		return zero, err
	}

	return g.rows.segs[seg].Value.At(x)
}

// Set assigns v to cell (x, y).
// Returns ErrOutOfRange if the cell lies outside the grid.
func (g *Grid[T]) Set(x, y int, v T) error {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return rangeErrorf("Grid.Set", x, y)
	}

	return g.SetRect(x, y, x+1, y+1, v)
}

// SetRect assigns v to every cell of the half-open rectangle
// [x1,x2)×[y1,y2). An empty rectangle is a no-op.
// Returns ErrOutOfRange unless 0 <= x1 <= x2 <= Width() and
// 0 <= y1 <= y2 <= Height().
// Complexity: O(R + R'·C), independent of the rectangle's area.
func (g *Grid[T]) SetRect(x1, y1, x2, y2 int, v T) error {
	if x1 < 0 || x1 > x2 || x2 > g.width || y1 < 0 || y1 > y2 || y2 > g.height {
		return rangeErrorf("Grid.SetRect", x1, y1, x2, y2)
	}
	if x1 == x2 || y1 == y2 {
		return nil
	}
	// splitting the outer axis hands the head band its own row copy
	lo, hi, err := g.rows.Range(y1, y2)
	if err != nil {
		return err
	}
	for i := lo; i < hi; i++ {
		if err := g.rows.segs[i].Value.SetRange(x1, x2, v); err != nil {
			return err
		}
	}

	return nil
}

// Rows iterates the row bands top to bottom, yielding (row, band height).
// The yielded rows belong to the grid and must not be mutated.
func (g *Grid[T]) Rows() iter.Seq2[*Axis[T], int] {
	return g.rows.All()
}

// Clone returns a deep copy of the grid.
// Complexity: O(R·C).
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{width: g.width, height: g.height, rows: g.rows.Clone()}
}

// Compact merges equal neighbouring runs inside every row, then equal
// neighbouring row bands. It returns the number of row runs and bands
// removed. Cell values are unchanged.
// Complexity: O(R·C).
func (g *Grid[T]) Compact() int {
	removed := 0
	for row := range g.rows.All() {
		removed += row.CompactFunc(equal[T])
	}
	removed += g.rows.CompactFunc(func(a, b *Axis[T]) bool {
		return a.EqualFunc(b, equal[T])
	})

	return removed
}

// Render writes the grid densely, one text line per row, mapping each cell
// through glyph. It is meant for debugging small grids: output size is
// Width()·Height().
func (g *Grid[T]) Render(w io.Writer, glyph func(T) rune) error {
	bw := bufio.NewWriter(w)
	for row, height := range g.rows.All() {
		line := make([]rune, 0, g.width+1)
		for v, n := range row.All() {
			r := glyph(v)
			for range n {
				line = append(line, r)
			}
		}
		line = append(line, '\n')
		for range height {
			if _, err := bw.WriteString(string(line)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// cloneRow is the outer-axis cloner: every duplicated band gets its own row.
func cloneRow[T comparable](row *Axis[T]) *Axis[T] {
	return row.Clone()
}

func equal[T comparable](a, b T) bool {
	return a == b
}
