package trench

import (
	"fmt"

	"github.com/katalvlaran/lagoon/compressed"
)

// Measure validates instrs and replays them from (0,0), returning the
// bounding box of every visited point.
//
// Returns ErrMalformedInstruction for an invalid edge, ErrTooLarge once the
// box grows wider or taller than MaxExtent, and ErrUnclosedLoop when instrs
// is empty or does not end where it started.
// Complexity: O(n).
func Measure(instrs []Instruction) (Bounds, error) {
	if len(instrs) == 0 {
		return Bounds{}, fmt.Errorf("%w: no instructions", ErrUnclosedLoop)
	}
	var b Bounds
	cur := Cursor{}
	for i, in := range instrs {
		if err := in.Validate(); err != nil {
			return Bounds{}, fmt.Errorf("instruction %d: %w", i, err)
		}
		cur = cur.Advance(in)
		b.MinX = min(b.MinX, cur.X)
		b.MinY = min(b.MinY, cur.Y)
		b.MaxX = max(b.MaxX, cur.X)
		b.MaxY = max(b.MaxY, cur.Y)
		if b.Width() > MaxExtent || b.Height() > MaxExtent {
			return Bounds{}, fmt.Errorf("instruction %d: %w: extent above %d", i, ErrTooLarge, MaxExtent)
		}
	}
	if cur.X != 0 || cur.Y != 0 {
		return Bounds{}, fmt.Errorf("%w: ends at (%d,%d)", ErrUnclosedLoop, cur.X, cur.Y)
	}

	return b, nil
}

// Paint draws the closed loop described by instrs into a fresh compressed
// grid sized to its bounding box.
//
// Behavior:
//  1. Measure the loop (validation, closure, bounds).
//  2. Start the cursor at (-MinX, -MinY) so every cell offset is >= 0.
//  3. For every edge: place the corner left by the previous edge (all edges
//     but the first), then fill the Length-1 interior cells with one
//     rectangle write.
//  4. Place the closing corner joining the last edge to the first.
//
// Returns ErrMalformedInstruction, ErrUnclosedLoop, ErrTooLarge or
// ErrInvalidTurn. A nil
// opts means DefaultOptions().
// Complexity: O(n·(R + R'·C)), independent of edge lengths.
func Paint(instrs []Instruction, opts *Options) (*compressed.Grid[PipeSymbol], error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	b, err := Measure(instrs)
	if err != nil {
		return nil, err
	}
	grid, err := compressed.NewGrid(b.Width(), b.Height(), None)
	if err != nil {
		return nil, err
	}

	cur := Cursor{X: -b.MinX, Y: -b.MinY}
	for i, in := range instrs {
		if i > 0 {
			if err := paintCorner(grid, cur, in.Dir); err != nil {
				return nil, fmt.Errorf("instruction %d: %w", i, err)
			}
		}
		if err := paintEdge(grid, cur, in); err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		cur = cur.Advance(in)
	}
	if err := paintCorner(grid, cur, instrs[0].Dir); err != nil {
		return nil, fmt.Errorf("closing corner: %w", err)
	}

	if o.Compact {
		grid.Compact()
	}

	return grid, nil
}

// paintCorner writes the bend joining cur.Last to out at the cursor.
func paintCorner(grid *compressed.Grid[PipeSymbol], cur Cursor, out Direction) error {
	sym, err := Corner(cur.Last, out)
	if err != nil {
		return err
	}
	return grid.Set(cur.X, cur.Y, sym)
}

// paintEdge fills the cells strictly between the two endpoints of in.
func paintEdge(grid *compressed.Grid[PipeSymbol], cur Cursor, in Instruction) error {
	x1, y1, x2, y2 := interior(cur, in)
	sym := Vertical
	if in.Dir.Horizontal() {
		sym = Horizontal
	}
	return grid.SetRect(x1, y1, x2, y2, sym)
}

// interior returns the half-open rectangle of an edge's interior cells.
// It is empty when Length == 1.
func interior(cur Cursor, in Instruction) (x1, y1, x2, y2 int) {
	n := in.Length
	switch in.Dir {
	case Right:
		return cur.X + 1, cur.Y, cur.X + n, cur.Y + 1
	case Left:
		return cur.X - n + 1, cur.Y, cur.X, cur.Y + 1
	case Down:
		return cur.X, cur.Y + 1, cur.X + 1, cur.Y + n
	default:
		return cur.X, cur.Y - n + 1, cur.X + 1, cur.Y
	}
}
