package trench

import "fmt"

// Direction is one of the four axis-aligned headings of an edge.
// Coordinates are screen-like: Up decreases y, Down increases y.
// The zero value is invalid.
type Direction uint8

const (
	// Up moves toward y-1.
	Up Direction = iota + 1
	// Down moves toward y+1.
	Down
	// Left moves toward x-1.
	Left
	// Right moves toward x+1.
	Right
)

// Valid reports whether d is one of Up, Down, Left, Right.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Delta returns the unit step (dx, dy) of d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// String returns the single-letter name used in dig plans.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// PipeSymbol tells which cardinal neighbours a trench cell connects to.
// A bend names its vertical neighbour first, then its horizontal one.
type PipeSymbol uint8

const (
	// None is untouched ground.
	None PipeSymbol = iota
	// Horizontal connects left and right.
	Horizontal
	// Vertical connects up and down.
	Vertical
	// BendUL connects up and left.
	BendUL
	// BendUR connects up and right.
	BendUR
	// BendDL connects down and left.
	BendDL
	// BendDR connects down and right.
	BendDR
)

// Glyph returns the ASCII pipe drawing of s: . - | J L 7 F.
func (s PipeSymbol) Glyph() rune {
	switch s {
	case Horizontal:
		return '-'
	case Vertical:
		return '|'
	case BendUL:
		return 'J'
	case BendUR:
		return 'L'
	case BendDL:
		return '7'
	case BendDR:
		return 'F'
	}
	return '.'
}

// Size limits. MaxLength bounds a single edge and comfortably covers the
// five hex digits of a dig plan colour. MaxExtent bounds the width and the
// height of a loop, keeping Width·Height and every area within an int64.
const (
	MaxLength = 1 << 24
	MaxExtent = 1 << 30
)

// Instruction is one straight edge of the loop.
type Instruction struct {
	Dir    Direction
	Length int
}

// Validate returns ErrMalformedInstruction unless Dir is valid and
// Length is in [1, MaxLength].
func (in Instruction) Validate() error {
	if !in.Dir.Valid() {
		return fmt.Errorf("%w: bad direction %v", ErrMalformedInstruction, in.Dir)
	}
	if in.Length <= 0 || in.Length > MaxLength {
		return fmt.Errorf("%w: length %d must be in [1, %d]", ErrMalformedInstruction, in.Length, MaxLength)
	}
	return nil
}

// String formats in the way dig plans write it, e.g. "R 6".
func (in Instruction) String() string {
	return fmt.Sprintf("%v %d", in.Dir, in.Length)
}

// Cursor is the replay position threaded through painting. Last is the
// heading of the edge that brought the cursor here, zero before the first.
type Cursor struct {
	X, Y int
	Last Direction
}

// Advance returns the cursor after walking along in.
func (c Cursor) Advance(in Instruction) Cursor {
	dx, dy := in.Dir.Delta()
	return Cursor{X: c.X + dx*in.Length, Y: c.Y + dy*in.Length, Last: in.Dir}
}

// Bounds is the inclusive bounding box of a replayed loop, relative to its
// starting point.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width returns the number of columns covered.
func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the number of rows covered.
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// Options configures painting.
//   - Compact: merge equal neighbouring runs and bands once painting is
//     done. Areas are unaffected; later scans touch fewer runs.
type Options struct {
	Compact bool
}

// DefaultOptions returns Options with compaction disabled.
func DefaultOptions() Options {
	return Options{Compact: false}
}
