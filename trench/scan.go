package trench

import (
	"fmt"

	"github.com/katalvlaran/lagoon/compressed"
)

// Scan returns the area enclosed by the loop painted in grid, trench cells
// included.
//
// Each row band is swept left to right with two parity flags, one for the
// upper and one for the lower edge of the band's cells:
//
//	Vertical          toggles both flags
//	Horizontal        toggles nothing
//	BendUL, BendUR    toggle the upper flag
//	BendDL, BendDR    toggle the lower flag
//
// A run of width w toggles w times, so compacted grids, where neighbouring
// Vertical cells share a run, scan the same as painted ones.
// Trench runs always count. A None run counts when both flags are set.
// Meeting a None run with disagreeing flags returns ErrScanParity.
// The grid is only read.
// Complexity: O(R·C).
func Scan(grid *compressed.Grid[PipeSymbol]) (int, error) {
	area, y := 0, 0
	for row, height := range grid.Rows() {
		top, bottom := false, false
		x := 0
		for sym, width := range row.All() {
			cells := height * width
			odd := width%2 == 1
			switch sym {
			case None:
				if top != bottom {
					return 0, fmt.Errorf("%w: at (%d,%d)", ErrScanParity, x, y)
				}
				if top {
					area += cells
				}
			case Horizontal:
				area += cells
			case Vertical:
				top, bottom = top != odd, bottom != odd
				area += cells
			case BendUL, BendUR:
				top = top != odd
				area += cells
			case BendDL, BendDR:
				bottom = bottom != odd
				area += cells
			default:
				return 0, fmt.Errorf("trench: unknown pipe symbol %d at (%d,%d)", sym, x, y)
			}
			x += width
		}
		y += height
	}

	return area, nil
}

// Area paints instrs and scans the result.
// Errors are those of Paint and Scan.
func Area(instrs []Instruction, opts *Options) (int, error) {
	grid, err := Paint(instrs, opts)
	if err != nil {
		return 0, err
	}
	return Scan(grid)
}
