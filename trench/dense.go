package trench

import (
	"fmt"

	"github.com/katalvlaran/lagoon/gridgraph"
)

// DenseArea computes the same area as Area by brute force and exists to
// cross-check the compressed pipeline. It refuses bounding boxes of more
// than maxCells cells with ErrTooLarge (maxCells <= 0 disables the limit).
//
// The loop is traced at doubled resolution: loop cells sit at even
// coordinates and the odd cell between two consecutive loop cells is dug
// too. Walls that touch without being joined by the path therefore keep an
// open gap, and outside water flooding in from the border reaches every
// cell the loop does not enclose. The area is the number of even cells
// gridgraph reports as enclosed.
// Complexity: O(W·H) time, about 4·W·H memory.
func DenseArea(instrs []Instruction, maxCells int) (int, error) {
	b, err := Measure(instrs)
	if err != nil {
		return 0, err
	}
	w, h := b.Width(), b.Height()
	if maxCells > 0 && w*h > maxCells {
		return 0, fmt.Errorf("%w: %d×%d exceeds %d cells", ErrTooLarge, w, h, maxCells)
	}

	w2, h2 := 2*w-1, 2*h-1
	cells := make([][]int, h2)
	for y := range cells {
		cells[y] = make([]int, w2)
	}
	x, y := -2*b.MinX, -2*b.MinY
	cells[y][x] = 1
	for _, in := range instrs {
		dx, dy := in.Dir.Delta()
		for range 2 * in.Length {
			x, y = x+dx, y+dy
			cells[y][x] = 1
		}
	}

	gg, err := gridgraph.From2D(cells, gridgraph.Conn4)
	if err != nil {
		return 0, err
	}
	enclosed := gg.EnclosedMask()
	area := 0
	for y := 0; y < h2; y += 2 {
		for x := 0; x < w2; x += 2 {
			if enclosed[y*w2+x] {
				area++
			}
		}
	}
	return area, nil
}
