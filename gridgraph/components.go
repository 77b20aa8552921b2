package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) || seen[gg.index(x, y)] {
				continue
			}
			comps = append(comps, gg.flood(x, y, true, gg.neighborOffsets, seen))
		}
	}
	return comps
}

// EnclosedCells counts the cells that lie inside land boundaries: every
// land cell, plus every water cell that cannot reach the grid border
// through orthogonally adjacent water. Water always moves with Conn4 so a
// 4-connected ring of land seals its inside, whatever gg.Conn is.
//
// Time:   O(W·H).
// Memory: O(W·H).
func (gg *GridGraph) EnclosedCells() int {
	n := 0
	for _, in := range gg.EnclosedMask() {
		if in {
			n++
		}
	}
	return n
}

// EnclosedMask is the per-cell form of EnclosedCells: entry y*Width+x is
// true when cell (x,y) is land or water sealed off from the border.
//
// Time:   O(W·H).
// Memory: O(W·H).
func (gg *GridGraph) EnclosedMask() []bool {
	outside := make([]bool, gg.Width*gg.Height)
	orth := offsetsFor(Conn4)

	visit := func(x, y int) {
		if gg.IsLand(x, y) || outside[gg.index(x, y)] {
			return
		}
		gg.flood(x, y, false, orth, outside)
	}
	for x := 0; x < gg.Width; x++ {
		visit(x, 0)
		visit(x, gg.Height-1)
	}
	for y := 0; y < gg.Height; y++ {
		visit(0, y)
		visit(gg.Width-1, y)
	}

	for i := range outside {
		outside[i] = !outside[i]
	}
	return outside
}

// flood collects, by BFS from (x0,y0), every unseen cell whose land-ness
// equals land, marking them in seen.
func (gg *GridGraph) flood(x0, y0 int, land bool, offsets [][2]int, seen []bool) []int {
	i0 := gg.index(x0, y0)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) || gg.IsLand(vx, vy) != land {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
