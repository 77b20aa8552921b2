// Package trench measures the area enclosed by a closed rectilinear loop
// given as a list of (direction, length) edges.
//
// What:
//
//   - Paint replays the loop into a compressed.Grid of PipeSymbol: straight
//     edge interiors become Horizontal or Vertical runs, edge endpoints
//     become bends chosen by Corner.
//   - Scan sweeps the painted grid band by band with two parity flags and
//     sums trench cells plus enclosed ground.
//   - Area chains the two; DenseArea is a brute-force reference for small loops.
//
// Why compressed:
//
//	Edge lengths reach 10^6, so the bounding box may hold 10^12 cells.
//	Painting costs O(1) grid writes per edge, and the scan visits runs,
//	not cells.
//
// Example loop (R 2, D 2, L 2, U 2) and its painting:
//
//	F-7
//	|.|
//	L-J
//
// Errors:
//
//   - ErrMalformedInstruction: bad direction or length outside [1, MaxLength].
//   - ErrUnclosedLoop:         empty list or the walk does not return home.
//   - ErrInvalidTurn:          two consecutive edges are not perpendicular.
//   - ErrScanParity:           the painted grid is inconsistent.
//   - ErrTooLarge:             extent above MaxExtent, or DenseArea limit hit.
//
// Self-intersecting loops are not supported.
package trench
