// Package compressed provides run-length encoded containers for data that
// is huge in extent but made of few distinct runs.
//
// What:
//
//   - Axis[T] is a 1D array of fixed length N stored as an ordered list of
//     (value, length) segments. Reads locate the covering segment; writes
//     split segments at the range boundaries and overwrite whole segments.
//   - Grid[T] is a 2D grid stored as an Axis of rows where every row is
//     itself an Axis. Rectangle writes touch only the row bands and column
//     runs they cover, independent of the rectangle's area.
//
// Why:
//
//   - Rectilinear geometry with coordinates around 10^6 on both axes
//     (10^12 dense cells) collapses into a few thousand runs.
//
// Complexity (S = segments in the axis touched):
//
//   - Locate / At:      O(S)
//   - EnsureBoundary:   O(S) (one insert at most)
//   - Range / SetRange: O(S)
//   - Grid.SetRect:     O(R + R'·C), R row bands, R' covered bands, C runs per row.
//
// Invariants:
//
//   - The sum of segment lengths never changes after construction.
//   - No segment ever has a length <= 0.
//   - Equal neighbours are NOT merged implicitly; call CompactFunc or
//     Grid.Compact to do so.
//   - A row band split off by a Grid write owns its own row; rows never alias.
//
// Errors:
//
//   - ErrBadLength:  a non-positive extent was requested.
//   - ErrOutOfRange: an index or range lies outside the declared extent.
//
// Neither container is safe for concurrent mutation.
package compressed
