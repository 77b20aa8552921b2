package compressed

import (
	"iter"
	"slices"
)

// Segment is one run of identical values inside an Axis.
// Length is always > 0.
type Segment[T any] struct {
	Value  T
	Length int
}

// AxisOption customizes an Axis at construction time.
type AxisOption[T any] func(*Axis[T])

// WithCloner installs fn as the copy function for values duplicated by a
// split, by SetRange across several segments, and by Clone. Use it when T
// holds references (pointers, slices, maps) that must not be shared between
// segments.
func WithCloner[T any](fn func(T) T) AxisOption[T] {
	return func(a *Axis[T]) {
		a.clone = fn
	}
}

// Axis is a fixed-length 1D array stored as run-length segments.
// The zero value is not usable; construct with NewAxis.
type Axis[T any] struct {
	segs  []Segment[T] // ordered runs, sum of lengths == total
	total int          // fixed extent N
	clone func(T) T    // optional value copier, nil means plain assignment
}

// NewAxis returns an axis of n copies of value, held in a single segment.
// Returns ErrBadLength if n <= 0.
// Complexity: O(1).
func NewAxis[T any](value T, n int, opts ...AxisOption[T]) (*Axis[T], error) {
	if n <= 0 {
		return nil, ErrBadLength
	}
	a := &Axis[T]{total: n}
	for _, opt := range opts {
		opt(a)
	}
	a.segs = []Segment[T]{{Value: value, Length: n}}

	return a, nil
}

// Len returns the fixed extent N of the axis.
func (a *Axis[T]) Len() int {
	return a.total
}

// NumSegments returns the current number of runs.
func (a *Axis[T]) NumSegments() int {
	return len(a.segs)
}

// Segment returns the i-th run. It panics if i is not in [0, NumSegments()).
func (a *Axis[T]) Segment(i int) Segment[T] {
	return a.segs[i]
}

// Segments returns a copy of the run list. Values are copied shallowly.
func (a *Axis[T]) Segments() []Segment[T] {
	return slices.Clone(a.segs)
}

// All iterates the runs in order, yielding (value, run length).
func (a *Axis[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for _, s := range a.segs {
			if !yield(s.Value, s.Length) {
				return
			}
		}
	}
}

// Locate returns the index of the segment covering index and the offset at
// which that segment starts.
// Returns ErrOutOfRange if index < 0 or index >= Len().
// Complexity: O(S).
func (a *Axis[T]) Locate(index int) (seg, start int, err error) {
	if index < 0 || index >= a.total {
		return 0, 0, rangeErrorf("Axis.Locate", index)
	}
	seg, start = a.locateFrom(0, 0, index)

	return seg, start, nil
}

// At returns the value stored at index.
// Returns ErrOutOfRange if index < 0 or index >= Len().
func (a *Axis[T]) At(index int) (T, error) {
	seg, _, err := a.Locate(index)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.segs[seg].Value, nil
}

// EnsureBoundary splits the segment that strictly contains index so that a
// segment starts exactly at index. It is a no-op when index already starts a
// segment or equals Len(). The returned value is the index of the segment
// starting at index, or NumSegments() when index == Len().
// Returns ErrOutOfRange if index < 0 or index > Len().
// Complexity: O(S).
func (a *Axis[T]) EnsureBoundary(index int) (int, error) {
	if index < 0 || index > a.total {
		return 0, rangeErrorf("Axis.EnsureBoundary", index)
	}
	seg, start := a.locateFrom(0, 0, index)

	return a.splitAt(seg, start, index), nil
}

// Range splits at beg and end and returns the segment indices [lo, hi)
// whose union is exactly [beg, end). An empty range yields lo == hi.
// Returns ErrOutOfRange unless 0 <= beg <= end <= Len().
// Complexity: O(S).
func (a *Axis[T]) Range(beg, end int) (lo, hi int, err error) {
	if beg < 0 || beg > end || end > a.total {
		return 0, 0, rangeErrorf("Axis.Range", beg, end)
	}
	seg, start := a.locateFrom(0, 0, beg)
	lo = a.splitAt(seg, start, beg)
	// segment lo now starts at beg, continue the scan from there
	seg, start = a.locateFrom(lo, beg, end)
	hi = a.splitAt(seg, start, end)

	return lo, hi, nil
}

// SetRange overwrites every index of [beg, end) with value. Adjacent
// segments holding equal values are left unmerged.
// Returns ErrOutOfRange unless 0 <= beg <= end <= Len().
// Complexity: O(S).
func (a *Axis[T]) SetRange(beg, end int, value T) error {
	lo, hi, err := a.Range(beg, end)
	if err != nil {
		return err
	}
	for i := lo; i < hi; i++ {
		if i == lo {
			a.segs[i].Value = value
			continue
		}
		a.segs[i].Value = a.dup(value)
	}

	return nil
}

// Clone returns a deep copy of the axis. Values go through the cloner when
// one is installed.
// Complexity: O(S).
func (a *Axis[T]) Clone() *Axis[T] {
	segs := make([]Segment[T], len(a.segs))
	for i, s := range a.segs {
		segs[i] = Segment[T]{Value: a.dup(s.Value), Length: s.Length}
	}

	return &Axis[T]{segs: segs, total: a.total, clone: a.clone}
}

// CompactFunc merges neighbouring segments whose values satisfy eq and
// returns how many segments were removed. Len() is unchanged.
// Complexity: O(S).
func (a *Axis[T]) CompactFunc(eq func(x, y T) bool) int {
	before := len(a.segs)
	out := a.segs[:1]
	for _, s := range a.segs[1:] {
		last := &out[len(out)-1]
		if eq(last.Value, s.Value) {
			last.Length += s.Length
			continue
		}
		out = append(out, s)
	}
	// drop references held by the now unused tail
	clear(a.segs[len(out):])
	a.segs = out

	return before - len(a.segs)
}

// EqualFunc reports whether a and b hold the same logical sequence of
// values under eq, regardless of how each is segmented.
// Complexity: O(Sa + Sb).
func (a *Axis[T]) EqualFunc(b *Axis[T], eq func(x, y T) bool) bool {
	if a.total != b.total {
		return false
	}
	i, j := 0, 0
	ri, rj := a.segs[0].Length, b.segs[0].Length
	for i < len(a.segs) && j < len(b.segs) {
		if !eq(a.segs[i].Value, b.segs[j].Value) {
			return false
		}
		step := min(ri, rj)
		ri -= step
		rj -= step
		if ri == 0 {
			if i++; i < len(a.segs) {
				ri = a.segs[i].Length
			}
		}
		if rj == 0 {
			if j++; j < len(b.segs) {
				rj = b.segs[j].Length
			}
		}
	}

	return true
}

// locateFrom scans forward from segment seg, known to start at offset start,
// until it reaches the segment covering index. It returns (len(segs), total)
// when index == total.
func (a *Axis[T]) locateFrom(seg, start, index int) (int, int) {
	for ; seg < len(a.segs); seg++ {
		if index < start+a.segs[seg].Length {
			return seg, start
		}
		start += a.segs[seg].Length
	}

	return seg, start
}

// splitAt cuts segment seg (starting at start) at index and returns the
// index of the segment that now starts at index. The head keeps a copy of
// the value; the tail keeps the one already stored.
func (a *Axis[T]) splitAt(seg, start, index int) int {
	if seg == len(a.segs) || start == index {
		return seg
	}
	head := index - start
	left := Segment[T]{Value: a.dup(a.segs[seg].Value), Length: head}
	a.segs[seg].Length -= head
	a.segs = slices.Insert(a.segs, seg, left)

	return seg + 1
}

// dup copies v through the cloner, if any.
func (a *Axis[T]) dup(v T) T {
	if a.clone == nil {
		return v
	}

	return a.clone(v)
}
