package compressed_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lagoon/compressed"
)

// AxisSuite exercises the run-length axis against its documented contract.
type AxisSuite struct {
	suite.Suite
}

func TestAxisSuite(t *testing.T) {
	suite.Run(t, new(AxisSuite))
}

// dense expands an axis into a plain slice.
func dense[T any](a *compressed.Axis[T]) []T {
	out := make([]T, 0, a.Len())
	for v, n := range a.All() {
		for range n {
			out = append(out, v)
		}
	}
	return out
}

// TestNewAxisBadLength verifies that non-positive extents are rejected.
func (s *AxisSuite) TestNewAxisBadLength() {
	_, err := compressed.NewAxis(0, 0)
	s.Require().ErrorIs(err, compressed.ErrBadLength)
	_, err = compressed.NewAxis(0, -3)
	s.Require().ErrorIs(err, compressed.ErrBadLength)
}

// TestLocate checks segment lookup and the offset of the covering segment.
func (s *AxisSuite) TestLocate() {
	a, err := compressed.NewAxis('.', 10)
	s.Require().NoError(err)
	s.Require().NoError(a.SetRange(3, 6, '#'))

	seg, start, err := a.Locate(0)
	s.Require().NoError(err)
	s.Equal(0, seg)
	s.Equal(0, start)

	seg, start, err = a.Locate(5)
	s.Require().NoError(err)
	s.Equal(1, seg)
	s.Equal(3, start)

	seg, start, err = a.Locate(9)
	s.Require().NoError(err)
	s.Equal(2, seg)
	s.Equal(6, start)

	_, _, err = a.Locate(10)
	s.Require().ErrorIs(err, compressed.ErrOutOfRange)
	_, _, err = a.Locate(-1)
	s.Require().ErrorIs(err, compressed.ErrOutOfRange)
}

// TestEnsureBoundary checks splitting, idempotence and the end sentinel.
func (s *AxisSuite) TestEnsureBoundary() {
	a, err := compressed.NewAxis(7, 10)
	s.Require().NoError(err)

	seg, err := a.EnsureBoundary(4)
	s.Require().NoError(err)
	s.Equal(1, seg)
	s.Equal(2, a.NumSegments())

	// already a boundary
	seg, err = a.EnsureBoundary(4)
	s.Require().NoError(err)
	s.Equal(1, seg)
	s.Equal(2, a.NumSegments())

	seg, err = a.EnsureBoundary(0)
	s.Require().NoError(err)
	s.Equal(0, seg)

	seg, err = a.EnsureBoundary(10)
	s.Require().NoError(err)
	s.Equal(a.NumSegments(), seg)
	s.Equal(2, a.NumSegments())

	_, err = a.EnsureBoundary(11)
	s.Require().ErrorIs(err, compressed.ErrOutOfRange)

	want := []compressed.Segment[int]{{Value: 7, Length: 4}, {Value: 7, Length: 6}}
	if diff := cmp.Diff(want, a.Segments()); diff != "" {
		s.Failf("segments mismatch", "(-want +got):\n%s", diff)
	}
}

// TestRange verifies that the returned segments cover exactly [beg,end).
func (s *AxisSuite) TestRange() {
	a, err := compressed.NewAxis(0, 12)
	s.Require().NoError(err)

	lo, hi, err := a.Range(2, 9)
	s.Require().NoError(err)
	covered := 0
	for i := lo; i < hi; i++ {
		covered += a.Segment(i).Length
	}
	s.Equal(7, covered)

	lo, hi, err = a.Range(5, 5)
	s.Require().NoError(err)
	s.Equal(lo, hi)

	lo, hi, err = a.Range(12, 12)
	s.Require().NoError(err)
	s.Equal(a.NumSegments(), lo)
	s.Equal(a.NumSegments(), hi)

	_, _, err = a.Range(6, 3)
	s.Require().ErrorIs(err, compressed.ErrOutOfRange)
	_, _, err = a.Range(0, 13)
	s.Require().ErrorIs(err, compressed.ErrOutOfRange)
	_, _, err = a.Range(-1, 2)
	s.Require().ErrorIs(err, compressed.ErrOutOfRange)
}

// TestSetRangeNonOverlap checks that only [beg,end) changes.
func (s *AxisSuite) TestSetRangeNonOverlap() {
	a, err := compressed.NewAxis('a', 8)
	s.Require().NoError(err)
	s.Require().NoError(a.SetRange(2, 5, 'b'))
	s.Require().NoError(a.SetRange(4, 7, 'c'))

	s.Equal([]rune("aabbccca"), dense(a))
	s.Equal(8, a.Len())

	for i, want := range "aabbccca" {
		v, err := a.At(i)
		s.Require().NoError(err)
		s.Equal(want, v, "index %d", i)
	}
	_, err = a.At(8)
	s.Require().ErrorIs(err, compressed.ErrOutOfRange)
}

// TestSetRangeNoMerge documents that equal neighbours stay separate.
func (s *AxisSuite) TestSetRangeNoMerge() {
	a, err := compressed.NewAxis(0, 6)
	s.Require().NoError(err)
	s.Require().NoError(a.SetRange(2, 4, 0))
	s.Equal(3, a.NumSegments())

	removed := a.CompactFunc(func(x, y int) bool { return x == y })
	s.Equal(2, removed)
	s.Equal(1, a.NumSegments())
	s.Equal(6, a.Len())
}

// TestClonerIsolatesSplits checks that split halves never share a value.
func (s *AxisSuite) TestClonerIsolatesSplits() {
	a, err := compressed.NewAxis([]int{1}, 4, compressed.WithCloner(func(v []int) []int {
		return append([]int(nil), v...)
	}))
	s.Require().NoError(err)
	_, err = a.EnsureBoundary(2)
	s.Require().NoError(err)

	a.Segment(0).Value[0] = 42
	s.Equal(1, a.Segment(1).Value[0])

	c := a.Clone()
	c.Segment(1).Value[0] = 9
	s.Equal(1, a.Segment(1).Value[0])
}

// TestEqualFunc compares logically equal axes with different segmentation.
func (s *AxisSuite) TestEqualFunc() {
	eq := func(x, y byte) bool { return x == y }
	a, _ := compressed.NewAxis(byte('x'), 5)
	b, _ := compressed.NewAxis(byte('x'), 5)
	_, _ = b.EnsureBoundary(1)
	_, _ = b.EnsureBoundary(3)
	s.True(a.EqualFunc(b, eq))

	s.Require().NoError(b.SetRange(4, 5, 'y'))
	s.False(a.EqualFunc(b, eq))

	c, _ := compressed.NewAxis(byte('x'), 4)
	s.False(a.EqualFunc(c, eq))
}

// TestAxisMatchesDenseSlice replays random writes on an axis and a plain
// slice and requires identical contents after every step.
func TestAxisMatchesDenseSlice(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(40)
		a, err := compressed.NewAxis(0, n)
		require.NoError(t, err)
		want := make([]int, n)

		for step := 0; step < 30; step++ {
			beg := rng.Intn(n + 1)
			end := beg + rng.Intn(n-beg+1)
			v := rng.Intn(4)
			require.NoError(t, a.SetRange(beg, end, v))
			for i := beg; i < end; i++ {
				want[i] = v
			}
			require.Equal(t, want, dense(a), "round %d step %d set [%d,%d)=%d", round, step, beg, end, v)
			require.Equal(t, n, a.Len())

			idx := rng.Intn(n)
			got, err := a.At(idx)
			require.NoError(t, err)
			require.Equal(t, want[idx], got)
		}
	}
}

// TestEnsureBoundaryNeverZeroLength hammers EnsureBoundary at every index.
func TestEnsureBoundaryNeverZeroLength(t *testing.T) {
	a, err := compressed.NewAxis("v", 16)
	require.NoError(t, err)
	for pass := 0; pass < 3; pass++ {
		for i := 0; i <= 16; i++ {
			_, err := a.EnsureBoundary(i)
			require.NoError(t, err)
			require.Equal(t, 16, a.Len())
		}
	}
	require.Equal(t, 16, a.NumSegments())
	for _, seg := range a.Segments() {
		require.Positive(t, seg.Length)
	}
}
