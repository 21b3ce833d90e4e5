package seq_test

import (
	"slices"

	"github.com/marcoimmel/IteratorTools/seq"
)

func (suite *Suite) TestSliceCursorsAreIndependent() {
	r := suite.Require()
	src := seq.Slice(1, 2, 3)
	c0 := src.Cursor()
	c1 := src.Cursor()
	v, _ := c0.Next()
	r.Equal(1, v)
	v, _ = c0.Next()
	r.Equal(2, v)
	v, _ = c1.Next()
	r.Equal(1, v)
	r.Equal(3, seq.LowerBound(src))
}

func (suite *Suite) TestFromSeq() {
	r := suite.Require()
	src := seq.FromSeq(slices.Values([]string{"a", "b"}))
	r.Equal([]string{"a", "b"}, seq.Collect(src.Cursor()))
	// Re-iterable.
	r.Equal([]string{"a", "b"}, seq.Collect(src.Cursor()))
	r.Equal(0, seq.LowerBound(src))
}

func (suite *Suite) TestFromOnce() {
	r := suite.Require()
	src := seq.FromOnce(slices.Values([]int{1, 2}))
	r.Equal([]int{1, 2}, seq.Collect(src.Cursor()))
	r.Empty(seq.Collect(src.Cursor()))
}

func (suite *Suite) TestCursorStop() {
	r := suite.Require()
	c := seq.FromSeq(naturals).Cursor()
	r.Equal([]int{0, 1, 2}, seq.Take(c, 3))
	c.Stop()
	_, ok := c.Next()
	r.False(ok)
	c.Stop()
}

func (suite *Suite) TestCount() {
	r := suite.Require()
	r.Equal([]uint8{250, 253, 0}, seq.Take(seq.Count[uint8](250, 3).Cursor(), 3))
	r.Equal([]int{5, 4, 3}, seq.Take(seq.Count(5, -1).Cursor(), 3))
}

func (suite *Suite) TestRepeat() {
	r := suite.Require()
	r.Equal([]string{"x", "x"}, seq.Collect(seq.Repeat("x", 2).Cursor()))
	r.Equal(2, seq.LowerBound(seq.Repeat("x", 2)))
	r.Len(seq.Take(seq.Repeat("x", -1).Cursor(), 10), 10)
	r.Equal(0, seq.LowerBound(seq.Repeat("x", -1)))

	// Infinite repetition is not mistaken for an empty source.
	p := seq.ProductPair(seq.Slice(1), seq.Repeat("x", -1))
	r.Len(seq.Take(p, 3), 3)
	p.Stop()
}

func (suite *Suite) TestTakeLeavesCursorOpen() {
	r := suite.Require()
	c := seq.Slice(1, 2, 3).Cursor()
	r.Equal([]int{1}, seq.Take(c, 1))
	r.Equal([]int{2, 3}, seq.Take(c, 5))
	r.Empty(seq.Take(c, 0))
}
