package perf_test

import (
	"time"

	"github.com/marcoimmel/IteratorTools/internal/perf"
	"github.com/marcoimmel/IteratorTools/seq"
)

func (suite *Suite) TestStopwatch() {
	r := suite.Require()

	t := perf.StopWatch{}
	t.TimeIt(func() {
		time.Sleep(time.Microsecond)
	})
	r.Less(0*time.Nanosecond, t.Total)
	r.Equal(1, t.Count)
	backup := t.Total

	t.TimeIt(func() {
		time.Sleep(time.Microsecond)
	})
	r.Less(backup, t.Total)
	r.Equal(2, t.Count)
}

func (suite *Suite) TestTimedCursor() {
	r := suite.Require()

	w := perf.StopWatch{}
	c := perf.Timed(seq.Product(seq.Slice(1, 2), seq.Slice(3, 4)).Cursor(), &w)
	r.Len(seq.Collect(c), 4)
	r.Equal(4, w.Count)

	_, ok := c.Next()
	r.False(ok)
	r.Equal(4, w.Count)
}
