package perf

import (
	"time"

	"github.com/marcoimmel/IteratorTools/seq"
)

// StopWatch accumulates time spent in timed functions.
type StopWatch struct {
	Count int
	Total time.Duration
}

type Timeable func()

func (t *StopWatch) TimeIt(fn Timeable) (duration time.Duration) {
	start := time.Now()
	t.Count++
	defer func() {
		duration = time.Since(start)
		t.Total += duration
	}()

	fn()
	return
}

// Timed wraps c to account the time spent producing values in w.
//
// Count is the number of values produced, the final exhaustion call is
// accounted in Total only.
func Timed[V any](c seq.Cursor[V], w *StopWatch) seq.Cursor[V] {
	return &timedCursor[V]{Cursor: c, watch: w}
}

type timedCursor[V any] struct {
	seq.Cursor[V]
	watch *StopWatch
}

func (c *timedCursor[V]) Next() (v V, ok bool) {
	c.watch.TimeIt(func() {
		v, ok = c.Cursor.Next()
	})
	if !ok {
		c.watch.Count--
	}
	return
}
