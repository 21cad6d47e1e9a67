package batch

import (
	"sync"

	"github.com/db47h/nucleus/quad"
)

// threshold is the minimum number of entities handed to a worker.
//
const threshold = 500

// Expander expands the entities of a quad.Expander on a pool of goroutines.
// Entities own disjoint destination records, so ranges never overlap.
//
type Expander struct {
	e       *quad.Expander
	workers int
	wg      sync.WaitGroup
}

// NewExpander returns a pool of workers goroutines for e. Workers are started
// on each call to All and exit when it returns.
//
func NewExpander(e *quad.Expander, workers int) *Expander {
	if workers < 1 {
		workers = 1
	}
	return &Expander{e: e, workers: workers}
}

// All expands every entity.
//
func (x *Expander) All() {
	count := x.e.Store().Count
	n := x.workers
	if limit := (count + threshold - 1) / threshold; n > limit {
		n = limit
	}
	if n <= 1 {
		x.expand(0, count)
		return
	}
	chunk := (count + n - 1) / n
	for start := 0; start < count; start += chunk {
		end := min(start+chunk, count)
		x.wg.Add(1)
		go func(start, end int) {
			defer x.wg.Done()
			x.expand(start, end)
		}(start, end)
	}
	x.wg.Wait()
}

func (x *Expander) expand(start, end int) {
	for i := start; i < end; i++ {
		x.e.Expand(i)
	}
}
