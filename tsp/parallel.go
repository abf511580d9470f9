package tsp

import "github.com/sourcegraph/conc/pool"

// parallelFor calls fn(i) for every i in [0,count), spreading contiguous
// chunks over at most workers goroutines. fn must only write state owned by
// index i; the call returns after every fn has finished.
func parallelFor(workers, count int, fn func(i int)) {
	if workers <= 1 || count <= 1 {
		var i int
		for i = 0; i < count; i++ {
			fn(i)
		}
		return
	}
	if workers > count {
		workers = count
	}

	var (
		p     = pool.New().WithMaxGoroutines(workers)
		chunk = (count + workers - 1) / workers
		lo    int
	)
	for lo = 0; lo < count; lo += chunk {
		lo, hi := lo, min(lo+chunk, count)
		p.Go(func() {
			var i int
			for i = lo; i < hi; i++ {
				fn(i)
			}
		})
	}
	p.Wait()
}
