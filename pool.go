package asciigif

import "sync"

// forEachOrdered calls fn(i) for every i in [0, n) using at most workers
// goroutines. fn owns index i exclusively, so writing results into a slice by
// index keeps them in input order.
func forEachOrdered(n, workers int, fn func(i int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			// A panic here would bypass the caller's deferred reporter.
			defer reportPanic()
			for i := range indexes {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
}
