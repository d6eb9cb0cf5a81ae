package series

import "sync"

// Parallel runs each fn in its own goroutine and waits for all of them.
// The returned slice holds each fn's error at its index.
func Parallel(fns ...func() error) []error {
	errs := make([]error, len(fns))

	var wg sync.WaitGroup
	wg.Add(len(fns))
	for i, fn := range fns {
		go func(idx int, f func() error) {
			defer wg.Done()
			errs[idx] = f()
		}(i, fn)
	}
	wg.Wait()

	return errs
}
