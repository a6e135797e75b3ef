package syncs

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(3)

	var wg sync.WaitGroup
	var current, max atomic.Int64
	for range 50 {
		sem.Acquire()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release()
			n := current.Add(1)
			for {
				seen := max.Load()
				if n <= seen || max.CompareAndSwap(seen, n) {
					break
				}
			}
			current.Add(-1)
		}()
	}
	wg.Wait()

	if got := max.Load(); got > 3 {
		t.Fatalf("%d goroutines held the semaphore at once", got)
	}
	if len(sem) != 0 {
		t.Fatalf("%d slots still held", len(sem))
	}
}
