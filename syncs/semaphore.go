// Package syncs provides small synchronization helpers.
package syncs

// Semaphore bounds how many goroutines hold a slot at once.
type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	return make(Semaphore, n)
}

func (s Semaphore) Acquire() {
	s <- struct{}{}
}

func (s Semaphore) Release() {
	<-s
}
