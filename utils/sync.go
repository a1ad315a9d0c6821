package utils

import (
	"sync"
	"time"
)

// WaitFor reports whether the WaitGroup finished before the timeout elapsed.
func WaitFor(wg *sync.WaitGroup, timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
