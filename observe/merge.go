package observe

import (
	"sync"
)

// Merge combines multiple observables into a single observable. The order of
// the emitted items is as they come, with no order guaranteed across sources.
// The merged sequence completes once every source has completed, fails as soon
// as any source fails, and unsubscribing tears every source subscription down.
func Merge[T any](sources ...*Observable[T]) *Observable[T] {
	return Producer[T](func(sub *Subscriber[T]) (TeardownFunc, error) {
		if len(sources) == 0 {
			sub.Complete()
			return nil, nil
		}

		var (
			mu      sync.Mutex
			pending = len(sources)
		)

		for _, source := range sources {
			if sub.Closed() {
				break
			}

			upstream := Operate(sub, Handlers[T, T]{
				OnComplete: func(downstream *Subscriber[T]) {
					mu.Lock()
					pending--
					done := pending == 0
					mu.Unlock()

					if done {
						downstream.Complete()
					}
				},
			})
			source.SubscribeWith(upstream)
		}

		return nil, nil
	})
}
