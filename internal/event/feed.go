// Package event provides the synchronous publish/subscribe primitive used for
// mixer change notifications. Delivery happens in-line on the publishing
// goroutine; subscribers must not assume any particular thread.
package event

import "sync"

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Feed is a registry of subscribers for one kind of notification. The zero
// value is ready to use. Feeds must not be copied after first use.
type Feed[T any] struct {
	mu   sync.Mutex
	next uint64
	subs []subscriber[T]
}

// Subscribe registers fn to receive every subsequent publish. The returned
// func removes the subscription; calling it more than once is harmless.
func (f *Feed[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	f.mu.Lock()
	id := f.next
	f.next++
	f.subs = append(f.subs, subscriber[T]{id: id, fn: fn})
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, s := range f.subs {
			if s.id == id {
				f.subs = append(f.subs[:i:i], f.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers v to every current subscriber, in subscription order, on
// the caller's goroutine. Every call is delivered; values are never coalesced.
func (f *Feed[T]) Publish(v T) {
	f.mu.Lock()
	subs := f.subs
	f.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Len reports the number of active subscriptions.
func (f *Feed[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
