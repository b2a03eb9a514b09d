// Package pubsub carries live collection snapshots from the entity services
// to whoever is watching them (SSE streams, tests). Every mutation publishes
// the whole collection; subscribers get the current snapshot the moment they
// attach.
package pubsub

import "sync"

type subscriber[T any] struct {
	fn func([]T)
}

// Feed fans a collection snapshot out to its subscribers. Callbacks run
// synchronously with the feed lock held, in registration order; they must not
// call back into the same feed.
type Feed[T any] struct {
	mu       sync.Mutex
	snapshot []T
	subs     []*subscriber[T]
}

func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{snapshot: []T{}}
}

// Subscribe registers fn and immediately replays the current snapshot to it,
// exactly once, before returning. The snapshot is never nil. The returned
// function removes fn; once called, later publishes never reach it.
func (f *Feed[T]) Subscribe(fn func([]T)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub := &subscriber[T]{fn: fn}
	f.subs = append(f.subs, sub)
	fn(f.copyLocked())

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, s := range f.subs {
			if s == sub {
				f.subs = append(f.subs[:i], f.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish replaces the retained snapshot and delivers the full collection to
// every subscriber. There is no diffing; consumers always see complete state.
func (f *Feed[T]) Publish(collection []T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.snapshot = make([]T, len(collection))
	copy(f.snapshot, collection)

	snap := f.copyLocked()
	for _, s := range f.subs {
		s.fn(snap)
	}
}

// Snapshot returns a copy of the last published collection.
func (f *Feed[T]) Snapshot() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copyLocked()
}

func (f *Feed[T]) copyLocked() []T {
	out := make([]T, len(f.snapshot))
	copy(out, f.snapshot)
	return out
}
