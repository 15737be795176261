// Package observable is a small incremental computation engine. Publishers
// hold values, Subscribers derive memoized values from a list of arguments
// and recompute lazily on Get after one of their inputs changed.
package observable

// Callback is invoked with the node that fired.
type Callback func(src Observable)

// Observable is the capability shared by Publisher and Subscriber.
type Observable interface {
	// Listen registers fn and returns a handle that can revoke it.
	Listen(fn Callback) *Subscription
	// Value is the untyped form of Get.
	Value() any

	stale() bool
}

// Source is an Observable with a typed getter.
type Source[T any] interface {
	Observable
	Get() T
}

// Subscription is a revocable registration on an Observable.
type Subscription struct {
	id    uint64
	owner *subscribers
}

// Cancel removes the callback. Calling it more than once is a no-op.
func (s *Subscription) Cancel() {
	if s == nil || s.owner == nil {
		return
	}
	s.owner.remove(s.id)
	s.owner = nil
}

// Active reports whether the callback is still registered.
func (s *Subscription) Active() bool {
	return s != nil && s.owner != nil
}

type entry struct {
	id uint64
	fn Callback
}

// subscribers is the ordered callback arena embedded by every node.
type subscribers struct {
	nextID  uint64
	entries []entry
}

func (s *subscribers) add(fn Callback) *Subscription {
	s.nextID++
	s.entries = append(s.entries, entry{id: s.nextID, fn: fn})
	return &Subscription{id: s.nextID, owner: s}
}

func (s *subscribers) remove(id uint64) {
	for i, e := range s.entries {
		if e.id == id {
			// keep insertion order, replays must be deterministic
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *subscribers) len() int {
	return len(s.entries)
}

// invalidate calls every callback in subscription order. Callbacks added
// while the pass runs are first called on the next pass.
func (s *subscribers) invalidate(src Observable) {
	if len(s.entries) == 0 {
		return
	}
	entries := make([]entry, len(s.entries))
	copy(entries, s.entries)
	for _, e := range entries {
		e.fn(src)
	}
}
