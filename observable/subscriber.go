package observable

import "fmt"

type CacheState int

const (
	CacheClean CacheState = iota // value is valid, no need to recompute
	CacheCheck                   // an input may be stale, pull inputs to decide whether to recompute
	CacheDirty                   // an input changed, value needs to be recomputed
)

func (c CacheState) String() string {
	switch c {
	case CacheClean:
		return "clean"
	case CacheCheck:
		return "check"
	case CacheDirty:
		return "dirty"
	default:
		return fmt.Sprintf("CacheState(%d)", int(c))
	}
}

// Func computes a Subscriber's value from its resolved arguments.
type Func[T any] func(args ...any) T

// Subscriber is a memoized computation over a list of arguments. Arguments
// are plain values or Observables; Observables are resolved with Value on
// every recompute.
type Subscriber[T any] struct {
	subs subscribers

	fn      Func[T]
	args    []any
	argSubs []*Subscription
	tracked int
	dynArgs Source[[]any]

	value     T
	computed  bool
	state     CacheState
	computing bool
	equal     func(a, b T) bool
}

type Option[T any] func(*Subscriber[T])

// WithEquals replaces the comparison used to suppress notifications after a
// recompute.
func WithEquals[T any](fn func(a, b T) bool) Option[T] {
	return func(s *Subscriber[T]) {
		s.equal = fn
	}
}

func newSubscriber[T any](fn Func[T], opts []Option[T]) *Subscriber[T] {
	s := &Subscriber[T]{
		fn:    fn,
		state: CacheDirty,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewSubscriber[T any](args []any, fn Func[T], opts ...Option[T]) *Subscriber[T] {
	s := newSubscriber(fn, opts)
	for _, arg := range args {
		s.AddArg(arg)
	}
	return s
}

// NewDynamicSubscriber tracks a changing set of inputs. Whenever args fires
// with a fresh list, the argument list is rebuilt from it and the subscriber
// recomputes on the next Get. Rebuilding cancels the subscriptions on the
// previous arguments, so an input dropped from the list no longer
// invalidates the subscriber.
func NewDynamicSubscriber[T any](args Source[[]any], fn Func[T], opts ...Option[T]) *Subscriber[T] {
	s := newSubscriber(fn, opts)
	s.dynArgs = args
	// read before listening, a first recompute of args must not rebind s
	initial := args.Get()
	args.Listen(s.onArgsChanged)
	for _, arg := range initial {
		s.AddArg(arg)
	}
	return s
}

// AddArg appends an argument. Observables are listened to so that a change
// invalidates s.
func (s *Subscriber[T]) AddArg(arg any) *Subscriber[T] {
	s.args = append(s.args, arg)
	if o, ok := arg.(Observable); ok {
		s.argSubs = append(s.argSubs, o.Listen(s.onArgChanged))
		s.tracked++
	}
	s.mark(CacheDirty)
	return s
}

// Args returns a copy of the current argument list.
func (s *Subscriber[T]) Args() []any {
	args := make([]any, len(s.args))
	copy(args, s.args)
	return args
}

// Tracking reports whether s depends on at least one Observable.
func (s *Subscriber[T]) Tracking() bool {
	return s.tracked > 0 || s.dynArgs != nil
}

func (s *Subscriber[T]) State() CacheState {
	return s.state
}

func (s *Subscriber[T]) Valid() bool {
	return s.state == CacheClean
}

// Invalidate forces a recompute on the next Get. Only the first
// invalidation after a recompute notifies subscribers.
func (s *Subscriber[T]) Invalidate() {
	s.mark(CacheDirty)
}

func (s *Subscriber[T]) Get() T {
	if s.state == CacheClean {
		return s.value
	}
	if s.computing {
		panic(fmt.Errorf("%w: subscriber re-entered while computing", ErrCycle))
	}
	s.computing = true
	defer func() {
		s.computing = false
	}()

	// can rebuild s.args and mark s dirty
	if s.dynArgs != nil {
		s.dynArgs.Value()
	}

	if s.state == CacheCheck {
		for _, arg := range s.args {
			o, ok := arg.(Observable)
			if !ok {
				continue
			}
			// can change s.state
			o.Value()
			if s.state == CacheDirty {
				break
			}
		}
	}

	switch s.state {
	case CacheCheck:
		// no input changed value
		s.state = CacheClean
	case CacheDirty:
		s.update()
	}
	return s.value
}

func (s *Subscriber[T]) Value() any {
	return s.Get()
}

// Subscribe registers fn and returns s for chaining.
func (s *Subscriber[T]) Subscribe(fn Callback) *Subscriber[T] {
	s.subs.add(fn)
	return s
}

func (s *Subscriber[T]) Listen(fn Callback) *Subscription {
	return s.subs.add(fn)
}

// SubscriberCount is the number of registered callbacks.
func (s *Subscriber[T]) SubscriberCount() int {
	return s.subs.len()
}

func (s *Subscriber[T]) stale() bool {
	return s.state != CacheClean
}

// update runs fn and notifies when the result is the first one or differs
// from the previous. A panic in fn leaves s dirty with the previous value.
func (s *Subscriber[T]) update() {
	resolved := make([]any, len(s.args))
	for i, arg := range s.args {
		if o, ok := arg.(Observable); ok {
			resolved[i] = o.Value()
		} else {
			resolved[i] = arg
		}
	}

	oldValue, first := s.value, !s.computed
	value := s.fn(resolved...)
	s.value = value
	s.computed = true
	s.state = CacheClean

	// there is no previous value to compare the first result with
	if first || !s.equals(oldValue, value) {
		s.subs.invalidate(s)
	}
}

func (s *Subscriber[T]) mark(state CacheState) {
	if s.state >= state {
		return
	}
	wasClean := s.state == CacheClean
	s.state = state
	if wasClean {
		s.subs.invalidate(s)
	}
}

// onArgChanged receives notifications from tracked arguments. A stale
// argument has not recomputed yet, so s only needs to check it.
func (s *Subscriber[T]) onArgChanged(src Observable) {
	if src.stale() {
		s.mark(CacheCheck)
		return
	}
	s.mark(CacheDirty)
}

func (s *Subscriber[T]) onArgsChanged(src Observable) {
	if src.stale() {
		s.mark(CacheCheck)
		return
	}
	s.rebind()
	s.mark(CacheDirty)
}

func (s *Subscriber[T]) rebind() {
	for _, sub := range s.argSubs {
		sub.Cancel()
	}
	s.args = nil
	s.argSubs = nil
	s.tracked = 0
	for _, arg := range s.dynArgs.Get() {
		s.AddArg(arg)
	}
}

func (s *Subscriber[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return sameValue(a, b)
}
