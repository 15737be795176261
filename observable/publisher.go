package observable

// Publisher is a mutable cell. Every Set notifies subscribers, even when the
// new value equals the old one.
type Publisher[T any] struct {
	subs  subscribers
	value T
}

func NewPublisher[T any](value T) *Publisher[T] {
	return &Publisher[T]{value: value}
}

func (p *Publisher[T]) Get() T {
	return p.value
}

func (p *Publisher[T]) Value() any {
	return p.value
}

func (p *Publisher[T]) Set(value T) *Publisher[T] {
	p.value = value
	p.subs.invalidate(p)
	return p
}

// Update sets the result of fn applied to the current value.
func (p *Publisher[T]) Update(fn func(T) T) *Publisher[T] {
	return p.Set(fn(p.value))
}

// Subscribe registers fn and returns p for chaining.
func (p *Publisher[T]) Subscribe(fn Callback) *Publisher[T] {
	p.subs.add(fn)
	return p
}

func (p *Publisher[T]) Listen(fn Callback) *Subscription {
	return p.subs.add(fn)
}

// SubscriberCount is the number of registered callbacks.
func (p *Publisher[T]) SubscriberCount() int {
	return p.subs.len()
}

func (p *Publisher[T]) stale() bool {
	return false
}
