package observable

import (
	"fmt"
	"reflect"
)

// Map returns a Subscriber that depends on exactly src and computes fn of its value.
func Map[T, R any](src Source[T], fn func(T) R, opts ...Option[R]) *Subscriber[R] {
	return NewSubscriber([]any{src}, func(args ...any) R {
		return fn(argAs[T](0, args[0]))
	}, opts...)
}

// Lift turns fn into a factory of Subscribers: each call of the returned
// function builds a Subscriber over the given arguments.
func Lift[T any](fn Func[T], opts ...Option[T]) func(args ...any) *Subscriber[T] {
	return func(args ...any) *Subscriber[T] {
		return NewSubscriber(args, fn, opts...)
	}
}

func argAs[T any](i int, v any) T {
	var zero T
	if v == nil {
		return zero
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("%w: argument %d is %T, want %s", ErrArgType, i, v, reflect.TypeOf(&zero).Elem()))
	}
	return t
}
