package observable

import "errors"

var (
	// ErrCycle is raised when a Subscriber is read while it is computing.
	ErrCycle = errors.New("observable: dependency cycle")
	// ErrArgType is raised when a typed lift receives an argument of the wrong type.
	ErrArgType = errors.New("observable: argument type mismatch")
)
