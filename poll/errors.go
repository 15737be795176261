package poll

import "errors"

var (
	// ErrPollFailed wraps a panic recovered while polling a target, running a
	// posted function or delivering a watch.
	ErrPollFailed = errors.New("poll: target failed")
	ErrRunning    = errors.New("poll: driver already running")
	ErrQueueFull  = errors.New("poll: post queue full")
)
