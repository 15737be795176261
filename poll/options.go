package poll

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultInterval  = 30 * time.Millisecond
	DefaultQueueSize = 256
)

// ErrorHandler receives failures recovered during a tick. target is nil for
// posted functions and watches.
type ErrorHandler func(target Pollable, err error)

type Option func(*Driver)

func WithInterval(d time.Duration) Option {
	return func(drv *Driver) {
		if d > 0 {
			drv.interval = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(drv *Driver) {
		drv.logger = logger
	}
}

func WithErrorHandler(fn ErrorHandler) Option {
	return func(drv *Driver) {
		drv.onError = fn
	}
}

// WithRegisterer registers the driver's collectors on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(drv *Driver) {
		drv.registerer = reg
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(drv *Driver) {
		drv.tracer = tracer
	}
}

func WithQueueSize(n int) Option {
	return func(drv *Driver) {
		if n > 0 {
			drv.queueSize = n
		}
	}
}
