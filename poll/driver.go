// Package poll drives periodic evaluation of subscribers that have no
// consumer pulling their values. The observable graph is single-threaded:
// Tick and Run must be called from the goroutine that owns the graph, and
// other goroutines hand mutations over with Post.
package poll

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/signalgraph/observable"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/delaneyj/signalgraph/poll"

// Pollable is satisfied by *observable.Subscriber.
type Pollable interface {
	Value() any
	Tracking() bool
}

type TickResult struct {
	Posted    int // posted functions run
	Polled    int // targets evaluated
	Skipped   int // targets without tracked arguments
	Failed    int // recovered panics
	Delivered int // watch snapshots delivered
}

type Driver struct {
	interval   time.Duration
	queueSize  int
	logger     *slog.Logger
	onError    ErrorHandler
	tracer     trace.Tracer
	registerer prometheus.Registerer
	metrics    *metrics

	targets mapset.Set[Pollable]
	posted  chan func()
	running atomic.Bool

	mu      sync.Mutex
	watches []*Watch
}

func New(opts ...Option) *Driver {
	d := &Driver{
		interval:  DefaultInterval,
		queueSize: DefaultQueueSize,
		targets:   mapset.NewSet[Pollable](),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	if d.tracer == nil {
		d.tracer = otel.Tracer(tracerName)
	}
	d.metrics = newMetrics(d.registerer)
	d.posted = make(chan func(), d.queueSize)
	return d
}

func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Add registers targets. Registering the same target twice is a no-op.
func (d *Driver) Add(targets ...Pollable) {
	for _, t := range targets {
		if t != nil {
			d.targets.Add(t)
		}
	}
}

func (d *Driver) Remove(targets ...Pollable) {
	for _, t := range targets {
		d.targets.Remove(t)
	}
}

func (d *Driver) Len() int {
	return d.targets.Cardinality()
}

// Post queues fn to run on the loop goroutine at the start of the next tick.
func (d *Driver) Post(fn func()) error {
	select {
	case d.posted <- fn:
		return nil
	default:
		return ErrQueueFull
	}
}

// Tick runs posted functions, forces evaluation of every registered target
// that tracks at least one Observable, then delivers changed watches.
func (d *Driver) Tick(ctx context.Context) TickResult {
	ctx, span := d.tracer.Start(ctx, "poll.Tick")
	defer span.End()
	start := time.Now()

	var res TickResult
	d.drain(ctx, &res)

	for _, t := range d.targets.ToSlice() {
		if !t.Tracking() {
			res.Skipped++
			continue
		}
		if err := guard(func() { t.Value() }); err != nil {
			res.Failed++
			d.fail(ctx, t, err)
			continue
		}
		res.Polled++
	}

	d.deliver(ctx, &res)

	span.SetAttributes(
		attribute.Int("poll.posted", res.Posted),
		attribute.Int("poll.polled", res.Polled),
		attribute.Int("poll.skipped", res.Skipped),
		attribute.Int("poll.failed", res.Failed),
		attribute.Int("poll.delivered", res.Delivered),
	)
	if res.Failed > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d failures", res.Failed))
	}
	d.metrics.observe(res, time.Since(start))
	return res
}

// Run ticks at the configured interval until ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer d.running.Store(false)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.DebugContext(ctx, "poll loop started", "interval", d.interval)
	defer d.logger.DebugContext(ctx, "poll loop stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.Tick(ctx)
		}
	}
}

func (d *Driver) drain(ctx context.Context, res *TickResult) {
	for {
		select {
		case fn := <-d.posted:
			res.Posted++
			if err := guard(fn); err != nil {
				res.Failed++
				d.fail(ctx, nil, err)
			}
		default:
			return
		}
	}
}

func (d *Driver) fail(ctx context.Context, target Pollable, err error) {
	d.logger.WarnContext(ctx, "poll failure", "error", err)
	if d.onError != nil {
		d.onError(target, err)
	}
}

// guard turns a panic in fn into an error wrapping ErrPollFailed.
func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w", ErrPollFailed, e)
				return
			}
			err = fmt.Errorf("%w: %v", ErrPollFailed, r)
		}
	}()
	fn()
	return nil
}

// Watch delivers snapshots of a structure holding Observables.
type Watch struct {
	d         *Driver
	structure any
	fn        func(snapshot any)

	last      uint64
	delivered bool
}

// Watch calls fn after a tick whenever the snapshot of structure differs
// from the last one delivered. The first tick always delivers.
func (d *Driver) Watch(structure any, fn func(snapshot any)) *Watch {
	w := &Watch{d: d, structure: structure, fn: fn}
	d.mu.Lock()
	d.watches = append(d.watches, w)
	d.mu.Unlock()
	return w
}

func (w *Watch) Stop() {
	d := w.d
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, other := range d.watches {
		if other == w {
			d.watches = append(d.watches[:i], d.watches[i+1:]...)
			return
		}
	}
}

func (d *Driver) deliver(ctx context.Context, res *TickResult) {
	d.mu.Lock()
	watches := make([]*Watch, len(d.watches))
	copy(watches, d.watches)
	d.mu.Unlock()

	for _, w := range watches {
		err := guard(func() {
			snap := observable.Snapshot(w.structure)
			fp := observable.Fingerprint(snap)
			if w.delivered && fp == w.last {
				return
			}
			w.last, w.delivered = fp, true
			res.Delivered++
			w.fn(snap)
		})
		if err != nil {
			res.Failed++
			d.fail(ctx, nil, err)
		}
	}
}
