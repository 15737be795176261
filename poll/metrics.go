package poll

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	ticks     prometheus.Counter
	polled    prometheus.Counter
	failures  prometheus.Counter
	delivered prometheus.Counter
	duration  prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "signalgraph",
			Subsystem: "poll",
			Name:      "ticks_total",
			Help:      "Number of completed poll ticks.",
		}),
		polled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "signalgraph",
			Subsystem: "poll",
			Name:      "polled_total",
			Help:      "Number of targets forced to evaluate.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "signalgraph",
			Subsystem: "poll",
			Name:      "failures_total",
			Help:      "Number of panics recovered while ticking.",
		}),
		delivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "signalgraph",
			Subsystem: "poll",
			Name:      "watch_deliveries_total",
			Help:      "Number of snapshots delivered to watches.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "signalgraph",
			Subsystem: "poll",
			Name:      "tick_duration_seconds",
			Help:      "Time spent in a single tick.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.ticks, m.polled, m.failures, m.delivered, m.duration)
	}
	return m
}

func (m *metrics) observe(res TickResult, took time.Duration) {
	m.ticks.Inc()
	m.polled.Add(float64(res.Polled))
	m.failures.Add(float64(res.Failed))
	m.delivered.Add(float64(res.Delivered))
	m.duration.Observe(took.Seconds())
}
