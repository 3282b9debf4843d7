package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "seatplan"

// HTTP holds the API request collectors.
type HTTP struct {
	duration *prometheus.HistogramVec
}

func NewHTTP(reg prometheus.Registerer) *HTTP {
	m := &HTTP{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of API requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(m.duration)

	return m
}

func (m *HTTP) Observe(method, route, status string, d time.Duration) {
	m.duration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

// Planner holds the grouping and seating collectors.
type Planner struct {
	plans    *prometheus.CounterVec
	duration prometheus.Histogram
	ballots  prometheus.Counter
}

func NewPlanner(reg prometheus.Registerer) *Planner {
	m := &Planner{
		plans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_total",
			Help:      "Group plans computed, by trigger.",
		}, []string{"trigger"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_duration_seconds",
			Help:      "Time spent forming groups and assigning seats.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		ballots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ballots_total",
			Help:      "Accepted ballots.",
		}),
	}

	reg.MustRegister(m.plans, m.duration, m.ballots)

	return m
}

func (m *Planner) PlanComputed(trigger string, d time.Duration) {
	m.plans.WithLabelValues(trigger).Inc()
	m.duration.Observe(d.Seconds())
}

func (m *Planner) BallotAccepted() {
	m.ballots.Inc()
}
