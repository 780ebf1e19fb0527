package observe

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Registry receives the collectors. If nil, prometheus.DefaultRegisterer is used.
	Registry prometheus.Registerer

	// Namespace prefixes every metric name. Defaults to "simmer".
	Namespace string

	// ConstLabels are added to every metric.
	ConstLabels prometheus.Labels

	// Buckets for the duration histograms. Defaults to prometheus.DefBuckets.
	Buckets []float64
}

// ApplyDefaults fills unset fields.
func (c *MetricsConfig) ApplyDefaults() {
	if c.Registry == nil {
		c.Registry = prometheus.DefaultRegisterer
	}
	if c.Namespace == "" {
		c.Namespace = "simmer"
	}
	if len(c.Buckets) == 0 {
		c.Buckets = prometheus.DefBuckets
	}
}

// Metrics records run and step counts and durations.
type Metrics struct {
	runs         *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
	runsInFlight *prometheus.GaugeVec
	steps        *prometheus.CounterVec
	stepDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them. Collectors already
// registered under the same names are reused, so several observers built
// from the same config share their series.
func NewMetrics(cfg MetricsConfig) (*Metrics, error) {
	cfg.ApplyDefaults()

	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "runs_total",
			Help:        "Total number of finished runs by outcome.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"run", "outcome"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Name:        "run_duration_seconds",
			Help:        "Duration of runs from start to settlement.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"run"}),
		runsInFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Name:        "runs_in_flight",
			Help:        "Number of runs started and not yet settled.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"run"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "steps_total",
			Help:        "Total number of executed steps by outcome.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"run", "step", "outcome"}),
		stepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Name:        "step_duration_seconds",
			Help:        "Duration of single steps.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"run", "step"}),
	}

	var err error
	if m.runs, err = register(cfg.Registry, m.runs); err != nil {
		return nil, err
	}
	if m.runDuration, err = register(cfg.Registry, m.runDuration); err != nil {
		return nil, err
	}
	if m.runsInFlight, err = register(cfg.Registry, m.runsInFlight); err != nil {
		return nil, err
	}
	if m.steps, err = register(cfg.Registry, m.steps); err != nil {
		return nil, err
	}
	if m.stepDuration, err = register(cfg.Registry, m.stepDuration); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}

func (m *Metrics) RunStarted(_ context.Context, run RunInfo) {
	m.runsInFlight.WithLabelValues(run.Name).Inc()
}

func (m *Metrics) StepStarted(context.Context, StepInfo) {}

func (m *Metrics) StepFinished(_ context.Context, step StepInfo, err error, elapsed time.Duration) {
	m.steps.WithLabelValues(step.Run.Name, step.Label(), outcome(err)).Inc()
	m.stepDuration.WithLabelValues(step.Run.Name, step.Label()).Observe(elapsed.Seconds())
}

func (m *Metrics) RunFinished(_ context.Context, run RunInfo, err error, elapsed time.Duration) {
	m.runsInFlight.WithLabelValues(run.Name).Dec()
	m.runs.WithLabelValues(run.Name, outcome(err)).Inc()
	m.runDuration.WithLabelValues(run.Name).Observe(elapsed.Seconds())
}
