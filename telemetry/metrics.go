package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors exposed by a running
// estimate/simulate session: iteration throughput, acceptance rate, and
// per-effect statistic value, grounded on chaos-utils' pkg/reporting
// collector.go pattern of a small struct of named collectors registered
// once at construction.
type Metrics struct {
	Iterations      prometheus.Counter
	Accepted        prometheus.Counter
	AcceptanceRate  prometheus.Gauge
	EffectStatistic *prometheus.GaugeVec
}

// NewMetrics constructs and registers a Metrics set against reg. Pass
// prometheus.NewRegistry() for an isolated registry in tests, or
// prometheus.DefaultRegisterer for the process-global one.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ergmnet_sampler_iterations_total",
			Help: "Total number of MH proposals made.",
		}),
		Accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ergmnet_sampler_accepted_total",
			Help: "Total number of MH proposals accepted.",
		}),
		AcceptanceRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ergmnet_sampler_acceptance_rate",
			Help: "Accepted/proposed over the current run.",
		}),
		EffectStatistic: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ergmnet_effect_statistic",
			Help: "Current observed value of one bound effect's sufficient statistic.",
		}, []string{"effect"}),
	}
	reg.MustRegister(m.Iterations, m.Accepted, m.AcceptanceRate, m.EffectStatistic)
	return m
}

// Observe records one Run result's contribution to the counters/gauges.
func (m *Metrics) Observe(proposed, accepted int) {
	m.Iterations.Add(float64(proposed))
	m.Accepted.Add(float64(accepted))
	if proposed > 0 {
		m.AcceptanceRate.Set(float64(accepted) / float64(proposed))
	}
}
