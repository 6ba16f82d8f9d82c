package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"passcheck/internal/domain/entity"
)

const namespace = "passcheck"

// EvaluationRecorder counts evaluations per strength label. Passwords and
// scores never become label values.
type EvaluationRecorder struct {
	evaluations *prometheus.CounterVec
	entropy     prometheus.Histogram
	emptyInputs prometheus.Counter
}

func NewEvaluationRecorder(registerer prometheus.Registerer) (*EvaluationRecorder, error) {
	r := &EvaluationRecorder{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Number of evaluated passwords by strength.",
		}, []string{"strength"}),
		entropy: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "entropy_bits",
			Help:      "Estimated entropy of evaluated passwords.",
			Buckets:   []float64{28, 36, 60, 80, 128},
		}),
		emptyInputs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_inputs_total",
			Help:      "Number of empty lines rejected before evaluation.",
		}),
	}

	for _, c := range []prometheus.Collector{r.evaluations, r.entropy, r.emptyInputs} {
		if err := registerer.Register(c); err != nil {
			return nil, fmt.Errorf("registerer.Register: %w", err)
		}
	}

	// Pre-create every label so all series are exported from the start.
	for _, s := range entity.Strengths() {
		r.evaluations.WithLabelValues(s.Key())
	}

	return r, nil
}

func (r *EvaluationRecorder) Observe(e entity.Evaluation) {
	r.evaluations.WithLabelValues(e.Strength.Key()).Inc()
	r.entropy.Observe(e.EntropyBits)
}

func (r *EvaluationRecorder) EmptyInput() {
	r.emptyInputs.Inc()
}
