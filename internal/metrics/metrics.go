package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "viralcopy"

// Metrics holds the collectors for one process. All methods are safe on a
// nil receiver so components can run without metrics in tests.
type Metrics struct {
	registry *prometheus.Registry

	modelCalls    *prometheus.CounterVec
	modelDuration *prometheus.HistogramVec
	fallbacks     *prometheus.CounterVec
	generations   *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
}

// New registers every collector on a private registry instead of the global
// default one.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		modelCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "model_calls_total",
				Help:      "Model endpoint calls, partitioned by purpose and outcome.",
			},
			[]string{"purpose", "outcome"},
		),
		modelDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "model_call_duration_seconds",
				Help:      "Latency of model endpoint calls.",
				Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
			},
			[]string{"purpose"},
		),
		fallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parse_fallbacks_total",
				Help:      "Model answers that could not be parsed and were replaced by defaults.",
			},
			[]string{"purpose"},
		),
		generations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "Pipeline runs, partitioned by operation and status.",
			},
			[]string{"operation", "status"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests, partitioned by route and status code.",
			},
			[]string{"method", "route", "code"},
		),
	}
}

func (m *Metrics) ObserveCall(purpose, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.modelCalls.WithLabelValues(purpose, outcome).Inc()
	if elapsed > 0 {
		m.modelDuration.WithLabelValues(purpose).Observe(elapsed.Seconds())
	}
}

func (m *Metrics) IncFallback(purpose string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(purpose).Inc()
}

func (m *Metrics) IncGeneration(operation, status string) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(operation, status).Inc()
}

func (m *Metrics) IncHTTPRequest(method, route, code string) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, code).Inc()
}

// ModelCalls exposes the call counter for assertions.
func (m *Metrics) ModelCalls() *prometheus.CounterVec {
	return m.modelCalls
}

// Fallbacks exposes the parse fallback counter for assertions.
func (m *Metrics) Fallbacks() *prometheus.CounterVec {
	return m.fallbacks
}

// Registry exposes the underlying registry for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
