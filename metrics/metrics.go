package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the page counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Renders      *prometheus.CounterVec
	RenderErrors *prometheus.CounterVec
	Dismissals   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "legalpages_renders_total",
				Help: "Number of policy views rendered",
			},
			[]string{"view"},
		),
		RenderErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "legalpages_render_errors_total",
				Help: "Number of policy view renders that failed",
			},
			[]string{"view"},
		),
		Dismissals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "legalpages_dismissals_total",
				Help: "Number of close control activations",
			},
			[]string{"view"},
		),
	}

	m.registry.MustRegister(
		m.Renders,
		m.RenderErrors,
		m.Dismissals,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
