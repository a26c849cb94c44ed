package showcase

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records showcase activity in Prometheus. A nil *Metrics records nothing.
type Metrics struct {
	reg            *prom.Registry
	pageRenders    *prom.CounterVec
	renderDuration *prom.HistogramVec
	demoOps        *prom.CounterVec
	flashes        prom.Counter
}

// NewMetrics registers the showcase metrics on reg, or on a fresh registry when reg is nil.
func NewMetrics(reg *prom.Registry) *Metrics {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	m := &Metrics{
		reg: reg,
		pageRenders: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "bulma",
			Subsystem: "showcase",
			Name:      "page_renders_total",
			Help:      "Gallery page renders by page and outcome",
		}, []string{"page", "result"}),
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "bulma",
			Subsystem: "showcase",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering gallery pages and demo fragments",
			Buckets:   prom.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"kind"}),
		demoOps: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "bulma",
			Subsystem: "showcase",
			Name:      "demo_operations_total",
			Help:      "Demo operations by demo, operation and outcome",
		}, []string{"demo", "op", "result"}),
		flashes: prom.NewCounter(prom.CounterOpts{
			Namespace: "bulma",
			Subsystem: "showcase",
			Name:      "flashes_total",
			Help:      "Toast notifications sent with demo responses",
		}),
	}
	reg.MustRegister(m.pageRenders, m.renderDuration, m.demoOps, m.flashes)
	return m
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// PageRendered records one page render.
func (m *Metrics) PageRendered(page string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.pageRenders.WithLabelValues(page, outcome(err)).Inc()
	m.renderDuration.WithLabelValues("page").Observe(d.Seconds())
}

// DemoOperation records one demo operation.
func (m *Metrics) DemoOperation(demo, op string, d time.Duration, flashes int, err error) {
	if m == nil {
		return
	}
	m.demoOps.WithLabelValues(demo, op, outcome(err)).Inc()
	m.renderDuration.WithLabelValues("demo").Observe(d.Seconds())
	m.flashes.Add(float64(flashes))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
