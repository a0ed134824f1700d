// Package metrics exports registry activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/azint/methodreg/pkg/method"
)

const namespace = "methodreg"

// Lookup outcomes.
const (
	OutcomeHit  = "hit"
	OutcomeMiss = "miss"
)

// Collector implements method.Observer on top of Prometheus metrics.
type Collector struct {
	registered *prometheus.GaugeVec
	replaced   prometheus.Counter
	lookups    *prometheus.CounterVec
	matches    *prometheus.HistogramVec
	gatherer   prometheus.Gatherer
}

var _ method.Observer = (*Collector)(nil)

// NewCollector creates the collector metrics and registers them on reg.
// A nil reg uses a fresh private registry.
func NewCollector(reg *prometheus.Registry) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	c := &Collector{
		registered: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "registered_methods",
				Help:      "Registered integration methods by dimension and implementation.",
			},
			[]string{"dim", "impl"},
		),
		replaced: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "replaced_methods_total",
				Help:      "Registrations that overwrote an existing method.",
			},
		),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookups_total",
				Help:      "Method lookups by operation and outcome.",
			},
			[]string{"op", "outcome"},
		),
		matches: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "lookup_matches",
				Help:      "Number of methods returned by a lookup.",
				Buckets:   []float64{0, 1, 2, 4, 8, 16},
			},
			[]string{"op"},
		),
		gatherer: reg,
	}
	for _, col := range []prometheus.Collector{c.registered, c.replaced, c.lookups, c.matches} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MethodRegistered implements method.Observer.
func (c *Collector) MethodRegistered(d *method.Descriptor, replaced bool) {
	if replaced {
		c.replaced.Inc()
		return
	}
	k := d.Key()
	c.registered.WithLabelValues(strconv.Itoa(k.Dim), k.Impl).Inc()
}

// MethodsSelected implements method.Observer.
func (c *Collector) MethodsSelected(op string, matches int) {
	outcome := OutcomeHit
	if matches == 0 {
		outcome = OutcomeMiss
	}
	c.lookups.WithLabelValues(op, outcome).Inc()
	c.matches.WithLabelValues(op).Observe(float64(matches))
}

// Handler returns the /metrics handler for the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
