package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

/*
Prom is a Prometheus-backed implementation of types.Metrics.

It keeps its own registry so embedding the cache never collides with
whatever else the host process registers. Handler exposes that registry
for scraping; mount it wherever the host serves /metrics.
*/
type Prom struct {
	registry       *prometheus.Registry
	hits           prometheus.Counter
	misses         prometheus.Counter
	evictions      prometheus.Counter
	expirations    prometheus.Counter
	refreshes      prometheus.Counter
	producerErrors prometheus.Counter
}

// NewProm creates the collectors and registers them. namespace prefixes
// every metric name ("" falls back to "memocache").
func NewProm(namespace string) *Prom {
	if namespace == "" {
		namespace = "memocache"
	}

	registry := prometheus.NewRegistry()

	hits := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hits_total",
		Help:      "Lookups answered from the cache",
	})
	misses := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "misses_total",
		Help:      "Lookups that invoked the producer",
	})
	evictions := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evictions_total",
		Help:      "Entries removed to make room",
	})
	expirations := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expirations_total",
		Help:      "Entries removed because their TTL passed",
	})
	refreshes := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refreshes_total",
		Help:      "Refresh hook invocations",
	})
	producerErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "producer_errors_total",
		Help:      "Producer invocations that failed",
	})

	registry.MustRegister(hits, misses, evictions, expirations, refreshes, producerErrors)

	return &Prom{
		registry:       registry,
		hits:           hits,
		misses:         misses,
		evictions:      evictions,
		expirations:    expirations,
		refreshes:      refreshes,
		producerErrors: producerErrors,
	}
}

// Handler serves the cache's registry in the Prometheus text format.
func (p *Prom) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *Prom) Hit()           { p.hits.Inc() }
func (p *Prom) Miss()          { p.misses.Inc() }
func (p *Prom) Eviction()      { p.evictions.Inc() }
func (p *Prom) Expire()        { p.expirations.Inc() }
func (p *Prom) Refresh()       { p.refreshes.Inc() }
func (p *Prom) ProducerError() { p.producerErrors.Inc() }
