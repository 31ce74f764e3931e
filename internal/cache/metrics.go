package cache

import "github.com/prometheus/client_golang/prometheus"

// metrics tracks engine throughput and failure counts for Prometheus
// scraping. Generalized from the teacher pack's per-connection counters
// (worker_pool.go's droppedTasks, metrics.go's ws_* counters) to the
// per-engine write-behind pipeline this package implements.
type metrics struct {
	commandsEnqueued prometheus.Counter
	commandsDropped  prometheus.Counter
	commandsFlushed  prometheus.Counter
	flushesTotal     prometheus.Counter
	flushErrors      prometheus.Counter
	loadFailures     prometheus.Counter
}

// newMetrics constructs a fresh metric set and registers it against reg,
// the caller-supplied registerer, rather than the global default registry;
// a nil reg skips registration. Engines given separate registries (or nil)
// never collide on metric names; two engines registered against the same
// registerer do, and MustRegister panics.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		commandsEnqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cache_commands_enqueued_total",
			Help: "Total number of insert/update/delete commands enqueued by producers.",
		}),
		commandsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cache_commands_dropped_total",
			Help: "Total number of commands dropped by the write worker (malformed key, unsupported op, empty payload).",
		}),
		commandsFlushed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cache_commands_flushed_total",
			Help: "Total number of commands successfully queued onto a submitted pipeline.",
		}),
		flushesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cache_flushes_total",
			Help: "Total number of atomic pipeline flushes submitted to the store.",
		}),
		flushErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cache_flush_errors_total",
			Help: "Total number of flushes that failed at the transport layer.",
		}),
		loadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cache_load_failures_total",
			Help: "Total number of bulk-load entity fetches dropped due to a missing or failed read.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.commandsEnqueued,
			m.commandsDropped,
			m.commandsFlushed,
			m.flushesTotal,
			m.flushErrors,
			m.loadFailures,
		)
	}
	return m
}
