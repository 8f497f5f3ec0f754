package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters for one replay run.
type Metrics struct {
	RecordsRead    prometheus.Counter
	RecordsSkipped prometheus.Counter

	TransactionsApplied  prometheus.Counter
	TransactionsRejected *prometheus.CounterVec
}

// New creates and registers all metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecordsRead: factory.NewCounter(prometheus.CounterOpts{
			Name: "transacto_records_read_total",
			Help: "Total number of records read from the input stream",
		}),
		RecordsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "transacto_records_skipped_total",
			Help: "Total number of malformed records skipped",
		}),
		TransactionsApplied: factory.NewCounter(prometheus.CounterOpts{
			Name: "transacto_transactions_applied_total",
			Help: "Total number of transactions applied to the ledger",
		}),
		TransactionsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transacto_transactions_rejected_total",
			Help: "Total number of transactions rejected by the ledger",
		}, []string{"reason"}),
	}
}
