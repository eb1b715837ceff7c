package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "printhub_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	OrdersDistributedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "printhub_orders_distributed_total",
		Help: "Total number of distribution fan-outs completed.",
	})

	ProposalsAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "printhub_proposals_accepted_total",
		Help: "Total number of printer acceptances recorded.",
	})

	OrdersFinalizedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "printhub_orders_finalized_total",
		Help: "Total number of orders finalized by buyers.",
	})

	DegradedMatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "printhub_degraded_match_total",
		Help: "Total number of candidates skipped due to per-candidate faults.",
	},
		[]string{"stage"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "printhub_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	CatalogCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "printhub_catalog_cache_items",
		Help: "Current number of published materials in the catalog cache.",
	})
)
