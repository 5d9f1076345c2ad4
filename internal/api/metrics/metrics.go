// Package metrics defines and registers all custom Prometheus metrics for the
// inventory API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry at package init
// via promauto; the HTTP layer exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Product metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts newly created products.
// Label:
//   - category: the product category (e.g. "Dairy")
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created, by category.",
	},
	[]string{"category"},
)

// ProductsDeletedTotal counts product deletions.
var ProductsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_deleted_total",
		Help:      "Total number of products deleted.",
	},
)

// ── Sale metrics ──────────────────────────────────────────────────────────────

// SalesRecordedTotal counts successfully recorded sales.
// Label:
//   - status: the product's stock tier after the sale (e.g. "Low Stock")
var SalesRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_recorded_total",
		Help:      "Total number of sales successfully recorded, by resulting stock tier.",
	},
	[]string{"status"},
)

// SalesErrorsTotal counts sale attempts that failed.
// Label:
//   - reason: short failure description ("invalid_quantity", "product_not_found", "insufficient_stock", "store_error")
var SalesErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_errors_total",
		Help:      "Total number of sale attempts that failed, by reason.",
	},
	[]string{"reason"},
)

// SaleAmount observes the monetary amount of each recorded sale.
var SaleAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sale_amount",
		Help:      "Distribution of recorded sale amounts.",
		Buckets:   prometheus.ExponentialBuckets(1, 2.5, 10), // 1 … ~3800
	},
)

// ── Summary metrics ───────────────────────────────────────────────────────────

// SummaryCacheTotal counts stock summary cache lookups.
// Label:
//   - result: "hit" or "miss"
var SummaryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summary_cache_total",
		Help:      "Total number of stock summary cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
