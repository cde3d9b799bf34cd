package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// InventoryMetrics records order pipeline and catalog activity.
type InventoryMetrics struct {
	ordersCreated   prometheus.Counter
	ordersRejected  *prometheus.CounterVec
	ordersProcessed prometheus.Counter
	ordersPending   prometheus.Gauge
	catalogProducts prometheus.Gauge
	orderWait       prometheus.Histogram
}

// NewInventoryMetrics registers the inventory metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewInventoryMetrics(reg prometheus.Registerer) *InventoryMetrics {
	if reg == nil {
		return &InventoryMetrics{}
	}
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "inventory_orders_created_total",
		Help: "Orders accepted and enqueued.",
	})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_orders_rejected_total",
		Help: "Order creations rejected, by error code.",
	}, []string{"reason"})
	processed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "inventory_orders_processed_total",
		Help: "Orders dequeued and marked processed.",
	})
	pending := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "inventory_orders_pending",
		Help: "Orders waiting in the FIFO queue.",
	})
	products := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "inventory_catalog_products",
		Help: "Products currently in the catalog.",
	})
	wait := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "inventory_order_queue_wait_seconds",
		Help:    "Time an order spent pending before being processed.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(created, rejected, processed, pending, products, wait)
	return &InventoryMetrics{
		ordersCreated:   created,
		ordersRejected:  rejected,
		ordersProcessed: processed,
		ordersPending:   pending,
		catalogProducts: products,
		orderWait:       wait,
	}
}

// OrderCreated counts an enqueued order and updates the pending gauge.
func (m *InventoryMetrics) OrderCreated(pending int) {
	if m == nil || m.ordersCreated == nil {
		return
	}
	m.ordersCreated.Inc()
	m.ordersPending.Set(float64(pending))
}

// OrderRejected counts a failed order creation under the given reason.
func (m *InventoryMetrics) OrderRejected(reason string) {
	if m == nil || m.ordersRejected == nil {
		return
	}
	m.ordersRejected.WithLabelValues(normalizeLabel(reason)).Inc()
}

// OrderProcessed counts a processed order and records how long it waited.
func (m *InventoryMetrics) OrderProcessed(pending int, waited time.Duration) {
	if m == nil || m.ordersProcessed == nil {
		return
	}
	m.ordersProcessed.Inc()
	m.ordersPending.Set(float64(pending))
	m.orderWait.Observe(waited.Seconds())
}

// QueueDepth sets the pending gauge directly.
func (m *InventoryMetrics) QueueDepth(pending int) {
	if m == nil || m.ordersPending == nil {
		return
	}
	m.ordersPending.Set(float64(pending))
}

// CatalogSize sets the catalog product gauge.
func (m *InventoryMetrics) CatalogSize(count int) {
	if m == nil || m.catalogProducts == nil {
		return
	}
	m.catalogProducts.Set(float64(count))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
