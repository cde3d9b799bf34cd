package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestInventoryMetricsExportsCountersAndGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewInventoryMetrics(reg)

	m.OrderCreated(1)
	m.OrderCreated(2)
	m.OrderRejected("INSUFFICIENT_STOCK")
	m.OrderRejected("")
	m.OrderProcessed(1, 250*time.Millisecond)
	m.CatalogSize(8)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got := mustValue(t, mfs, "inventory_orders_created_total", "", ""); got != 2 {
		t.Fatalf("expected created=2, got %f", got)
	}
	if got := mustValue(t, mfs, "inventory_orders_rejected_total", "reason", "INSUFFICIENT_STOCK"); got != 1 {
		t.Fatalf("expected rejected=1, got %f", got)
	}
	if got := mustValue(t, mfs, "inventory_orders_rejected_total", "reason", "unknown"); got != 1 {
		t.Fatalf("expected unknown reason=1, got %f", got)
	}
	if got := mustValue(t, mfs, "inventory_orders_processed_total", "", ""); got != 1 {
		t.Fatalf("expected processed=1, got %f", got)
	}
	if got := mustValue(t, mfs, "inventory_orders_pending", "", ""); got != 1 {
		t.Fatalf("expected pending=1, got %f", got)
	}
	if got := mustValue(t, mfs, "inventory_catalog_products", "", ""); got != 8 {
		t.Fatalf("expected products=8, got %f", got)
	}
	if got := mustValue(t, mfs, "inventory_order_queue_wait_seconds", "", ""); got <= 0 {
		t.Fatalf("expected wait sum > 0, got %f", got)
	}
}

func TestHTTPMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	m.Observe("POST", "/api/v1/orders", 201, 10*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	if got := mustValue(t, mfs, "http_request_duration_seconds", "route", "/api/v1/orders"); got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestNilRegistererIsNoop(t *testing.T) {
	m := NewInventoryMetrics(nil)
	m.OrderCreated(1)
	m.OrderRejected("x")
	m.OrderProcessed(0, time.Second)
	m.QueueDepth(3)
	m.CatalogSize(1)

	var nilMetrics *InventoryMetrics
	nilMetrics.OrderCreated(1)

	NewHTTPMetrics(nil).Observe("GET", "/", 200, time.Millisecond)
}

// mustValue returns the counter/gauge value, or the histogram sum, of the
// first metric matching label=value (any metric when label is empty).
func mustValue(t *testing.T, mfs []*dto.MetricFamily, name, label, value string) float64 {
	t.Helper()
	v, err := fetchValue(mfs, name, label, value)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func fetchValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if label != "" && !matchesLabel(metric.GetLabel(), label, value) {
				continue
			}
			switch {
			case metric.Counter != nil:
				return metric.GetCounter().GetValue(), nil
			case metric.Gauge != nil:
				return metric.GetGauge().GetValue(), nil
			case metric.Histogram != nil:
				return metric.GetHistogram().GetSampleSum(), nil
			}
		}
		return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
	}
	return 0, fmt.Errorf("metric %q not found", name)
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, lp := range labels {
		if lp.GetName() == name && lp.GetValue() == value {
			return true
		}
	}
	return false
}
