package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestEventMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewEventMetrics(reg)

	m.IncDispatched("order_placed")
	m.IncNotification("success")
	m.IncEmail("order-confirmation", "simulated")
	m.IncTick()
	m.ObserveHandlerDuration("order_placed", 150*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "events_dispatched_total", "event", "order_placed"); err != nil {
		t.Fatalf("fetch dispatched: %v", err)
	} else if got != 1 {
		t.Fatalf("expected dispatched=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "notifications_created_total", "type", "success"); err != nil {
		t.Fatalf("fetch notifications: %v", err)
	} else if got != 1 {
		t.Fatalf("expected notifications=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "emails_sent_total", "template", "order-confirmation"); err != nil {
		t.Fatalf("fetch emails: %v", err)
	} else if got != 1 {
		t.Fatalf("expected emails=1, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "event_handler_duration_seconds", "event", "order_placed"); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestEventMetricsNilRegistererIsNoop(t *testing.T) {
	m := NewEventMetrics(nil)
	m.IncDispatched("order_placed")
	m.IncEmail("seller-approval", "failed")
	m.IncTick()

	var nilMetrics *EventMetrics
	nilMetrics.IncNotification("info")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric family %s not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if hasLabel(metric, label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %s{%s=%q} not found", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric family %s not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if hasLabel(metric, label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("metric %s{%s=%q} not found", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func hasLabel(metric *dto.Metric, label, value string) bool {
	for _, pair := range metric.GetLabel() {
		if pair.GetName() == label && pair.GetValue() == value {
			return true
		}
	}
	return false
}
