// Package metrics exposes Prometheus collectors for order operations.
package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// OrderMetrics holds the collectors recorded by the HTTP adapter and the summary job.
type OrderMetrics struct {
	ordersCreated prometheus.Counter
	ordersUpdated prometheus.Counter
	ordersDeleted prometheus.Counter

	// units and value of items written by create and update
	itemsWritten prometheus.Counter
	valueWritten prometheus.Counter

	requestDuration *prometheus.HistogramVec

	// store-wide gauges refreshed by the summary job
	storedOrders prometheus.Gauge
	storedItems  prometheus.Gauge
	storedValue  prometheus.Gauge
}

// NewOrderMetrics registers the collectors with the default registerer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer registers the collectors with registerer. Collectors that
// are already registered are reused, so calling it twice is safe.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pedidos_created_total",
			Help: "Total number of orders created",
		}),
		ordersUpdated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pedidos_updated_total",
			Help: "Total number of orders updated",
		}),
		ordersDeleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pedidos_deleted_total",
			Help: "Total number of orders deleted",
		}),
		itemsWritten: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pedidos_items_written_total",
			Help: "Total units of line items written by create and update",
		}),
		valueWritten: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pedidos_value_written_total",
			Help: "Total value of orders written by create and update",
		}),
		requestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "pedidos_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		storedOrders: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "pedidos_stored",
			Help: "Number of orders in the store at the last summary",
		}),
		storedItems: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "pedidos_stored_items",
			Help: "Units purchased across all stored orders at the last summary",
		}),
		storedValue: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "pedidos_stored_value",
			Help: "Value purchased across all stored orders at the last summary",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderCreated counts a created order with its units and total value.
func (m *OrderMetrics) RecordOrderCreated(items int, value decimal.Decimal) {
	m.ordersCreated.Inc()
	m.recordWritten(items, value)
}

// RecordOrderUpdated counts an updated order with the units and value it now holds.
func (m *OrderMetrics) RecordOrderUpdated(items int, value decimal.Decimal) {
	m.ordersUpdated.Inc()
	m.recordWritten(items, value)
}

func (m *OrderMetrics) RecordOrderDeleted() {
	m.ordersDeleted.Inc()
}

// ObserveRequest records the duration of one HTTP request. route is the registered path
// pattern, never the raw URL.
func (m *OrderMetrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// SetStoreTotals publishes the latest store-wide summary.
func (m *OrderMetrics) SetStoreTotals(orders, items int64, value decimal.Decimal) {
	m.storedOrders.Set(float64(orders))
	m.storedItems.Set(float64(items))
	m.storedValue.Set(value.InexactFloat64())
}

func (m *OrderMetrics) recordWritten(items int, value decimal.Decimal) {
	m.itemsWritten.Add(float64(items))
	m.valueWritten.Add(value.InexactFloat64())
}
