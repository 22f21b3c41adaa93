package inventory

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelOp     = "op"
	labelResult = "result"

	resultHit  = "hit"
	resultMiss = "miss"

	opAdd            = "add"
	opRemove         = "remove"
	opGet            = "get"
	opUpdatePrice    = "update_price"
	opUpdateQuantity = "update_quantity"
)

// metrics is nil-safe: a catalog built without a registerer records nothing.
// Catalogs sharing a registerer share the collectors, so the products gauge
// is the total across them.
type metrics struct {
	products   prometheus.Gauge
	operations *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}

	products := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_products",
			Help: "Number of products in the catalog",
		},
	)
	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_operations_total",
			Help: "Catalog operations by outcome",
		},
		[]string{labelOp, labelResult},
	)

	return &metrics{
		products:   register(reg, products),
		operations: register(reg, operations),
	}
}

// register returns the collector already registered under the same
// descriptor when there is one.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *metrics) observe(op string, hit bool) {
	if m == nil {
		return
	}
	result := resultMiss
	if hit {
		result = resultHit
	}
	m.operations.WithLabelValues(op, result).Inc()
}

func (m *metrics) added() {
	if m == nil {
		return
	}
	m.products.Inc()
}

func (m *metrics) removed() {
	if m == nil {
		return
	}
	m.products.Dec()
}
