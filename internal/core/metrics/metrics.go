// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every collector name.
const Namespace = "courier_billing"

var (
	registerOnce sync.Once

	// ChargesCreated counts persisted charge records by service type.
	ChargesCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "charges_created_total",
		Help:      "Count of charge records created by service type.",
	}, []string{"service_type"})

	// InvoiceRenders counts invoice PDF renders by outcome.
	InvoiceRenders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "invoice_render_total",
		Help:      "Count of invoice document renders by outcome.",
	}, []string{"result"})

	// InvoiceRenderDuration records render latency in milliseconds.
	InvoiceRenderDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "invoice_render_duration_ms",
		Help:      "Invoice render latency in milliseconds.",
		Buckets:   []float64{100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	}, []string{"result"})

	// StatsCacheLookups counts dashboard cache lookups by outcome (hit, miss, error).
	StatsCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "stats_cache_lookups_total",
		Help:      "Dashboard statistics cache lookups by outcome.",
	}, []string{"result"})

	// HTTPRequests counts handled requests.
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled by the server.",
	}, []string{"method", "route", "status"})

	// HTTPDuration records request latency in milliseconds.
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency distribution in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	}, []string{"method", "route"})
)

// MustRegister registers every collector with reg, or the default registerer when nil.
// Collectors already registered are reused.
func MustRegister(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		mustRegisterCounter(reg, &ChargesCreated)
		mustRegisterCounter(reg, &InvoiceRenders)
		mustRegisterHistogram(reg, &InvoiceRenderDuration)
		mustRegisterCounter(reg, &StatsCacheLookups)
		mustRegisterCounter(reg, &HTTPRequests)
		mustRegisterHistogram(reg, &HTTPDuration)
	})
}

// DurationMillis converts a duration to milliseconds for metric observation.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func mustRegisterCounter(reg prometheus.Registerer, c **prometheus.CounterVec) {
	if err := reg.Register(*c); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(fmt.Errorf("register counter: %w", err))
		}
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			*c = existing
		}
	}
}

func mustRegisterHistogram(reg prometheus.Registerer, h **prometheus.HistogramVec) {
	if err := reg.Register(*h); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(fmt.Errorf("register histogram: %w", err))
		}
		if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
			*h = existing
		}
	}
}
