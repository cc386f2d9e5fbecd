// Package metrics содержит prometheus-коллекторы сервиса.
// Все коллекторы регистрируются в DefaultRegisterer и отдаются через /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests — число обработанных запросов по шаблону маршрута.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agro_http_requests_total",
		Help: "Total number of handled HTTP requests",
	}, []string{"method", "route", "status_code"})

	// HTTPDuration — длительность обработки запросов.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agro_http_request_duration_seconds",
		Help:    "Histogram of HTTP request handling latency in seconds",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
	}, []string{"method", "route"})

	// OutboundLatency — латентность вызовов внешних API.
	OutboundLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agro_outbound_request_latency",
		Help:    "Histogram of outbound API request latency in seconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
	}, []string{"method", "host", "path", "status_code"})

	// Fallbacks — число ответов, собранных из запасного источника.
	Fallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agro_fallbacks_total",
		Help: "Total number of results served from a fallback source",
	}, []string{"component", "reason"})

	// CacheLookups — попадания/промахи кэша погоды.
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agro_cache_lookups_total",
		Help: "Total number of weather cache lookups by result",
	}, []string{"result"})

	// ThreadConflicts — повторы записи дерева обсуждения из-за конкурентного изменения.
	ThreadConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agro_thread_write_conflicts_total",
		Help: "Total number of optimistic thread write conflicts",
	})
)
