package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы Prometheus: HTTP запросы сервиса и round-trip'ы
// к удалённому хранилищу записей
type Metrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	storeRequestsTotal   *prometheus.CounterVec
	storeRequestDuration *prometheus.HistogramVec
	storeErrorsTotal     *prometheus.CounterVec
}

// New создает и регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of handled HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		storeRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "store_requests_total",
			Help:        "Total number of record store round-trips",
			ConstLabels: constLabels,
		}, []string{"table", "operation"}),

		storeRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "store_request_duration_seconds",
			Help:        "Record store round-trip duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"table", "operation"}),

		storeErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "store_errors_total",
			Help:        "Total number of failed record store round-trips",
			ConstLabels: constLabels,
		}, []string{"table", "operation"}),
	}
}

// ObserveHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveStoreRequest фиксирует один round-trip к хранилищу
func (m *Metrics) ObserveStoreRequest(table, operation string, duration time.Duration, err error) {
	m.storeRequestsTotal.WithLabelValues(table, operation).Inc()
	m.storeRequestDuration.WithLabelValues(table, operation).Observe(duration.Seconds())
	if err != nil {
		m.storeErrorsTotal.WithLabelValues(table, operation).Inc()
	}
}
