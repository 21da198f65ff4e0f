package providers

import (
	"devstats/internal/structures"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveUpstreamDuration(source string, status int, duration time.Duration)
	IncEnquiriesTotal(result string)
	ObservePersistenceDuration(duration time.Duration)
	SetEnquiryRows(count int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	upstreamDuration    *prometheus.HistogramVec
	enquiriesTotal      *prometheus.CounterVec
	persistenceDuration prometheus.Histogram
	enquiryRows         prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

// ObserveUpstreamDuration records one outbound call. status 0 means no
// response was received.
func (m *MetricsProvider) ObserveUpstreamDuration(source string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.upstreamDuration.WithLabelValues(source, label).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncEnquiriesTotal(result string) {
	m.enquiriesTotal.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetEnquiryRows(count int) {
	m.enquiryRows.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "devstats_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "devstats_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "devstats_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "devstats_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		upstreamDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "devstats_upstream_request_duration_seconds",
			Help:    "Duration of upstream API calls in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"source", "status"}),

		enquiriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "devstats_enquiries_total",
			Help: "Total number of enquiry submissions by result",
		}, []string{"result"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "devstats_persistence_duration_seconds",
			Help:    "Duration of enquiry file rewrites in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		enquiryRows: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "devstats_enquiry_rows",
			Help: "Number of rows in the enquiry sheet",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                         {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)         {}
func (n *noopMetrics) IncCacheHits()                                            {}
func (n *noopMetrics) IncCacheMisses()                                          {}
func (n *noopMetrics) ObserveUpstreamDuration(_ string, _ int, _ time.Duration) {}
func (n *noopMetrics) IncEnquiriesTotal(_ string)                               {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)               {}
func (n *noopMetrics) SetEnquiryRows(_ int)                                     {}
