package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spaceflow_http_requests_total",
			Help: "Toplam HTTP istek sayısı",
		},
		[]string{"method", "endpoint", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spaceflow_http_request_duration_seconds",
			Help:    "HTTP istek süresi (saniye)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spaceflow_store_operations_total",
			Help: "Toplam depolama operasyonu sayısı",
		},
		[]string{"operation", "key"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spaceflow_store_operation_duration_seconds",
			Help:    "Depolama operasyon süresi (saniye)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "key"},
	)

	ListingOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spaceflow_listing_operations_total",
			Help: "İlan operasyonu sayısı",
		},
		[]string{"action"},
	)

	SearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spaceflow_searches_total",
			Help: "Toplam arama sayısı",
		},
	)

	ViewsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spaceflow_listing_views_total",
			Help: "Kaydedilen ilan görüntülenme sayısı",
		},
	)

	ReviewsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spaceflow_reviews_added_total",
			Help: "Eklenen değerlendirme sayısı",
		},
	)

	ActiveSession = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "spaceflow_active_session",
			Help: "Aktif oturum (0 veya 1)",
		},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spaceflow_cache_hits_total",
			Help: "Önbellek isabet sayısı",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spaceflow_cache_misses_total",
			Help: "Önbellek isabet etmeme sayısı",
		},
	)
)

func RecordHttpRequest(method, endpoint, status string, duration time.Duration) {
	HttpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HttpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordStoreOperation(operation, key string, duration time.Duration) {
	StoreOperationsTotal.WithLabelValues(operation, key).Inc()
	StoreOperationDuration.WithLabelValues(operation, key).Observe(duration.Seconds())
}

func RecordListingOperation(action string) {
	ListingOperations.WithLabelValues(action).Inc()
}

func RecordSearch() {
	SearchesTotal.Inc()
}

func RecordView() {
	ViewsRecorded.Inc()
}

func RecordReview() {
	ReviewsAdded.Inc()
}

func SetSessionActive(active bool) {
	if active {
		ActiveSession.Set(1)
		return
	}
	ActiveSession.Set(0)
}

func RecordCacheHit() {
	CacheHits.Inc()
}

func RecordCacheMiss() {
	CacheMisses.Inc()
}
