// Package metrics provides Prometheus metrics for the ChefsQuest persistence engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Record store metrics - durable reads and writes per record key
	recordReads       *prometheus.CounterVec
	recordWrites      *prometheus.CounterVec
	readFallbacks     *prometheus.CounterVec
	writeFailures     *prometheus.CounterVec
	storeReadLatency  prometheus.Histogram
	storeWriteLatency prometheus.Histogram

	// Gameplay metrics - level resolution outcomes
	levelsResolved       prometheus.Counter
	levelsCompleted      prometheus.Counter
	perfectGames         prometheus.Counter
	achievementsUnlocked prometheus.Counter
	duplicateResults     prometheus.Counter

	// Aggregate gauges - current persisted totals
	totalStars    prometheus.Gauge
	currentStreak prometheus.Gauge
	sessionActive prometheus.Gauge

	// Write queue metrics - per-record serialized mutation pipeline
	queueDepth      prometheus.Gauge
	queueMutations  prometheus.Counter
	queueRejections prometheus.Counter
	mutationLatency prometheus.Histogram

	// Data lifecycle metrics
	exportOps prometheus.Counter
	importOps prometheus.Counter
	resetOps  prometheus.Counter

	// HTTP metrics for the diagnostic API
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "chefsquest",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recordReads = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "record_reads_total",
			Help:      "Total number of record reads by record key",
		},
		[]string{"record"},
	)

	m.recordWrites = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "record_writes_total",
			Help:      "Total number of record writes by record key",
		},
		[]string{"record"},
	)

	m.readFallbacks = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "record_read_fallbacks_total",
			Help:      "Total number of reads that degraded to the default value (missing key, corrupt payload, or store error)",
		},
		[]string{"record", "reason"},
	)

	m.writeFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "record_write_failures_total",
			Help:      "Total number of record writes rejected by the underlying store",
		},
		[]string{"record"},
	)

	m.storeReadLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_read_latency_milliseconds",
		Help:      "Histogram of key-value read latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.storeWriteLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_write_latency_milliseconds",
		Help:      "Histogram of key-value write latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.levelsResolved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "levels_resolved_total",
		Help:      "Total number of level results applied to progress",
	})

	m.levelsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "levels_completed_total",
		Help:      "Total number of completed level results",
	})

	m.perfectGames = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "perfect_games_total",
		Help:      "Total number of three-star level results",
	})

	m.achievementsUnlocked = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "achievements_unlocked_total",
		Help:      "Total number of achievement unlocks",
	})

	m.duplicateResults = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicate_results_total",
		Help:      "Total number of duplicate level results skipped by the deduper",
	})

	m.totalStars = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_stars",
		Help:      "Current persisted total star count",
	})

	m.currentStreak = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "current_streak_days",
		Help:      "Current consecutive-day play streak",
	})

	m.sessionActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "session_active",
		Help:      "1 while a play session is active, 0 otherwise",
	})

	m.queueDepth = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "write_queue_depth",
		Help:      "Current number of pending mutations in the write queue",
	})

	m.queueMutations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "write_queue_mutations_total",
		Help:      "Total number of mutations executed by the write queue",
	})

	m.queueRejections = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "write_queue_rejections_total",
		Help:      "Total number of mutations rejected by the write queue (closed or cancelled)",
	})

	m.mutationLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "write_queue_mutation_latency_milliseconds",
		Help:      "Histogram of serialized mutation latency in milliseconds (queue wait plus execution)",
		Buckets:   m.histogramBuckets,
	})

	m.exportOps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "export_operations_total",
		Help:      "Total number of data export operations",
	})

	m.importOps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_operations_total",
		Help:      "Total number of data import operations",
	})

	m.resetOps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reset_operations_total",
		Help:      "Total number of clear-all-data operations",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// Record store helpers.

func RecordRead(record string) {
	globalManager.recordReads.WithLabelValues(record).Inc()
}

func RecordWrite(record string) {
	globalManager.recordWrites.WithLabelValues(record).Inc()
}

func RecordReadFallback(record, reason string) {
	globalManager.readFallbacks.WithLabelValues(record, reason).Inc()
}

func RecordWriteFailure(record string) {
	globalManager.writeFailures.WithLabelValues(record).Inc()
}

func RecordStoreReadLatency(latencyMs float64) {
	globalManager.storeReadLatency.Observe(latencyMs)
}

func RecordStoreWriteLatency(latencyMs float64) {
	globalManager.storeWriteLatency.Observe(latencyMs)
}

// Gameplay helpers.

func RecordLevelResolved() {
	globalManager.levelsResolved.Inc()
}

func RecordLevelCompleted() {
	globalManager.levelsCompleted.Inc()
}

func RecordPerfectGame() {
	globalManager.perfectGames.Inc()
}

func RecordAchievementUnlocked() {
	globalManager.achievementsUnlocked.Inc()
}

func RecordDuplicateResult() {
	globalManager.duplicateResults.Inc()
}

// Aggregate helpers.

func UpdateTotalStars(stars int) {
	globalManager.totalStars.Set(float64(stars))
}

func UpdateCurrentStreak(days int) {
	globalManager.currentStreak.Set(float64(days))
}

func UpdateSessionActive(active bool) {
	if active {
		globalManager.sessionActive.Set(1)
		return
	}
	globalManager.sessionActive.Set(0)
}

// Write queue helpers.

func UpdateQueueDepth(depth int) {
	globalManager.queueDepth.Set(float64(depth))
}

func RecordQueueMutation() {
	globalManager.queueMutations.Inc()
}

func RecordQueueRejection() {
	globalManager.queueRejections.Inc()
}

func RecordMutationLatency(latencyMs float64) {
	globalManager.mutationLatency.Observe(latencyMs)
}

// Data lifecycle helpers.

func RecordExport() {
	globalManager.exportOps.Inc()
}

func RecordImport() {
	globalManager.importOps.Inc()
}

func RecordReset() {
	globalManager.resetOps.Inc()
}

// HTTP helpers.

func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom registry for use with promhttp handlers.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
