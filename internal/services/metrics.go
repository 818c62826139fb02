package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// QueueMetrics tracks the background analysis queue. A nil *QueueMetrics is
// valid and disables collection.
type QueueMetrics struct {
	JobsProcessed    *prometheus.CounterVec
	QueueDepth       prometheus.Gauge
	AnalysisDuration prometheus.Histogram
}

func NewQueueMetrics(reg prometheus.Registerer) *QueueMetrics {
	factory := promauto.With(reg)

	return &QueueMetrics{
		JobsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "resume_analysis_jobs_total",
			Help: "Analysis jobs processed, partitioned by write-back outcome.",
		}, []string{"outcome"}),
		QueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "resume_analysis_queue_depth",
			Help: "Jobs currently waiting in the analysis queue.",
		}),
		AnalysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "resume_analysis_duration_seconds",
			Help:    "Wall time spent analyzing a single resume.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
	}
}

func (m *QueueMetrics) observeDepth(depth int) {
	if m == nil {
		return
	}
	m.QueueDepth.Set(float64(depth))
}

func (m *QueueMetrics) observeJob(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.JobsProcessed.WithLabelValues(outcome).Inc()
	m.AnalysisDuration.Observe(seconds)
}
