package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bulletinViews = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bulletin_views_recorded_total",
			Help: "Total number of access log entries appended by thread views",
		},
	)

	starsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stars_added_total",
			Help: "Total number of star records appended",
		},
		[]string{"target"},
	)

	rankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ranking_compute_duration_seconds",
			Help:    "Time spent computing the most-viewed bulletin ranking",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)
)

// ViewRecorded counts one appended access log entry
func ViewRecorded() {
	bulletinViews.Inc()
}

// StarAdded counts one appended star record for target ("bulletin" or "comment")
func StarAdded(target string) {
	starsAdded.WithLabelValues(target).Inc()
}

// ObserveRanking records the duration of one ranking computation
func ObserveRanking(seconds float64) {
	rankingDuration.Observe(seconds)
}
