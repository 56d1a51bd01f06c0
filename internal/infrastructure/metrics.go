package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors for the analysis engine
type Metrics struct {
	ReportsGenerated prometheus.Counter
	ReportDuration   prometheus.Histogram
	RowsAnalyzed     prometheus.Counter
	SkillsSkipped    prometheus.Counter
	HTTPRequests     *prometheus.CounterVec
}

// NewMetrics registers and returns the application metrics on the given registerer.
// Pass prometheus.DefaultRegisterer in production; tests can use a fresh registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ReportsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "jobpulse",
			Name:      "reports_generated_total",
			Help:      "Total number of full intelligence reports generated",
		}),
		ReportDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jobpulse",
			Name:      "report_duration_seconds",
			Help:      "Time taken to generate a full intelligence report",
			Buckets:   prometheus.DefBuckets,
		}),
		RowsAnalyzed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "jobpulse",
			Name:      "rows_analyzed_total",
			Help:      "Total number of job posting rows fed into the engine",
		}),
		SkillsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "jobpulse",
			Name:      "skills_skipped_total",
			Help:      "Skills excluded from results due to degenerate partitions",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobpulse",
			Name:      "http_requests_total",
			Help:      "HTTP requests by path and status code",
		}, []string{"path", "status"}),
	}
}
