package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

// Metrics holds the report service collectors.
type Metrics struct {
	created prometheus.Counter
	issues  prometheus.Counter
}

// NewMetrics registers the report collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		created: f.NewCounter(prometheus.CounterOpts{
			Namespace: "travelpath",
			Name:      "reports_created_total",
			Help:      "Number of travel path reports created.",
		}),
		issues: f.NewCounter(prometheus.CounterOpts{
			Namespace: "travelpath",
			Name:      "report_issues_total",
			Help:      "Number of failed checks recorded in created reports.",
		}),
	}
}

func (m *Metrics) observeCreated(r *domain.Report) {
	if m == nil {
		return
	}
	m.created.Inc()
	m.issues.Add(float64(r.IssueCount()))
}
