// internal/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeStale   = "stale"
)

// Recorder collects claim submission metrics. The zero value is not usable;
// construct it with New.
type Recorder struct {
	submissions        *prometheus.CounterVec
	predictionDuration *prometheus.HistogramVec
}

// New creates a Recorder and registers its collectors with reg. A nil
// registerer leaves the collectors unregistered, which is what tests want.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claim_submissions_total",
			Help: "Claim form submissions by outcome.",
		}, []string{"outcome"}),
		predictionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "claim_prediction_duration_seconds",
			Help:    "Round trip time of calls to the prediction service.",
			Buckets: prometheus.DefBuckets,
		}, []string{"status"}),
	}

	if reg != nil {
		reg.MustRegister(r.submissions, r.predictionDuration)
	}

	return r
}

// Submission counts one finished submission.
func (r *Recorder) Submission(outcome string) {
	if r == nil {
		return
	}
	r.submissions.WithLabelValues(outcome).Inc()
}

// Prediction observes one call to the prediction service.
func (r *Recorder) Prediction(status string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.predictionDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

// SubmissionCounter exposes the counter for a given outcome, used by tests.
func (r *Recorder) SubmissionCounter(outcome string) prometheus.Counter {
	return r.submissions.WithLabelValues(outcome)
}
