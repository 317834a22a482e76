// Package metrics exposes prometheus instrumentation for the prospecting
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	verificationsTotal   *prometheus.CounterVec
	verificationDuration prometheus.Histogram
	guessAttemptsTotal   prometheus.Counter
	fingerprintDuration  prometheus.Histogram
	prospectsTotal       *prometheus.CounterVec
	businessesProcessed  prometheus.Counter
}

// NewCollector registers the pipeline metrics on the given registerer; nil
// uses the default registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		verificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prospect_verifications_total",
				Help: "Total number of domain verifications performed",
			},
			[]string{"result"},
		),
		verificationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "prospect_verification_duration_seconds",
				Help:    "Duration of domain verification including retries",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
		),
		guessAttemptsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "prospect_domain_guess_attempts_total",
				Help: "Candidate domains tried by the guess fallback",
			},
		),
		fingerprintDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "prospect_fingerprint_duration_seconds",
				Help:    "Duration of tech stack fingerprinting per site",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
		),
		prospectsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prospect_scored_total",
				Help: "Scored prospects by recommendation",
			},
			[]string{"recommendation"},
		),
		businessesProcessed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "prospect_businesses_processed_total",
				Help: "Businesses fed through the pipeline",
			},
		),
	}
}

func (c *Collector) RecordVerification(verified bool, duration time.Duration) {
	result := "failed"
	if verified {
		result = "verified"
	}
	c.verificationsTotal.WithLabelValues(result).Inc()
	c.verificationDuration.Observe(duration.Seconds())
}

func (c *Collector) RecordGuessAttempt() {
	c.guessAttemptsTotal.Inc()
}

func (c *Collector) RecordFingerprint(duration time.Duration) {
	c.fingerprintDuration.Observe(duration.Seconds())
}

func (c *Collector) RecordProspect(recommendation string) {
	c.prospectsTotal.WithLabelValues(recommendation).Inc()
	c.businessesProcessed.Inc()
}
