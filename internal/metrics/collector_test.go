package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectorRecords(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordVerification(true, 120*time.Millisecond)
	c.RecordVerification(false, 40*time.Millisecond)
	c.RecordGuessAttempt()
	c.RecordGuessAttempt()
	c.RecordProspect("CONTACT")
	c.RecordProspect("EXCLUDE")
	c.RecordProspect("EXCLUDE")

	assert.Equal(t, float64(1), testutil.ToFloat64(c.verificationsTotal.WithLabelValues("verified")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.verificationsTotal.WithLabelValues("failed")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.guessAttemptsTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.prospectsTotal.WithLabelValues("EXCLUDE")))
	assert.Equal(t, float64(3), testutil.ToFloat64(c.businessesProcessed))
}

func TestCollectorSeparateRegistries(t *testing.T) {
	// Two collectors must be able to coexist on independent registries.
	assert.NotPanics(t, func() {
		NewCollector(prometheus.NewRegistry())
		NewCollector(prometheus.NewRegistry())
	})
}
