package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveValidation("a.v1", true)
	c.ObserveValidation("a.v1", false)
	c.ObserveValidation("a.v1", false)
	c.ObserveCompile("a.v1")
	c.ObserveCacheHit()
	c.ObserveCompat(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.validations.WithLabelValues("a.v1", "valid")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.validations.WithLabelValues("a.v1", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.compilations.WithLabelValues("a.v1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.compatChecks.WithLabelValues("breaking")))
}

func TestNew_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := New(reg)
	second := New(reg)

	first.ObserveCacheHit()
	second.ObserveCacheHit()

	assert.Equal(t, 2.0, testutil.ToFloat64(first.cacheHits))
}

func TestNilCollector_IsNoop(t *testing.T) {
	var c *Collector
	assert.Nil(t, New(nil))
	assert.NotPanics(t, func() {
		c.ObserveValidation("a.v1", true)
		c.ObserveCompile("a.v1")
		c.ObserveCacheHit()
		c.ObserveCompat(true)
	})
}
