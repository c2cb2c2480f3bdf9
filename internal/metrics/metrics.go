package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "contractkit"

// Collector holds the counters the validation engine and compatibility
// checker report into. A nil *Collector is valid and records nothing.
type Collector struct {
	validations  *prometheus.CounterVec
	compilations *prometheus.CounterVec
	cacheHits    prometheus.Counter
	compatChecks *prometheus.CounterVec
}

// New registers the collectors with reg. Collectors that are already
// registered (a second engine on the same registry) are reused. A nil reg
// yields a nil Collector.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		return nil
	}
	return &Collector{
		validations: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Instances validated, by schema identity and outcome.",
		}, []string{"schema", "result"})),
		compilations: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schema_compilations_total",
			Help:      "Schemas compiled into validators, by schema identity.",
		}, []string{"schema"})),
		cacheHits: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validator_cache_hits_total",
			Help:      "Validations served by an already compiled validator.",
		})),
		compatChecks: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compat_checks_total",
			Help:      "Fixture compatibility checks, by outcome.",
		}, []string{"result"})),
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// ObserveValidation counts one validation of schema.
func (c *Collector) ObserveValidation(schema string, valid bool) {
	if c == nil {
		return
	}
	c.validations.WithLabelValues(schema, outcome(valid, "valid", "invalid")).Inc()
}

// ObserveCompile counts one compilation of schema.
func (c *Collector) ObserveCompile(schema string) {
	if c == nil {
		return
	}
	c.compilations.WithLabelValues(schema).Inc()
}

// ObserveCacheHit counts one compiled-validator reuse.
func (c *Collector) ObserveCacheHit() {
	if c == nil {
		return
	}
	c.cacheHits.Inc()
}

// ObserveCompat counts one compatibility verdict.
func (c *Collector) ObserveCompat(compatible bool) {
	if c == nil {
		return
	}
	c.compatChecks.WithLabelValues(outcome(compatible, "compatible", "breaking")).Inc()
}

func outcome(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
