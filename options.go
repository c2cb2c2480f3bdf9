package contractkit

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/reoring/contractkit/internal/metrics"
)

// Option configures a Validator, Checker or Engine.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	registerer prometheus.Registerer
	dialect    Dialect
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegisterer registers validation metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithDialect fixes the JSON Schema dialect used for every schema. The default
// is draft-07.
func WithDialect(d Dialect) Option {
	return func(o *options) { o.dialect = d }
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop(), dialect: Draft7}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) metrics() *metrics.Collector {
	return metrics.New(o.registerer)
}
