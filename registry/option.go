package registry

import (
	"github.com/viant/gmetric"
	"github.com/viant/tagly/format/text"
	"github.com/viant/vpath/config"
	"github.com/viant/vpath/logger"
	"github.com/viant/vpath/metric"
	"github.com/viant/vpath/node"
)

//Option represents registry option
type Option func(r *Registry)

//WithConfig applies config driven options
func WithConfig(cfg *config.Config) Option {
	return func(r *Registry) {
		r.config = cfg
		r.options.CaseFormat = cfg.KeyCaseFormat()
		r.options.Getters = cfg.UseGetters()
		if cfg.Debug {
			r.options.Logger = logger.Debug()
		}
	}
}

//WithLogger sets diagnostics logger
func WithLogger(aLogger logger.Logger) Option {
	return func(r *Registry) {
		r.options.Logger = logger.NewLogger(aLogger)
	}
}

//WithCaseFormat sets path key case format
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(r *Registry) {
		r.options.CaseFormat = caseFormat
	}
}

//WithGetters enables or disables getter method accessors
func WithGetters(enabled bool) Option {
	return func(r *Registry) {
		r.options.Getters = enabled
	}
}

//WithMetrics registers accessor invocation counter with metric service
func WithMetrics(service *gmetric.Service) Option {
	return func(r *Registry) {
		r.metrics = service
	}
}

//WithAccesses sets per path accessor invocation metrics
func WithAccesses(accesses *metric.Accesses) Option {
	return func(r *Registry) {
		r.options.Metrics = accesses
	}
}

func newNodeOptions() *node.Options {
	result := node.NewOptions()
	result.Logger = logger.Default()
	return result
}
