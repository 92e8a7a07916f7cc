package node

import (
	"github.com/viant/tagly/format/text"
	"github.com/viant/vpath/logger"
	"github.com/viant/vpath/metric"
)

//Options controls accessor classification and instrumentation shared by a node graph
type Options struct {
	CaseFormat text.CaseFormat
	Getters    bool
	Logger     *logger.Adapter
	Counter    *logger.CounterAdapter
	Metrics    *metric.Accesses
}

//NewOptions creates default options
func NewOptions() *Options {
	return &Options{Getters: true}
}
