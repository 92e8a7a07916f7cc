package metric

import (
	"github.com/viant/gmetric"
	"github.com/viant/gmetric/provider"
	"github.com/viant/vpath/logger"
	"reflect"
	"strings"
	"time"
)

type metricsLocation struct {
}

func metricLocation() string {
	return reflect.TypeOf(metricsLocation{}).PkgPath()
}

//NewCounter returns accessor invocation counter registered with the metric service
func NewCounter(service *gmetric.Service, name string) *logger.CounterAdapter {
	if service == nil {
		return logger.NewCounter(nil)
	}
	name = strings.ReplaceAll(name, "/", ".")
	var counter logger.Counter
	if cnt := service.LookupOperation(name); cnt != nil {
		counter = cnt
	} else {
		counter = service.MultiOperationCounter(metricLocation(), name, name+" accessor performance", time.Microsecond, time.Minute, 2, provider.NewBasic())
	}
	return logger.NewCounter(counter)
}
