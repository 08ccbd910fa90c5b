package resolver

import (
	"reflect"
	"strings"
	"time"

	"github.com/viant/contractly/logger"
	"github.com/viant/gmetric"
	"github.com/viant/gmetric/provider"
)

// Metrics wires contract resolution timing into a gmetric service.
type Metrics struct {
	*gmetric.Service
	URIPart string
}

type metricsLocation struct {
}

func metricLocation() string {
	return reflect.TypeOf(metricsLocation{}).PkgPath()
}

func (s *Service) ensureCounter(metrics *Metrics) {
	if metrics == nil || metrics.Service == nil {
		s.counter = logger.NewCounter(nil)
		return
	}
	name := "contract.resolve"
	if metrics.URIPart != "" {
		name = metrics.URIPart + name
	}
	name = strings.ReplaceAll(name, "/", ".")

	var aCounter logger.OperationCounter
	cnt := metrics.Service.LookupOperation(name)
	if cnt == nil {
		aCounter = metrics.Service.MultiOperationCounter(metricLocation(), name, name+" performance", time.Millisecond, time.Minute, 2, provider.NewBasic())
	} else {
		aCounter = cnt
	}
	s.counter = logger.NewCounter(aCounter)
}
