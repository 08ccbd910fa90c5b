package logger

import (
	"time"

	"github.com/viant/gmetric/counter"
)

// OperationCounter abstracts the gmetric operation tracking contract
// resolution timing.
type OperationCounter interface {
	Begin(started time.Time) counter.OnDone
}

// ResolutionCounter guards an optional OperationCounter; without a backing
// counter every Begin resolves to a nop so resolution pays nothing when
// metrics are off.
type ResolutionCounter struct {
	counter OperationCounter
}

func (r *ResolutionCounter) Begin(started time.Time) counter.OnDone {
	if r.counter == nil {
		return func(_ time.Time, _ ...interface{}) int64 {
			return 0
		}
	}
	return r.counter.Begin(started)
}

// NewCounter creates a resolution counter; a nil operation counter is valid
// and yields the nop path.
func NewCounter(operation OperationCounter) *ResolutionCounter {
	return &ResolutionCounter{counter: operation}
}
