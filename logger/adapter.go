package logger

import (
	"os"
	"reflect"
	"time"
)

type Adapter struct {
	contractResolution ContractResolution
	callbackInvocation CallbackInvocation
	log                Log
}

func (a *Adapter) ContractResolution(rType reflect.Type, category string, duration time.Duration, err error) {
	if a.contractResolution == nil {
		return
	}
	a.contractResolution(rType, category, duration, err)
}

func (a *Adapter) CallbackInvocation(phase, handle string, duration time.Duration, err error) {
	if a.callbackInvocation == nil {
		return
	}
	a.callbackInvocation(phase, handle, duration, err)
}

func (a *Adapter) Log(message string, args ...interface{}) {
	if a.log == nil {
		return
	}
	a.log(message, args...)
}

func NewLogger(logger Logger) *Adapter {
	if logger == nil {
		return &Adapter{}
	}
	return &Adapter{
		contractResolution: logger.ContractResolution(),
		callbackInvocation: logger.CallbackInvocation(),
		log:                logger.Log(),
	}
}

func Default() *Adapter {
	if os.Getenv("CONTRACTLY_DEBUG") == "" {
		return NewLogger(nil)
	}
	return NewLogger(&defaultLogger{})
}
