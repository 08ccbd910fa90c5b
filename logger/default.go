package logger

import (
	"fmt"
	"reflect"
	"time"
)

type defaultLogger struct {
}

func (d *defaultLogger) ContractResolution() ContractResolution {
	return func(rType reflect.Type, category string, duration time.Duration, err error) {
		fmt.Printf("[LOGGER] resolved contract for %v as %v, took %v, err: %v \n", rType, category, duration, err)
	}
}

func (d *defaultLogger) CallbackInvocation() CallbackInvocation {
	return func(phase, handle string, duration time.Duration, err error) {
		fmt.Printf("[LOGGER] invoked %v hook %v, took %v, err: %v \n", phase, handle, duration, err)
	}
}

func (d *defaultLogger) Log() Log {
	return func(message string, args ...interface{}) {
		fmt.Printf("[LOGGER] "+message+" \n", args...)
	}
}
