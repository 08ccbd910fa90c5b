package logger

import (
	"reflect"
	"time"
)

type Log func(message string, args ...interface{})
type ContractResolution func(rType reflect.Type, category string, duration time.Duration, err error)
type CallbackInvocation func(phase string, handle string, duration time.Duration, err error)

type Logger interface {
	ContractResolution() ContractResolution
	CallbackInvocation() CallbackInvocation
	Log() Log
}
