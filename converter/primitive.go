package converter

import (
	"reflect"

	"github.com/viant/xreflect"
)

var bytesType = reflect.TypeOf([]byte{})

// IsConvertibleToPrimitive returns true if the conversion subsystem can
// coerce the supplied type to a scalar.
func IsConvertibleToPrimitive(rType reflect.Type) bool {
	if rType == nil {
		return false
	}
	switch rType.Kind() {
	case reflect.Int, reflect.Int64, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint, reflect.Uint64, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Float32, reflect.Float64,
		reflect.Bool, reflect.String:
		return true
	}
	if rType == bytesType || rType == xreflect.TimeType {
		return true
	}
	return false
}
