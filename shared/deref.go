package shared

import "reflect"

// Deref unwraps pointers down to the first non pointer type.
func Deref(rType reflect.Type) reflect.Type {
	for rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	return rType
}

// Elem unwraps pointers and slices down to the component type.
func Elem(rType reflect.Type) reflect.Type {
	switch rType.Kind() {
	case reflect.Ptr, reflect.Slice:
		return Elem(rType.Elem())
	}
	return rType
}
