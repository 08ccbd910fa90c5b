package contract

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/viant/contractly/shared"
	"github.com/viant/xunsafe"
)

// Array extends a contract with element resolution for slice and array
// types. It adds data only; every base contract semantic stays unchanged.
type Array struct {
	*Contract
	elemType      reflect.Type
	componentType reflect.Type
	xSlice        *xunsafe.Slice
}

// ElemType returns the element type.
func (a *Array) ElemType() reflect.Type {
	return a.elemType
}

// ComponentType returns the innermost non pointer, non slice component type,
// i.e. int32 for [][]*int32.
func (a *Array) ComponentType() reflect.Type {
	return a.componentType
}

// XSlice returns the xunsafe slice accessor; nil for fixed size arrays.
func (a *Array) XSlice() *xunsafe.Slice {
	return a.xSlice
}

// NewArray creates an array contract resolving the element type of the
// underlying slice or array type.
func NewArray(base *Contract) (*Array, error) {
	rType := base.Normalized().Underlying
	switch rType.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, errors.Errorf("expected slice or array but had: %s", rType.String())
	}
	result := &Array{Contract: base, elemType: rType.Elem(), componentType: shared.Elem(rType)}
	if rType.Kind() == reflect.Slice {
		result.xSlice = xunsafe.NewSlice(rType)
	}
	return result, nil
}
