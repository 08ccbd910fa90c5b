package contract

import (
	"reflect"

	"github.com/pkg/errors"
)

// Dictionary extends a contract with key and value resolution for map
// types. It adds data only; every base contract semantic stays unchanged.
type Dictionary struct {
	*Contract
	keyType   reflect.Type
	valueType reflect.Type
}

func (d *Dictionary) KeyType() reflect.Type {
	return d.keyType
}

func (d *Dictionary) ValueType() reflect.Type {
	return d.valueType
}

// NewDictionary creates a dictionary contract resolving key and value types
// of the underlying map type.
func NewDictionary(base *Contract) (*Dictionary, error) {
	rType := base.Normalized().Underlying
	if rType.Kind() != reflect.Map {
		return nil, errors.Errorf("expected map but had: %s", rType.String())
	}
	return &Dictionary{
		Contract:  base,
		keyType:   rType.Key(),
		valueType: rType.Elem(),
	}, nil
}
