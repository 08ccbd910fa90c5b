package converter

import (
	"context"
	"reflect"
)

// Converter converts between runtime values and their wire representation.
// Concrete implementations live with the engine; contracts only carry the
// overrides chosen for a type.
type Converter interface {
	//CanConvert returns true if the converter accepts the supplied type.
	CanConvert(rType reflect.Type) bool

	//Value converts raw wire data into a runtime value.
	Value(ctx context.Context, raw []byte, options ...interface{}) (interface{}, error)

	//Raw converts a runtime value into its wire representation.
	Raw(ctx context.Context, value interface{}, options ...interface{}) ([]byte, error)
}
