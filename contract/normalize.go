package contract

import (
	"database/sql"
	"encoding/json"
	"reflect"

	"github.com/viant/contractly/converter"
	"github.com/viant/xreflect"
)

// ReadHint tells the token reader whether a value can bypass generic
// dispatch with a dedicated scalar path.
type ReadHint int

const (
	//ReadHintNone means full token dispatch
	ReadHintNone ReadHint = iota
	//ReadHintBytes covers raw byte sequences
	ReadHintBytes
	//ReadHintInt32 covers 32 bit integers
	ReadHintInt32
	//ReadHintNumber covers arbitrary precision JSON numbers
	ReadHintNumber
	//ReadHintString covers text
	ReadHintString
	//ReadHintTime covers timestamps
	ReadHintTime
	//ReadHintTimeOffset is reserved for targets with a dedicated offset
	//carrying timestamp type; time.Time already carries its offset, so the
	//normalizer never produces it here.
	ReadHintTimeOffset
)

var (
	bytesType  = reflect.TypeOf([]byte{})
	int32Type  = reflect.TypeOf(int32(0))
	numberType = reflect.TypeOf(json.Number(""))
	stringType = reflect.TypeOf("")
)

// optional value wrappers of the database/sql flavour and their underlying types
var nullableTypes = map[reflect.Type]reflect.Type{
	reflect.TypeOf(sql.NullBool{}):    reflect.TypeOf(true),
	reflect.TypeOf(sql.NullInt32{}):   int32Type,
	reflect.TypeOf(sql.NullInt64{}):   reflect.TypeOf(int64(0)),
	reflect.TypeOf(sql.NullFloat64{}): reflect.TypeOf(float64(0)),
	reflect.TypeOf(sql.NullString{}):  stringType,
	reflect.TypeOf(sql.NullTime{}):    xreflect.TimeType,
}

// Normalized represents the conversion relevant view of a declared type.
// It is computed once at contract construction and never changes.
type Normalized struct {
	Declared   reflect.Type
	Underlying reflect.Type
	Nullable   bool
	Primitive  bool
	Hint       ReadHint
}

// Normalize derives nullability, the non nullable underlying type, primitive
// convertibility and the scalar fast path hint of the supplied type.
func Normalize(rType reflect.Type) (*Normalized, error) {
	if rType == nil {
		return nil, ErrAbsentType
	}
	result := &Normalized{Declared: rType, Underlying: rType}
	switch rType.Kind() {
	case reflect.Ptr:
		result.Nullable = true
		result.Underlying = rType.Elem()
	case reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		result.Nullable = true
	case reflect.Struct:
		if underlying, ok := nullableTypes[rType]; ok {
			result.Nullable = true
			result.Underlying = underlying
		}
	}
	result.Primitive = converter.IsConvertibleToPrimitive(result.Underlying)
	result.Hint = readHint(result.Underlying)
	return result, nil
}

// readHint matches the underlying type against the fixed set of high
// frequency scalars by identity; named aliases stay on the generic path.
func readHint(rType reflect.Type) ReadHint {
	switch rType {
	case bytesType:
		return ReadHintBytes
	case int32Type:
		return ReadHintInt32
	case numberType:
		return ReadHintNumber
	case stringType:
		return ReadHintString
	case xreflect.TimeType:
		return ReadHintTime
	}
	return ReadHintNone
}
