package contract

import (
	"database/sql"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type product struct {
	ID   int
	Name string
}

func TestNormalize(t *testing.T) {
	var useCases = []struct {
		description      string
		rType            reflect.Type
		expectNullable   bool
		expectUnderlying reflect.Type
		expectPrimitive  bool
		expectHint       ReadHint
	}{
		{
			description:      "int32 value",
			rType:            reflect.TypeOf(int32(0)),
			expectUnderlying: reflect.TypeOf(int32(0)),
			expectPrimitive:  true,
			expectHint:       ReadHintInt32,
		},
		{
			description:      "int32 pointer wrapper",
			rType:            reflect.PtrTo(reflect.TypeOf(int32(0))),
			expectNullable:   true,
			expectUnderlying: reflect.TypeOf(int32(0)),
			expectPrimitive:  true,
			expectHint:       ReadHintInt32,
		},
		{
			description:      "string",
			rType:            reflect.TypeOf(""),
			expectUnderlying: reflect.TypeOf(""),
			expectPrimitive:  true,
			expectHint:       ReadHintString,
		},
		{
			description:      "byte sequence",
			rType:            reflect.TypeOf([]byte{}),
			expectNullable:   true,
			expectUnderlying: reflect.TypeOf([]byte{}),
			expectPrimitive:  true,
			expectHint:       ReadHintBytes,
		},
		{
			description:      "json number",
			rType:            reflect.TypeOf(json.Number("")),
			expectUnderlying: reflect.TypeOf(json.Number("")),
			expectPrimitive:  true,
			expectHint:       ReadHintNumber,
		},
		{
			description:      "time",
			rType:            reflect.TypeOf(time.Time{}),
			expectUnderlying: reflect.TypeOf(time.Time{}),
			expectPrimitive:  true,
			expectHint:       ReadHintTime,
		},
		{
			description:      "sql null string wrapper",
			rType:            reflect.TypeOf(sql.NullString{}),
			expectNullable:   true,
			expectUnderlying: reflect.TypeOf(""),
			expectPrimitive:  true,
			expectHint:       ReadHintString,
		},
		{
			description:      "sql null time wrapper",
			rType:            reflect.TypeOf(sql.NullTime{}),
			expectNullable:   true,
			expectUnderlying: reflect.TypeOf(time.Time{}),
			expectPrimitive:  true,
			expectHint:       ReadHintTime,
		},
		{
			description:      "named integer type stays on the generic path",
			rType:            reflect.TypeOf(ReadHint(0)),
			expectUnderlying: reflect.TypeOf(ReadHint(0)),
			expectPrimitive:  true,
			expectHint:       ReadHintNone,
		},
		{
			description:      "map reference type",
			rType:            reflect.TypeOf(map[string]int{}),
			expectNullable:   true,
			expectUnderlying: reflect.TypeOf(map[string]int{}),
			expectHint:       ReadHintNone,
		},
		{
			description:      "struct value",
			rType:            reflect.TypeOf(product{}),
			expectUnderlying: reflect.TypeOf(product{}),
			expectHint:       ReadHintNone,
		},
		{
			description:      "struct pointer wrapper",
			rType:            reflect.TypeOf(&product{}),
			expectNullable:   true,
			expectUnderlying: reflect.TypeOf(product{}),
			expectHint:       ReadHintNone,
		},
		{
			description:      "interface reference type",
			rType:            reflect.TypeOf((*interface{})(nil)).Elem(),
			expectNullable:   true,
			expectUnderlying: reflect.TypeOf((*interface{})(nil)).Elem(),
			expectHint:       ReadHintNone,
		},
	}

	for _, useCase := range useCases {
		normalized, err := Normalize(useCase.rType)
		if !assert.Nil(t, err, useCase.description) {
			continue
		}
		assert.Equal(t, useCase.rType, normalized.Declared, useCase.description)
		assert.Equal(t, useCase.expectNullable, normalized.Nullable, useCase.description)
		assert.Equal(t, useCase.expectUnderlying, normalized.Underlying, useCase.description)
		assert.Equal(t, useCase.expectPrimitive, normalized.Primitive, useCase.description)
		assert.EqualValues(t, useCase.expectHint, normalized.Hint, useCase.description)
	}
}

func TestNormalize_AbsentType(t *testing.T) {
	normalized, err := Normalize(nil)
	assert.Nil(t, normalized)
	assert.Same(t, ErrAbsentType, err)
}
