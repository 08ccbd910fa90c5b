package shared

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeref(t *testing.T) {
	var useCases = []struct {
		description string
		rType       reflect.Type
		expect      reflect.Type
	}{
		{description: "non pointer passes through", rType: reflect.TypeOf(0), expect: reflect.TypeOf(0)},
		{description: "pointer unwraps", rType: reflect.TypeOf((*int)(nil)), expect: reflect.TypeOf(0)},
		{description: "double pointer unwraps fully", rType: reflect.TypeOf((**string)(nil)), expect: reflect.TypeOf("")},
		{description: "slice stays", rType: reflect.TypeOf([]int{}), expect: reflect.TypeOf([]int{})},
	}
	for _, useCase := range useCases {
		assert.Equal(t, useCase.expect, Deref(useCase.rType), useCase.description)
	}
}

func TestElem(t *testing.T) {
	var useCases = []struct {
		description string
		rType       reflect.Type
		expect      reflect.Type
	}{
		{description: "scalar passes through", rType: reflect.TypeOf(0), expect: reflect.TypeOf(0)},
		{description: "slice unwraps", rType: reflect.TypeOf([]int{}), expect: reflect.TypeOf(0)},
		{description: "slice of pointers unwraps both", rType: reflect.TypeOf([]*int{}), expect: reflect.TypeOf(0)},
		{description: "nested slices unwrap fully", rType: reflect.TypeOf([][]string{}), expect: reflect.TypeOf("")},
		{description: "map stays", rType: reflect.TypeOf(map[string]int{}), expect: reflect.TypeOf(map[string]int{})},
	}
	for _, useCase := range useCases {
		assert.Equal(t, useCase.expect, Elem(useCase.rType), useCase.description)
	}
}
