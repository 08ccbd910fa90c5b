package contract

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/viant/contractly/shared"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

// TagName represents the member naming tag.
const TagName = "json"

// Field describes a marshallable member of an object contract.
type Field struct {
	Name      string //wire member name
	FieldName string
	Tag       *format.Tag
	OmitEmpty bool
	xField    *xunsafe.Field
}

func (f *Field) XField() *xunsafe.Field {
	return f.xField
}

// Object extends a contract with member enumeration for struct types. It
// adds data only; every base contract semantic stays unchanged.
type Object struct {
	*Contract
	fields []*Field
	index  map[string]int
}

// Fields returns the marshallable members in declaration order.
func (o *Object) Fields() []*Field {
	return o.fields
}

// Field returns the member registered under the supplied wire name.
func (o *Object) Field(name string) (*Field, bool) {
	idx, ok := o.index[name]
	if !ok {
		return nil, false
	}
	return o.fields[idx], true
}

// NewObject creates an object contract enumerating the exported members of
// the underlying struct type; ignored members are skipped, wire names follow
// the json tag and fall back to the case formatted field name.
func NewObject(base *Contract, caseFormat text.CaseFormat) (*Object, error) {
	rType := shared.Deref(base.Normalized().Underlying)
	if rType.Kind() != reflect.Struct {
		return nil, errors.Errorf("expected struct but had: %s", rType.String())
	}
	result := &Object{Contract: base, index: map[string]int{}}
	numField := rType.NumField()
	for i := 0; i < numField; i++ {
		aField := rType.Field(i)
		if aField.PkgPath != "" {
			continue
		}
		tag, err := format.Parse(aField.Tag, TagName)
		if err != nil {
			return nil, err
		}
		if tag.Ignore {
			continue
		}
		name := aField.Name
		if tag.Name != "" {
			name = tag.Name
		} else if caseFormat != "" {
			name = formatName(name, caseFormat)
		}
		result.index[name] = len(result.fields)
		result.fields = append(result.fields, &Field{
			Name:      name,
			FieldName: aField.Name,
			Tag:       tag,
			OmitEmpty: tag.Omitempty,
			xField:    xunsafe.NewField(aField),
		})
	}
	return result, nil
}

func formatName(name string, dstFormat text.CaseFormat) string {
	srcFormat := text.DetectCaseFormat(name)
	if !srcFormat.IsDefined() {
		return name
	}
	return srcFormat.Format(name, dstFormat)
}
