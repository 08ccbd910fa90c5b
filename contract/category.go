package contract

import "fmt"

// Category classifies how instances of a type convert to and from JSON.
// The variant set is closed; a given build may never assign some of them
// (CategoryQuery has no Go counterpart and stays unassigned on this target).
type Category int

const (
	//CategoryNone marks a contract whose category was not assigned yet
	CategoryNone Category = iota
	//CategoryObject covers struct types converted member by member
	CategoryObject
	//CategoryArray covers slice and array types
	CategoryArray
	//CategoryPrimitive covers scalar coercible types
	CategoryPrimitive
	//CategoryString covers text kinded types
	CategoryString
	//CategoryDictionary covers map types
	CategoryDictionary
	//CategoryDynamic covers interface typed values resolved per instance
	CategoryDynamic
	//CategorySerializable covers types with custom marshaler implementations
	CategorySerializable
	//CategoryQuery is reserved for expression tree targets
	CategoryQuery
)

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryObject:
		return "object"
	case CategoryArray:
		return "array"
	case CategoryPrimitive:
		return "primitive"
	case CategoryString:
		return "string"
	case CategoryDictionary:
		return "dictionary"
	case CategoryDynamic:
		return "dynamic"
	case CategorySerializable:
		return "serializable"
	case CategoryQuery:
		return "query"
	}
	return fmt.Sprintf("category(%v)", int(c))
}
