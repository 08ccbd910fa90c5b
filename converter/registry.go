package converter

import (
	"fmt"
	"reflect"
)

// Named associates a converter with a lookup name.
type Named struct {
	Name       string
	_converter Converter
}

func (n *Named) Converter() Converter {
	return n._converter
}

// New creates a named converter.
func New(name string, converter Converter) *Named {
	return &Named{
		Name:       name,
		_converter: converter,
	}
}

// Converters represents a converter registry; Match walks converters in
// registration order so implicit selection stays deterministic.
type Converters struct {
	registry map[string]*Named
	ordered  []*Named
}

// Lookup returns the converter registered under the supplied name.
func (c *Converters) Lookup(name string) (*Named, error) {
	named, ok := c.registry[name]
	if !ok {
		return nil, fmt.Errorf("not found converter with name %v", name)
	}
	return named, nil
}

// Register adds a named converter; registering under a taken name replaces
// the named entry but keeps the original match position.
func (c *Converters) Register(named *Named) {
	if _, ok := c.registry[named.Name]; ok {
		for i := range c.ordered {
			if c.ordered[i].Name == named.Name {
				c.ordered[i] = named
				break
			}
		}
	} else {
		c.ordered = append(c.ordered, named)
	}
	c.registry[named.Name] = named
}

// Match returns the first registered converter accepting the supplied type.
func (c *Converters) Match(rType reflect.Type) Converter {
	for _, named := range c.ordered {
		if named._converter.CanConvert(rType) {
			return named._converter
		}
	}
	return nil
}

// NewConverters creates a converter registry.
func NewConverters(converters ...*Named) *Converters {
	result := &Converters{registry: map[string]*Named{}}
	for i := range converters {
		result.Register(converters[i])
	}
	return result
}
