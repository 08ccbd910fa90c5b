package contractly

import (
	"reflect"

	"github.com/viant/contractly/contract"
	"github.com/viant/contractly/converter"
	"github.com/viant/contractly/resolver"
	"github.com/viant/contractly/scanner"
)

// Service bundles the contract resolver with its collaborators behind a
// single entry point.
type Service struct {
	resolver *resolver.Service
}

// Contract returns the contract of the supplied type, resolving and caching
// it on first use.
func (s *Service) Contract(rType reflect.Type) (contract.Metadata, error) {
	return s.resolver.Resolve(rType)
}

// ContractOf returns the contract of the value's dynamic type.
func (s *Service) ContractOf(value interface{}) (contract.Metadata, error) {
	if value == nil {
		return nil, contract.ErrAbsentType
	}
	return s.resolver.Resolve(reflect.TypeOf(value))
}

// Resolver returns the underlying resolver.
func (s *Service) Resolver() *resolver.Service {
	return s.resolver
}

// Converters returns the implicit converter registry.
func (s *Service) Converters() *converter.Converters {
	return s.resolver.Converters()
}

// Scanner returns the lifecycle hook scanner.
func (s *Service) Scanner() *scanner.Service {
	return s.resolver.Scanner()
}

// New creates a contractly service.
func New(options ...resolver.Option) *Service {
	return &Service{resolver: resolver.New(options...)}
}
