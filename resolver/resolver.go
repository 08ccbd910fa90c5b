package resolver

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"
	"time"
	"unicode"

	"github.com/francoispqt/gojay"
	"github.com/viant/contractly/callback"
	"github.com/viant/contractly/contract"
	"github.com/viant/contractly/converter"
	"github.com/viant/contractly/logger"
	"github.com/viant/contractly/scanner"
	"github.com/viant/contractly/shared"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xreflect"
)

var (
	marshalerType        = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	unmarshalerType      = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	gojayMarshalerType   = reflect.TypeOf((*gojay.MarshalerJSONObject)(nil)).Elem()
	gojayUnmarshalerType = reflect.TypeOf((*gojay.UnmarshalerJSONObject)(nil)).Elem()
)

// Service owns the create, populate, publish sequence of contracts and the
// cross type cache. A contract is fully populated before it is stored; the
// sync.Map store is the publication point concurrent readers load through,
// so readers can never observe a partially populated contract.
type Service struct {
	cache      sync.Map //reflect.Type -> contract.Metadata
	scanner    *scanner.Service
	converters *converter.Converters
	explicit   map[reflect.Type]converter.Converter
	created    map[reflect.Type]reflect.Type
	caseFormat text.CaseFormat
	logger     *logger.Adapter
	counter    *logger.ResolutionCounter
}

// RegisterType maps a type, typically an interface, to the concrete type
// instantiated on unmarshalling; call before the type's first Resolve.
func (s *Service) RegisterType(rType, created reflect.Type) {
	s.created[rType] = created
}

// RegisterConverter pins the explicit converter of the type, outranking any
// implicit registry match; call before the type's first Resolve.
func (s *Service) RegisterConverter(rType reflect.Type, aConverter converter.Converter) {
	s.explicit[rType] = aConverter
}

// Converters returns the implicit converter registry.
func (s *Service) Converters() *converter.Converters {
	return s.converters
}

// Scanner returns the lifecycle hook scanner.
func (s *Service) Scanner() *scanner.Service {
	return s.scanner
}

// Resolve returns the contract of the supplied type, building and publishing
// it on first use; every distinct type resolves to a single shared instance.
func (s *Service) Resolve(rType reflect.Type) (contract.Metadata, error) {
	if rType == nil {
		return nil, contract.ErrAbsentType
	}
	if value, ok := s.cache.Load(rType); ok {
		return value.(contract.Metadata), nil
	}
	started := time.Now()
	onDone := s.counter.Begin(started)
	metadata, err := s.build(rType)
	onDone(time.Now())
	if err != nil {
		s.logger.ContractResolution(rType, contract.CategoryNone.String(), time.Since(started), err)
		return nil, err
	}
	s.logger.ContractResolution(rType, metadata.Category().String(), time.Since(started), nil)
	if actual, loaded := s.cache.LoadOrStore(rType, metadata); loaded {
		return actual.(contract.Metadata), nil
	}
	return metadata, nil
}

func (s *Service) build(rType reflect.Type) (contract.Metadata, error) {
	result, err := contract.New(rType)
	if err != nil {
		return nil, err
	}
	underlying := result.Normalized().Underlying
	category := s.categoryOf(underlying)
	result.SetCategory(category)

	if created, ok := s.created[rType]; ok {
		result.SetCreatedType(created)
	} else if created, ok := s.created[underlying]; ok {
		result.SetCreatedType(created)
	}

	s.updateCreator(result)
	s.updateConverters(result, rType, underlying)
	for phase, handles := range s.scanner.Scan(underlying) {
		result.SetCallbacks(phase, s.timedHandles(phase, handles))
	}
	return s.extend(result, category)
}

// timedHandles rebinds every handle so each invocation reports its phase,
// name, duration and outcome through the resolver logger; the hook result
// still surfaces unchanged.
func (s *Service) timedHandles(phase callback.Phase, handles []*callback.Handle) []*callback.Handle {
	result := make([]*callback.Handle, 0, len(handles))
	for _, handle := range handles {
		result = append(result, s.timedHandle(phase, handle))
	}
	return result
}

func (s *Service) timedHandle(phase callback.Phase, handle *callback.Handle) *callback.Handle {
	name := handle.Name
	if errorHook := handle.ErrorHook(); errorHook != nil {
		return callback.NewErrorHandle(name, func(ctx context.Context, instance interface{}, session *callback.Session, errCtx *callback.ErrorContext) error {
			started := time.Now()
			err := errorHook(ctx, instance, session, errCtx)
			s.logger.CallbackInvocation(phase.String(), name, time.Since(started), err)
			return err
		})
	}
	hook := handle.Hook()
	if hook == nil {
		return handle
	}
	return callback.NewHandle(name, func(ctx context.Context, instance interface{}, session *callback.Session) error {
		started := time.Now()
		err := hook(ctx, instance, session)
		s.logger.CallbackInvocation(phase.String(), name, time.Since(started), err)
		return err
	})
}

// categoryOf picks the conversion strategy of a type; custom marshaler
// detection outranks the kind switch so user supplied conversion wins.
// CategoryQuery is never assigned on this target.
func (s *Service) categoryOf(rType reflect.Type) contract.Category {
	if rType == xreflect.TimeType {
		return contract.CategoryPrimitive
	}
	if isCustomMarshaler(rType) {
		return contract.CategorySerializable
	}
	if rType.Kind() == reflect.String {
		return contract.CategoryString
	}
	if converter.IsConvertibleToPrimitive(rType) {
		return contract.CategoryPrimitive
	}
	switch rType.Kind() {
	case reflect.Interface:
		return contract.CategoryDynamic
	case reflect.Map:
		return contract.CategoryDictionary
	case reflect.Slice, reflect.Array:
		return contract.CategoryArray
	case reflect.Struct:
		return contract.CategoryObject
	case reflect.Ptr:
		return s.categoryOf(rType.Elem())
	}
	return contract.CategoryNone
}

func isCustomMarshaler(rType reflect.Type) bool {
	base := shared.Deref(rType)
	candidates := []reflect.Type{base, reflect.PtrTo(base)}
	for _, candidate := range candidates {
		if candidate.Implements(marshalerType) || candidate.Implements(unmarshalerType) {
			return true
		}
		if candidate.Implements(gojayMarshalerType) || candidate.Implements(gojayUnmarshalerType) {
			return true
		}
	}
	return false
}

func (s *Service) updateCreator(aContract *contract.Contract) {
	createdType := aContract.CreatedType()
	if createdType == nil {
		return
	}
	createdType = shared.Deref(createdType)
	switch createdType.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice:
	default:
		return
	}
	aContract.SetDefaultCreator(func() interface{} {
		return reflect.New(createdType).Interface()
	}, isNonPublic(createdType))
}

func isNonPublic(rType reflect.Type) bool {
	name := rType.Name()
	if name == "" {
		return false
	}
	return unicode.IsLower([]rune(name)[0])
}

func (s *Service) updateConverters(aContract *contract.Contract, rType, underlying reflect.Type) {
	if explicit, ok := s.explicit[rType]; ok {
		aContract.SetExplicitConverter(explicit)
	} else if explicit, ok := s.explicit[underlying]; ok {
		aContract.SetExplicitConverter(explicit)
	}
	if implicit := s.converters.Match(underlying); implicit != nil {
		aContract.SetImplicitConverter(implicit)
	}
}

func (s *Service) extend(base *contract.Contract, category contract.Category) (contract.Metadata, error) {
	switch category {
	case contract.CategoryObject:
		return contract.NewObject(base, s.caseFormat)
	case contract.CategoryArray:
		return contract.NewArray(base)
	case contract.CategoryDictionary:
		return contract.NewDictionary(base)
	}
	return base, nil
}

// New creates a resolver service.
func New(options ...Option) *Service {
	opts := Options(options)
	result := &Service{
		scanner:    opts.Scanner(),
		converters: opts.Converters(),
		explicit:   map[reflect.Type]converter.Converter{},
		created:    map[reflect.Type]reflect.Type{},
		caseFormat: opts.CaseFormat(),
		logger:     opts.Logger(),
	}
	if result.scanner == nil {
		result.scanner = scanner.New()
	}
	if result.converters == nil {
		result.converters = converter.NewConverters()
	}
	if result.logger == nil {
		result.logger = logger.Default()
	}
	result.ensureCounter(opts.Metrics())
	return result
}
