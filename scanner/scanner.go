package scanner

import (
	"context"
	"reflect"
	"sync"

	"github.com/viant/contractly/callback"
)

var (
	beforeMarshalerType   = reflect.TypeOf((*callback.BeforeMarshaler)(nil)).Elem()
	afterMarshalerType    = reflect.TypeOf((*callback.AfterMarshaler)(nil)).Elem()
	beforeUnmarshalerType = reflect.TypeOf((*callback.BeforeUnmarshaler)(nil)).Elem()
	afterUnmarshalerType  = reflect.TypeOf((*callback.AfterUnmarshaler)(nil)).Elem()
	errorHandlerType      = reflect.TypeOf((*callback.ErrorHandler)(nil)).Elem()
)

// Service discovers the lifecycle hooks of a type. Interface implemented
// hooks come first, programmatically registered hooks follow in registration
// order; the produced order is exactly what downstream invocation preserves.
type Service struct {
	mux        sync.Mutex
	registered map[reflect.Type]map[callback.Phase][]*callback.Handle
}

// Register appends a hook for the type and phase; repeated registrations
// keep their relative order.
func (s *Service) Register(rType reflect.Type, phase callback.Phase, handle *callback.Handle) {
	s.mux.Lock()
	defer s.mux.Unlock()
	phases, ok := s.registered[rType]
	if !ok {
		phases = map[callback.Phase][]*callback.Handle{}
		s.registered[rType] = phases
	}
	phases[phase] = append(phases[phase], handle)
}

// Scan returns per phase handle lists for the supplied type.
func (s *Service) Scan(rType reflect.Type) map[callback.Phase][]*callback.Handle {
	result := map[callback.Phase][]*callback.Handle{}
	ptrType := rType
	if ptrType.Kind() != reflect.Ptr {
		ptrType = reflect.PtrTo(rType)
	}

	if ptrType.Implements(beforeMarshalerType) {
		result[callback.PhaseBeforeMarshal] = append(result[callback.PhaseBeforeMarshal], beforeMarshalHandle())
	}
	if ptrType.Implements(afterMarshalerType) {
		result[callback.PhaseAfterMarshal] = append(result[callback.PhaseAfterMarshal], afterMarshalHandle())
	}
	if ptrType.Implements(beforeUnmarshalerType) {
		result[callback.PhaseBeforeUnmarshal] = append(result[callback.PhaseBeforeUnmarshal], beforeUnmarshalHandle())
	}
	if ptrType.Implements(afterUnmarshalerType) {
		result[callback.PhaseAfterUnmarshal] = append(result[callback.PhaseAfterUnmarshal], afterUnmarshalHandle())
	}
	if ptrType.Implements(errorHandlerType) {
		result[callback.PhaseOnError] = append(result[callback.PhaseOnError], onErrorHandle())
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	if phases, ok := s.registered[rType]; ok {
		for phase, handles := range phases {
			result[phase] = append(result[phase], handles...)
		}
	}
	return result
}

func beforeMarshalHandle() *callback.Handle {
	return callback.NewHandle("BeforeMarshal", func(ctx context.Context, instance interface{}, session *callback.Session) error {
		if actual, ok := instance.(callback.BeforeMarshaler); ok {
			return actual.BeforeMarshal(ctx, session)
		}
		return nil
	})
}

func afterMarshalHandle() *callback.Handle {
	return callback.NewHandle("AfterMarshal", func(ctx context.Context, instance interface{}, session *callback.Session) error {
		if actual, ok := instance.(callback.AfterMarshaler); ok {
			return actual.AfterMarshal(ctx, session)
		}
		return nil
	})
}

func beforeUnmarshalHandle() *callback.Handle {
	return callback.NewHandle("BeforeUnmarshal", func(ctx context.Context, instance interface{}, session *callback.Session) error {
		if actual, ok := instance.(callback.BeforeUnmarshaler); ok {
			return actual.BeforeUnmarshal(ctx, session)
		}
		return nil
	})
}

func afterUnmarshalHandle() *callback.Handle {
	return callback.NewHandle("AfterUnmarshal", func(ctx context.Context, instance interface{}, session *callback.Session) error {
		if actual, ok := instance.(callback.AfterUnmarshaler); ok {
			return actual.AfterUnmarshal(ctx, session)
		}
		return nil
	})
}

func onErrorHandle() *callback.Handle {
	return callback.NewErrorHandle("OnConversionError", func(ctx context.Context, instance interface{}, session *callback.Session, errCtx *callback.ErrorContext) error {
		if actual, ok := instance.(callback.ErrorHandler); ok {
			return actual.OnConversionError(ctx, session, errCtx)
		}
		return nil
	})
}

// New creates a scanner service.
func New() *Service {
	return &Service{registered: map[reflect.Type]map[callback.Phase][]*callback.Handle{}}
}
