package contract

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
	"github.com/viant/contractly/callback"
	"github.com/viant/contractly/converter"
	"github.com/viant/xunsafe"
)

// ErrAbsentType is returned when a contract or normalization is requested
// without a type.
var ErrAbsentType = errors.New("type was absent")

// ReferenceMode controls identity preservation for instances of a type;
// ReferenceInherit defers to the engine default.
type ReferenceMode int

const (
	//ReferenceInherit defers to the engine default
	ReferenceInherit ReferenceMode = iota
	//ReferenceEnabled preserves instance identity
	ReferenceEnabled
	//ReferenceDisabled converts by value
	ReferenceDisabled
)

// Metadata is the read surface every contract flavour exposes. Category
// specific extensions embed *Contract and so satisfy it unchanged.
type Metadata interface {
	UnderlyingType() reflect.Type
	Normalized() *Normalized
	XType() *xunsafe.Type
	CreatedType() reflect.Type
	Category() Category
	EffectiveConverter() converter.Converter
	DefaultCreator() func() interface{}
	IsDefaultCreatorNonPublic() bool
	ReferenceMode() ReferenceMode
	Callbacks() *callback.Registry
	Invoke(ctx context.Context, phase callback.Phase, instance interface{}, session *callback.Session, errCtx *callback.ErrorContext) error
}

// Contract captures how instances of a single type convert to and from JSON:
// structural category, lifecycle callbacks, converter overrides and the type
// instantiated on unmarshalling. A contract is populated by the resolver on
// cache miss and treated as read only once published to the shared cache;
// this type carries no locking and relies on the cache publishing a fully
// populated instance before any reader can observe it.
type Contract struct {
	rType      reflect.Type
	normalized *Normalized
	xType      *xunsafe.Type

	createdType reflect.Type
	category    Category

	explicitConverter converter.Converter
	implicitConverter converter.Converter

	defaultCreator   func() interface{}
	nonPublicCreator bool

	referenceMode ReferenceMode
	callbacks     *callback.Registry
}

// New creates a contract for the supplied type. Normalization is computed
// eagerly so the scalar fast path needs no further type inspection; the
// created type starts as the non nullable underlying type.
func New(rType reflect.Type) (*Contract, error) {
	if rType == nil {
		return nil, ErrAbsentType
	}
	normalized, err := Normalize(rType)
	if err != nil {
		return nil, err
	}
	return &Contract{
		rType:       rType,
		normalized:  normalized,
		xType:       xunsafe.NewType(rType),
		createdType: normalized.Underlying,
		callbacks:   callback.NewRegistry(),
	}, nil
}

// UnderlyingType returns the declared type this contract was created for.
func (c *Contract) UnderlyingType() reflect.Type {
	return c.rType
}

// Normalized returns the normalized view of the declared type.
func (c *Contract) Normalized() *Normalized {
	return c.normalized
}

func (c *Contract) XType() *xunsafe.Type {
	return c.xType
}

// CreatedType returns the type instantiated on unmarshalling.
func (c *Contract) CreatedType() reflect.Type {
	return c.createdType
}

// SetCreatedType overrides the instantiated type, i.e. an interface with a
// concrete implementing type.
func (c *Contract) SetCreatedType(rType reflect.Type) {
	c.createdType = rType
}

func (c *Contract) Category() Category {
	return c.category
}

func (c *Contract) SetCategory(category Category) {
	c.category = category
}

func (c *Contract) SetExplicitConverter(aConverter converter.Converter) {
	c.explicitConverter = aConverter
}

func (c *Contract) SetImplicitConverter(aConverter converter.Converter) {
	c.implicitConverter = aConverter
}

// EffectiveConverter returns the explicit converter if set, the implicit one
// otherwise; explicit always outranks implicit.
func (c *Contract) EffectiveConverter() converter.Converter {
	if c.explicitConverter != nil {
		return c.explicitConverter
	}
	return c.implicitConverter
}

// SetDefaultCreator sets the factory producing fresh instances on
// unmarshalling along with its visibility.
func (c *Contract) SetDefaultCreator(creator func() interface{}, nonPublic bool) {
	c.defaultCreator = creator
	c.nonPublicCreator = nonPublic
}

func (c *Contract) DefaultCreator() func() interface{} {
	return c.defaultCreator
}

func (c *Contract) IsDefaultCreatorNonPublic() bool {
	return c.nonPublicCreator
}

func (c *Contract) ReferenceMode() ReferenceMode {
	return c.referenceMode
}

func (c *Contract) SetReferenceMode(mode ReferenceMode) {
	c.referenceMode = mode
}

// Callbacks returns the lifecycle callback registry of this contract.
func (c *Contract) Callbacks() *callback.Registry {
	return c.callbacks
}

// SetCallbacks replaces the handles of the supplied phase.
func (c *Contract) SetCallbacks(phase callback.Phase, handles []*callback.Handle) {
	c.callbacks.SetList(phase, handles)
}

// Invoke runs the lifecycle handles of the phase against the instance; see
// callback.Registry.Invoke for ordering and failure semantics.
func (c *Contract) Invoke(ctx context.Context, phase callback.Phase, instance interface{}, session *callback.Session, errCtx *callback.ErrorContext) error {
	return c.callbacks.Invoke(ctx, phase, instance, session, errCtx)
}
