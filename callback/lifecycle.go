package callback

import "context"

type (
	//Hook represents a lifecycle procedure invoked with the instance being
	//converted and the operation session.
	Hook func(ctx context.Context, instance interface{}, session *Session) error

	//ErrorHook represents an OnError procedure; it additionally receives the
	//error context describing the failure.
	ErrorHook func(ctx context.Context, instance interface{}, session *Session, errCtx *ErrorContext) error

	//BeforeMarshaler represents lifecycle hook which is called before an instance is marshalled.
	BeforeMarshaler interface {
		BeforeMarshal(ctx context.Context, session *Session) error
	}

	//AfterMarshaler represents lifecycle hook which is called after an instance was marshalled.
	AfterMarshaler interface {
		AfterMarshal(ctx context.Context, session *Session) error
	}

	//BeforeUnmarshaler represents lifecycle hook which is called before an instance is unmarshalled.
	BeforeUnmarshaler interface {
		BeforeUnmarshal(ctx context.Context, session *Session) error
	}

	//AfterUnmarshaler represents lifecycle hook which is called after an instance was unmarshalled.
	AfterUnmarshaler interface {
		AfterUnmarshal(ctx context.Context, session *Session) error
	}

	//ErrorHandler represents lifecycle hook which is called when conversion of an instance failed.
	ErrorHandler interface {
		OnConversionError(ctx context.Context, session *Session, errCtx *ErrorContext) error
	}
)
