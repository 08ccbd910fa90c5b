package callback

import "context"

// Handle represents a named, pre-resolved lifecycle hook. Handles are
// compared by identity and carry no ordering information themselves.
type Handle struct {
	Name       string
	_hook      Hook
	_errorHook ErrorHook
}

func (h *Handle) Hook() Hook {
	return h._hook
}

func (h *Handle) ErrorHook() ErrorHook {
	return h._errorHook
}

// Call runs the bound hook with the supplied instance; errCtx applies to
// error handles only.
func (h *Handle) Call(ctx context.Context, instance interface{}, session *Session, errCtx *ErrorContext) error {
	if h._errorHook != nil {
		return h._errorHook(ctx, instance, session, errCtx)
	}
	if h._hook != nil {
		return h._hook(ctx, instance, session)
	}
	return nil
}

// NewHandle creates a handle for a non error phase.
func NewHandle(name string, hook Hook) *Handle {
	return &Handle{
		Name:  name,
		_hook: hook,
	}
}

// NewErrorHandle creates a handle for the OnError phase.
func NewErrorHandle(name string, hook ErrorHook) *Handle {
	return &Handle{
		Name:       name,
		_errorHook: hook,
	}
}
