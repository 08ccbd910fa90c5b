package callback

import "context"

// Registry keeps the lifecycle handles of a single contract, one ordered
// list per phase. Every phase list exists from construction; a never
// populated phase reads as an empty list, not a missing one. The registry is
// written by the resolver during contract population only; after the
// contract is published it is read concurrently with no writes, so the read
// surface never mutates registry state.
type Registry struct {
	lists [phaseCount][]*Handle
}

// List returns the handles of the phase in insertion order.
func (r *Registry) List(phase Phase) []*Handle {
	if !phase.IsValid() {
		return nil
	}
	return r.lists[phase]
}

// SetList replaces any previously supplied handles of the phase. The order of
// the supplied handles is preserved exactly on invocation; this registry
// never reorders them.
func (r *Registry) SetList(phase Phase, handles []*Handle) {
	if !phase.IsValid() {
		return
	}
	result := make([]*Handle, 0, len(handles))
	r.lists[phase] = append(result, handles...)
}

// Single returns the sole handle of the phase, or nil when the phase has none.
func (r *Registry) Single(phase Phase) *Handle {
	list := r.List(phase)
	if len(list) == 0 {
		return nil
	}
	return list[0]
}

// SetSingle replaces the whole phase list with at most one handle; a nil
// handle clears the phase.
func (r *Registry) SetSingle(phase Phase, handle *Handle) {
	if !phase.IsValid() {
		return
	}
	if handle == nil {
		r.lists[phase] = make([]*Handle, 0)
		return
	}
	r.lists[phase] = []*Handle{handle}
}

// Invoke runs every handle of the phase strictly in insertion order. On the
// first failure the remaining handles are skipped and the failure surfaces
// unchanged to the caller; this registry never wraps, swallows or retries.
// errCtx applies to the PhaseOnError handles only.
func (r *Registry) Invoke(ctx context.Context, phase Phase, instance interface{}, session *Session, errCtx *ErrorContext) error {
	for _, handle := range r.List(phase) {
		if err := handle.Call(ctx, instance, session, errCtx); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry creates a callback registry with every phase list present and
// empty.
func NewRegistry() *Registry {
	result := &Registry{}
	for _, phase := range Phases {
		result.lists[phase] = make([]*Handle, 0)
	}
	return result
}
