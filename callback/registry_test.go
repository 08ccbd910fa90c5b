package callback

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_List(t *testing.T) {
	registry := NewRegistry()
	for _, phase := range Phases {
		list := registry.List(phase)
		assert.NotNil(t, list, phase.String())
		assert.Equal(t, 0, len(list), phase.String())
	}
}

func TestRegistry_SetSingle(t *testing.T) {
	registry := NewRegistry()
	h1 := NewHandle("h1", nil)
	h2 := NewHandle("h2", nil)

	registry.SetSingle(PhaseBeforeMarshal, h1)
	assert.Equal(t, []*Handle{h1}, registry.List(PhaseBeforeMarshal))
	assert.Same(t, h1, registry.Single(PhaseBeforeMarshal))

	registry.SetSingle(PhaseBeforeMarshal, h2)
	assert.Equal(t, []*Handle{h2}, registry.List(PhaseBeforeMarshal))

	registry.SetSingle(PhaseBeforeMarshal, nil)
	assert.Equal(t, 0, len(registry.List(PhaseBeforeMarshal)))
	assert.Nil(t, registry.Single(PhaseBeforeMarshal))
}

func TestRegistry_SetList(t *testing.T) {
	registry := NewRegistry()
	h1 := NewHandle("h1", nil)
	h2 := NewHandle("h2", nil)
	h3 := NewHandle("h3", nil)

	registry.SetList(PhaseAfterUnmarshal, []*Handle{h1, h2})
	assert.Equal(t, []*Handle{h1, h2}, registry.List(PhaseAfterUnmarshal))

	//bulk replace discards prior entries, no append merge
	registry.SetList(PhaseAfterUnmarshal, []*Handle{h3})
	assert.Equal(t, []*Handle{h3}, registry.List(PhaseAfterUnmarshal))
}

func TestRegistry_Invoke(t *testing.T) {
	testErr := errors.New("test error")

	var useCases = []struct {
		description string
		handles     []string
		failOn      string
		expectCalls []string
		expectErr   bool
	}{
		{
			description: "handles run in insertion order",
			handles:     []string{"h1", "h2", "h3"},
			expectCalls: []string{"h1", "h2", "h3"},
		},
		{
			description: "failure skips the remaining handles",
			handles:     []string{"h1", "h2", "h3"},
			failOn:      "h2",
			expectCalls: []string{"h1", "h2"},
			expectErr:   true,
		},
		{
			description: "empty phase invokes nothing",
		},
	}

	for _, useCase := range useCases {
		registry := NewRegistry()
		var calls []string
		var handles []*Handle
		for i := range useCase.handles {
			name := useCase.handles[i]
			handles = append(handles, NewHandle(name, func(ctx context.Context, instance interface{}, session *Session) error {
				calls = append(calls, name)
				if name == useCase.failOn {
					return testErr
				}
				return nil
			}))
		}
		registry.SetList(PhaseBeforeMarshal, handles)
		err := registry.Invoke(context.Background(), PhaseBeforeMarshal, nil, NewSession(), nil)
		if useCase.expectErr {
			//the failure surfaces unchanged, no wrapping
			assert.Same(t, testErr, err, useCase.description)
		} else {
			assert.Nil(t, err, useCase.description)
		}
		assert.EqualValues(t, useCase.expectCalls, calls, useCase.description)
	}
}

// After population the registry is read only; readers touching phases the
// writer never populated must not mutate any registry state.
func TestRegistry_ConcurrentRead(t *testing.T) {
	registry := NewRegistry()
	registry.SetSingle(PhaseBeforeMarshal, NewHandle("h1", func(ctx context.Context, instance interface{}, session *Session) error {
		return nil
	}))

	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Nil(t, registry.Invoke(context.Background(), PhaseOnError, nil, NewSession(), nil))
				assert.Equal(t, 0, len(registry.List(PhaseAfterMarshal)))
				assert.Equal(t, 1, len(registry.List(PhaseBeforeMarshal)))
			}
		}()
	}
	wg.Wait()
}

func TestRegistry_InvokeOnError(t *testing.T) {
	registry := NewRegistry()
	var seen []*ErrorContext
	handle := NewErrorHandle("onError", func(ctx context.Context, instance interface{}, session *Session, errCtx *ErrorContext) error {
		seen = append(seen, errCtx)
		errCtx.MarkHandled()
		return nil
	})
	registry.SetSingle(PhaseOnError, handle)

	errCtx := NewErrorContext("Root.Items[3]", errors.New("conversion failed"))
	err := registry.Invoke(context.Background(), PhaseOnError, &struct{}{}, NewSession(), errCtx)
	assert.Nil(t, err)
	if assert.Equal(t, 1, len(seen)) {
		assert.Same(t, errCtx, seen[0])
	}
	assert.True(t, errCtx.Handled())
}
