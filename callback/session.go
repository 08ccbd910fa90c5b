package callback

import "github.com/google/uuid"

// Session carries caller state threaded through lifecycle hooks for a single
// (un)marshalling operation.
type Session struct {
	ID      string
	Options []interface{}
}

// NewSession creates a session with a unique operation identifier.
func NewSession(options ...interface{}) *Session {
	return &Session{
		ID:      uuid.New().String(),
		Options: options,
	}
}
