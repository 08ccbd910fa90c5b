package callback

import "fmt"

// Phase identifies a lifecycle point around (un)marshalling at which user
// supplied hooks run.
type Phase int

const (
	//PhaseBeforeMarshal runs before an instance is marshalled
	PhaseBeforeMarshal Phase = iota
	//PhaseAfterMarshal runs after an instance was marshalled
	PhaseAfterMarshal
	//PhaseBeforeUnmarshal runs before an instance is unmarshalled
	PhaseBeforeUnmarshal
	//PhaseAfterUnmarshal runs after an instance was unmarshalled
	PhaseAfterUnmarshal
	//PhaseOnError runs when conversion of an instance failed
	PhaseOnError

	phaseCount
)

// Phases lists every lifecycle phase.
var Phases = []Phase{PhaseBeforeMarshal, PhaseAfterMarshal, PhaseBeforeUnmarshal, PhaseAfterUnmarshal, PhaseOnError}

// IsValid returns true if the phase is one of the declared lifecycle phases.
func (p Phase) IsValid() bool {
	return p >= PhaseBeforeMarshal && p < phaseCount
}

func (p Phase) String() string {
	switch p {
	case PhaseBeforeMarshal:
		return "beforeMarshal"
	case PhaseAfterMarshal:
		return "afterMarshal"
	case PhaseBeforeUnmarshal:
		return "beforeUnmarshal"
	case PhaseAfterUnmarshal:
		return "afterUnmarshal"
	case PhaseOnError:
		return "onError"
	}
	return fmt.Sprintf("phase(%v)", int(p))
}
