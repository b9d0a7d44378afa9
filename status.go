package banktracker

import (
	"encoding/json"
	"fmt"
	"time"
)

// SourceState is the health of one price source.
type SourceState int

const (
	StateIdle SourceState = iota
	StateLoading
	StateSuccess
	StateError
)

func (s SourceState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSourceState parses a string into a SourceState.
func ParseSourceState(s string) (SourceState, error) {
	switch s {
	case "idle":
		return StateIdle, nil
	case "loading":
		return StateLoading, nil
	case "success":
		return StateSuccess, nil
	case "error":
		return StateError, nil
	default:
		return 0, fmt.Errorf("unknown source state: %q", s)
	}
}

// canTransition encodes the source lifecycle: idle → loading → success|error,
// then loading again on each refresh. A source never reverts to idle.
func (s SourceState) canTransition(to SourceState) bool {
	switch s {
	case StateIdle:
		return to == StateLoading
	case StateLoading:
		// loading → loading happens when an aborted cycle left a
		// supplemental source unresolved and the next refresh begins.
		return to == StateSuccess || to == StateError || to == StateLoading
	case StateSuccess, StateError:
		return to == StateLoading
	default:
		return false
	}
}

func (s SourceState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SourceState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	state, err := ParseSourceState(str)
	if err != nil {
		return err
	}
	*s = state
	return nil
}

// SourceStatus is the per-provider health record. LastUpdated stays zero
// until the first fetch attempt resolves.
type SourceStatus struct {
	State       SourceState `json:"state"`
	LastUpdated time.Time   `json:"lastUpdated,omitempty"`
	Err         string      `json:"error,omitempty"`
}

// advance moves the status to a new state. An illegal transition is a
// programming error in the refresh protocol.
func (s SourceStatus) advance(to SourceState, now time.Time, errMsg string) SourceStatus {
	if !s.State.canTransition(to) {
		panic(fmt.Sprintf("illegal source state transition %s -> %s", s.State, to))
	}
	next := SourceStatus{State: to, LastUpdated: s.LastUpdated}
	if to == StateSuccess || to == StateError {
		next.LastUpdated = now
		next.Err = errMsg
	}
	return next
}
