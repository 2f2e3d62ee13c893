package certificates

import (
	"fmt"

	"github.com/google/uuid"
)

// runState is one stage of a generation run. A run is single shot: no
// retry, no resumption, and failed is terminal.
type runState string

const (
	stateConstructed runState = "constructed"
	stateAssembling  runState = "assembling"
	stateFinalizing  runState = "finalizing"
	stateWritten     runState = "written"
	stateFailed      runState = "failed"
)

// runTransitions enforces the pipeline order; failed is reachable from
// every non-terminal state.
var runTransitions = map[runState][]runState{
	stateConstructed: {stateAssembling, stateFailed},
	stateAssembling:  {stateFinalizing, stateFailed},
	stateFinalizing:  {stateWritten, stateFailed},
	stateWritten:     {},
	stateFailed:      {},
}

// run tracks one generation call through its pipeline states.
type run struct {
	id    string
	state runState
}

func newRun() *run {
	return &run{id: uuid.NewString(), state: stateConstructed}
}

// canTransition checks if a state transition is allowed
func (r *run) canTransition(to runState) bool {
	for _, allowed := range runTransitions[r.state] {
		if allowed == to {
			return true
		}
	}
	return false
}

// to advances the run to the next pipeline state.
func (r *run) to(next runState) error {
	if !r.canTransition(next) {
		return fmt.Errorf("certificates: run %s: invalid transition %s -> %s", r.id, r.state, next)
	}
	r.state = next
	return nil
}

// fail marks the run failed unless it already reached a terminal state.
func (r *run) fail() {
	if r.state != stateWritten && r.state != stateFailed {
		r.state = stateFailed
	}
}
