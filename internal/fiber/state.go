// Package fiber implements Avail's lightweight cooperative tasks and
// their priority scheduler (spec §4.5, §5).
package fiber

import "fmt"

// State is a Fiber's position in its lifecycle (spec §4.5).
type State uint8

const (
	Unstarted State = iota
	Running
	Suspended
	Interrupted
	Terminated
	Aborted
	Retired
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	case Interrupted:
		return "interrupted"
	case Terminated:
		return "terminated"
	case Aborted:
		return "aborted"
	case Retired:
		return "retired"
	default:
		return "unknown"
	}
}

// legalTransitions enumerates every state change the scheduler may
// perform (spec §4.5's transition table). A transition outside this
// set is a scheduler bug, not a runtime condition of the program;
// Fiber.transition rejects it with an error and leaves the state as is.
var legalTransitions = map[State]map[State]bool{
	Unstarted:   {Running: true, Aborted: true},
	Running:     {Suspended: true, Interrupted: true, Terminated: true, Aborted: true},
	Suspended:   {Running: true, Aborted: true},
	Interrupted: {Running: true, Aborted: true},
	Terminated:  {Retired: true},
	Aborted:     {Retired: true},
	Retired:     {},
}

func checkTransition(from, to State) error {
	if legalTransitions[from][to] {
		return nil
	}
	return fmt.Errorf("illegal fiber state transition: %s -> %s", from, to)
}
