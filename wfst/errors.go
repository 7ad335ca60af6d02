package wfst

import "errors"

// Sentinel errors returned while building or validating a MutableFST.
var (
	// ErrNoStartState indicates a graph has no start state configured.
	ErrNoStartState = errors.New("wfst: no start state")

	// ErrStartUnreachable indicates the start state was set but is not
	// present among the graph's known states. MutableFST's own methods do
	// not produce this, since SetStart registers the state it is given.
	ErrStartUnreachable = errors.New("wfst: start state unreachable")

	// ErrUnknownState indicates an operation referenced a state that has
	// never been added to the graph via AddArc/SetFinal/EnsureState.
	ErrUnknownState = errors.New("wfst: unknown state")
)
