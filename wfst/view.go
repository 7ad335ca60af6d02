package wfst

// FST is the read-only view of a WFST consulted by the decoder. The
// decoder only reads through this interface; loading and compiling the
// underlying graph is entirely external (spec §4.A).
type FST interface {
	// Start returns the designated start state, or NoState if none is set.
	Start() State

	// FinalWeight returns the final weight of s, or Infinity if s is not
	// final (or does not exist).
	FinalWeight(s State) float64

	// Arcs returns the outgoing arcs of s in a stable, deterministic order.
	// Returns nil for a state with no outgoing arcs or that does not exist.
	Arcs(s State) []Arc
}
