// Package wfst defines the read-only view of a Weighted Finite-State
// Transducer (WFST) consulted by the decoder packages, plus a thread-safe
// in-memory builder, MutableFST, for constructing one.
//
// A WFST is a directed multigraph of States. Each state carries a final
// weight in the tropical semiring (+Inf meaning non-final). Each Arc
// carries an input label (0 == epsilon, non-emitting), an output label
// (0 == epsilon), a split Weight (graph cost and acoustic cost tracked
// separately so the decoder can recover either component along the best
// path), and a destination State.
//
// Loading or compiling a graph from disk (AT&T FSM text, OpenFST binary,
// ...) is outside this package's scope; see wfst/attfsm for one loader.
package wfst
