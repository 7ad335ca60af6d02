// Package attfsm loads the AT&T FSM text format into a wfst.MutableFST.
// This is the "typical" on-disk format spec.md §6 names for fst_path;
// bit-exactness against a real OpenFST binary graph is delegated to
// whichever loader produced it, not reimplemented here.
//
// Format (one transition or final-state per line, fields tab/space
// separated, mirroring the classic AT&T FSM toolkit convention):
//
//	from to ilabel olabel [weight]   // transition
//	state [weight]                   // final state
//
// weight defaults to 0 when omitted. The first from-state encountered is
// taken as the start state, matching the toolkit's convention that arc
// lines appear in depth-first order from the start.
package attfsm
