package decoder

import "errors"

// Sentinel errors returned by the decoder (spec §7). All are fatal for
// the current utterance; nothing is retried inside the core. A Decoder
// remains reusable after a failed utterance — each Decode call
// reinitializes all per-utterance state before running.
var (
	// ErrInvalidGraph indicates the WFST has no start state, or the start
	// state is not reachable/registered.
	ErrInvalidGraph = errors.New("decoder: invalid graph")

	// ErrScorerFailure indicates the scorer callback returned an error or
	// malformed arrays (size mismatch against the queried batch).
	ErrScorerFailure = errors.New("decoder: scorer failure")

	// ErrNoCompletion indicates the loop terminated (empty beam or
	// MaxSeqLen reached) with an empty completion pool.
	ErrNoCompletion = errors.New("decoder: no completion found")

	// ErrCancelRequested indicates the context was canceled between steps.
	ErrCancelRequested = errors.New("decoder: cancel requested")

	// ErrNilFST indicates NewDecoder was given a nil wfst.FST.
	ErrNilFST = errors.New("decoder: fst is nil")

	// ErrNilScorer indicates NewDecoder was given a nil scorer.Scorer.
	ErrNilScorer = errors.New("decoder: scorer is nil")
)
